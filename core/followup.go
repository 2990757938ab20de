package orchestration

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

const defaultFollowUpCeiling = 3

// digression captures the planned state paused while a spontaneous follow-up
// question runs: where to resume, the attempt count to restore, and the
// planned action that was pending when the conversation left the plan.
type digression struct {
	pausedPosition plans.Position
	pausedAttempts attemptTracker
	resumingAction interviews.ActionCode
}

// followUpStack tracks whether the conversation is inside a digression. At
// most one digression is active at a time; nesting is not allowed. The streak
// counter bounds consecutive digressions at one planned question: it survives
// exit and only resets when the plan makes forward progress to a new
// position, or when a follow-up request is overridden at the ceiling.
type followUpStack struct {
	active  *digression
	streak  int
	ceiling int
}

func newFollowUpStack(ceiling int) followUpStack {
	if ceiling <= 0 {
		ceiling = defaultFollowUpCeiling
	}
	return followUpStack{ceiling: ceiling}
}

func (s *followUpStack) inDigression() bool {
	return s.active != nil
}

// canEnter reports whether a new digression may start: none active and the
// streak ceiling not yet reached.
func (s *followUpStack) canEnter() bool {
	return s.active == nil && s.streak < s.ceiling
}

// enter pauses the plan for a digression, capturing the state to restore on
// exit, and increments the streak. Returns false when entering is not
// allowed; the caller must then force the next planned action instead.
func (s *followUpStack) enter(position plans.Position, attempts attemptTracker, resuming interviews.ActionCode) bool {
	if !s.canEnter() {
		return false
	}

	s.active = &digression{
		pausedPosition: position,
		pausedAttempts: attempts,
		resumingAction: resuming,
	}
	s.streak++
	return true
}

// exit clears the active digression and returns the paused planned state.
// The streak is deliberately kept: consecutive follow-ups at the same planned
// question accumulate against the ceiling across enter/exit cycles.
func (s *followUpStack) exit() (digression, bool) {
	if s.active == nil {
		return digression{}, false
	}

	paused := *s.active
	s.active = nil
	return paused, true
}

// resetStreak clears the streak counter. Called when the planned position
// advances and when a follow-up request is forcibly overridden.
func (s *followUpStack) resetStreak() {
	s.streak = 0
}

func (s *followUpStack) streakCount() int {
	return s.streak
}
