package orchestration

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

const defaultAttemptCeiling = 3

// attemptTracker counts Repeat/Clarify cycles for the current planned
// position. It is a pure value: record and moveTo return updated copies for
// the orchestrator to apply, so the session cannot be mutated from outside.
type attemptTracker struct {
	position plans.Position
	count    int
	ceiling  int
}

func newAttemptTracker(ceiling int) attemptTracker {
	if ceiling <= 0 {
		ceiling = defaultAttemptCeiling
	}
	return attemptTracker{ceiling: ceiling}
}

// record applies an assessed action for the given planned position. Repeat
// and Clarify increment the count; once another retry would push the count
// past the ceiling, the action is escalated to NextQuestion instead so the
// session cannot stall on one question. Other actions pass through untouched;
// the counter reset for the position being entered happens in moveTo.
func (t attemptTracker) record(position plans.Position, action interviews.ActionCode) (attemptTracker, interviews.ActionCode) {
	if t.position != position {
		t = attemptTracker{position: position, ceiling: t.ceiling}
	}

	if !action.IsRetry() {
		return t, action
	}

	if t.count >= t.ceiling {
		return t, interviews.ActionNextQuestion
	}

	t.count++
	return t, action
}

// moveTo resets the counter to zero for a newly entered position.
func (t attemptTracker) moveTo(position plans.Position) attemptTracker {
	return attemptTracker{position: position, ceiling: t.ceiling}
}

func (t attemptTracker) attempts() int {
	return t.count
}
