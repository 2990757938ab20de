package orchestration

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

// Phase is the top-level session lifecycle state.
type Phase string

const (
	PhaseSetup        Phase = "setup"
	PhasePlanning     Phase = "planning"
	PhasePlanAccepted Phase = "plan_accepted"
	PhaseInProgress   Phase = "in_progress"
	// PhaseEnded is absorbing: no further turns are accepted.
	PhaseEnded Phase = "ended"
)

// Turn is a generated interviewer turn awaiting the candidate's answer.
type Turn struct {
	SessionID string
	// Position is the planned position the turn belongs to. For a follow-up
	// this is the paused planned position the conversation resumes to.
	Position  plans.Position
	TopicName string
	// QuestionText is the question under assessment: the plan prompt for a
	// planned turn, the generated digression for a follow-up.
	QuestionText string
	// Text is the utterance to present. Empty means there is nothing to
	// display; the turn still has to be answered and assessed.
	Text   string
	Kind   interviews.TurnKind
	Action interviews.ActionCode
}

// session is the single mutable aggregate of one interview. It is owned and
// mutated exclusively by the orchestrator; the busy flag guarantees at most
// one orchestration step touches it at a time.
type session struct {
	id   string
	plan *plans.Plan

	position      plans.Position
	pendingAction interviews.ActionCode
	attempts      attemptTracker
	followUps     followUpStack
	log           sessionLog
	phase         Phase

	currentTurn    *Turn
	lastTurnText   string
	lastAnswer     string
	discussionHint string
	history        []interviews.Exchange

	endReason string
}
