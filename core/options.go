package orchestration

import (
	"context"

	"github.com/vettlabs/vett-core/core/events"
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

type OrchestratorOption func(*Orchestrator)

// Planner generates an interview plan from a free-text job or competency
// description. Implementations must return plans built through the plans
// package's validation gate.
type Planner interface {
	GeneratePlan(ctx context.Context, description string) (*plans.Plan, error)
}

func WithPlanner(planner Planner) OrchestratorOption {
	return func(o *Orchestrator) { o.planner = planner }
}

// Interviewer produces the text of the next turn, and classifies it as
// planned or as a spontaneous follow-up.
type Interviewer interface {
	GenerateTurn(ctx context.Context, request interviews.TurnRequest) (*interviews.TurnOutput, error)
}

func WithInterviewer(interviewer Interviewer) OrchestratorOption {
	return func(o *Orchestrator) { o.interviewer = interviewer }
}

// Assessor scores a candidate answer and requests the next flow action. The
// engine validates the result and corrects the action through the Attempt
// Governor and the Action Resolver; the assessor never navigates the plan
// itself.
type Assessor interface {
	Assess(ctx context.Context, request interviews.AssessmentRequest) (*interviews.AssessmentRecord, error)
}

func WithAssessor(assessor Assessor) OrchestratorOption {
	return func(o *Orchestrator) { o.assessor = assessor }
}

// Reporter turns the finished session log into a free-text narrative. The
// narrative is opaque to the engine.
type Reporter interface {
	GenerateReport(ctx context.Context, log []interviews.AssessmentRecord) (string, error)
}

func WithReporter(reporter Reporter) OrchestratorOption {
	return func(o *Orchestrator) { o.reporter = reporter }
}

// WithAttemptCeiling overrides the maximum number of Repeat/Clarify cycles
// per planned question before forced advancement. Values below one keep the
// default.
func WithAttemptCeiling(ceiling int) OrchestratorOption {
	return func(o *Orchestrator) {
		if ceiling > 0 {
			o.attemptCeiling = ceiling
		}
	}
}

// WithFollowUpCeiling overrides the maximum number of consecutive follow-up
// digressions per planned question. Values below one keep the default.
func WithFollowUpCeiling(ceiling int) OrchestratorOption {
	return func(o *Orchestrator) {
		if ceiling > 0 {
			o.followUpCeiling = ceiling
		}
	}
}

type SessionOptions struct {
	onQuestion   func(Turn)
	onAssessment func(interviews.AssessmentRecord)
	onEnded      func(reason string)
	onEvent      func(events.Event)
}

type SessionOption func(*SessionOptions)

// WithQuestionCallback registers a callback for every turn presented to the
// candidate, planned and follow-up alike.
func WithQuestionCallback(callback func(turn Turn)) SessionOption {
	return func(o *SessionOptions) {
		o.onQuestion = callback
	}
}

// WithAssessmentCallback registers a callback for every assessment record
// appended to the session log.
func WithAssessmentCallback(callback func(record interviews.AssessmentRecord)) SessionOption {
	return func(o *SessionOptions) {
		o.onAssessment = callback
	}
}

// WithSessionEndedCallback registers a callback for the session reaching its
// terminal phase, with a human-readable reason.
func WithSessionEndedCallback(callback func(reason string)) SessionOption {
	return func(o *SessionOptions) {
		o.onEnded = callback
	}
}

// WithEventHandler registers a handler that receives every typed event the
// session emits, in emission order. The handler runs inline on the
// orchestration step and should not block.
func WithEventHandler(handler func(event events.Event)) SessionOption {
	return func(o *SessionOptions) {
		o.onEvent = handler
	}
}
