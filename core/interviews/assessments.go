package interviews

import (
	"errors"
	"fmt"

	"github.com/vettlabs/vett-core/core/plans"
)

var ErrInvalidAssessment = errors.New("invalid assessment")

// TurnKind tags a turn as part of the plan or as a spontaneous digression.
type TurnKind string

const (
	TurnKindPlanned  TurnKind = "planned"
	TurnKindFollowUp TurnKind = "follow_up"
)

// Valid reports whether the kind is one of the two defined kinds.
func (k TurnKind) Valid() bool {
	return k == TurnKindPlanned || k == TurnKindFollowUp
}

// Metrics are the per-answer quality scores, each in [0, 1].
type Metrics struct {
	Accuracy     float64 `json:"accuracy"`
	Relevance    float64 `json:"relevance"`
	Clarity      float64 `json:"clarity"`
	Completeness float64 `json:"completeness"`
}

// Validate checks that every metric is within [0, 1].
func (m Metrics) Validate() error {
	for _, metric := range []struct {
		name  string
		value float64
	}{
		{"accuracy", m.Accuracy},
		{"relevance", m.Relevance},
		{"clarity", m.Clarity},
		{"completeness", m.Completeness},
	} {
		if metric.value < 0 || metric.value > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalidAssessment, metric.name, metric.value)
		}
	}
	return nil
}

// AssessmentRecord is the assessment of one answered turn. Records are
// appended to the session log in turn order and never mutated afterwards.
type AssessmentRecord struct {
	Position plans.Position
	Metrics  Metrics
	Action   ActionCode
	Reason   string
	// DiscussionPoint optionally names a detail worth digging into on a
	// later turn. It is threaded into the next turn-generation request.
	DiscussionPoint string
	Kind            TurnKind
}

// Validate checks the action code and metric ranges of the record.
func (r AssessmentRecord) Validate() error {
	if !r.Action.Valid() {
		return fmt.Errorf("%w: action code %d outside 1..5", ErrInvalidAssessment, int(r.Action))
	}
	return r.Metrics.Validate()
}

// Exchange is one answered question, planned or follow-up, as carried in the
// assessment history.
type Exchange struct {
	Question string
	Answer   string
}

// TurnRequest is the input to the turn-text generation collaborator.
type TurnRequest struct {
	TopicName    string
	QuestionText string
	Action       ActionCode
	// PreviousTurnText and PreviousAnswer carry the last presented turn and
	// the candidate's answer to it, when there was one.
	PreviousTurnText string
	PreviousAnswer   string
	// DiscussionHint is the discussion point suggested by the most recent
	// assessment, if any.
	DiscussionHint string
}

// TurnOutput is the turn-text generation collaborator's product. Empty text
// means there is no utterance to display; the state transition still applies.
type TurnOutput struct {
	Kind TurnKind
	Text string
}

// AssessmentRequest is the input to the answer-assessment collaborator.
type AssessmentRequest struct {
	Position     plans.Position
	QuestionText string
	AnswerText   string
	History      []Exchange
	IsFollowUp   bool
}
