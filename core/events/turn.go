package events

import (
	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

// KindTurnQuestionAsked identifies a generated turn awaiting an answer.
const KindTurnQuestionAsked Kind = "turn.question_asked"

// TurnQuestionAsked marks a turn presented to the candidate.
type TurnQuestionAsked struct {
	Base
	Position  plans.Position
	TopicName string
	Text      string
	Action    interviews.ActionCode
	TurnKind  interviews.TurnKind
}

// NewTurnQuestionAsked creates a question asked event.
func NewTurnQuestionAsked(position plans.Position, topicName, text string, action interviews.ActionCode, kind interviews.TurnKind) TurnQuestionAsked {
	return TurnQuestionAsked{
		Base:      NewBase(KindTurnQuestionAsked),
		Position:  position,
		TopicName: topicName,
		Text:      text,
		Action:    action,
		TurnKind:  kind,
	}
}

// KindTurnAnswerAssessed identifies an assessed answer.
const KindTurnAnswerAssessed Kind = "turn.answer_assessed"

// TurnAnswerAssessed marks an answer assessed and logged.
type TurnAnswerAssessed struct {
	Base
	Record interviews.AssessmentRecord
}

// NewTurnAnswerAssessed creates an answer assessed event.
func NewTurnAnswerAssessed(record interviews.AssessmentRecord) TurnAnswerAssessed {
	return TurnAnswerAssessed{Base: NewBase(KindTurnAnswerAssessed), Record: record}
}
