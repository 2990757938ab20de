// Package interviews defines the shared vocabulary exchanged between the
// orchestration engine and its content collaborators: action codes, answer
// metrics, assessment records, and the turn-generation and assessment request
// shapes.
package interviews

import "fmt"

// ActionCode is the closed set of flow directives. The integer wire values
// are a fixed contract with the assessment collaborator and must not be
// renumbered without versioning.
type ActionCode int

const (
	// ActionRepeat asks the current question again.
	ActionRepeat ActionCode = iota + 1
	// ActionClarify rephrases or narrows the current question.
	ActionClarify
	// ActionNextQuestion advances to the next question of the current topic.
	ActionNextQuestion
	// ActionNextTopic abandons the current topic for the next one.
	ActionNextTopic
	// ActionEnd terminates the interview.
	ActionEnd
)

func (a ActionCode) String() string {
	switch a {
	case ActionRepeat:
		return "repeat"
	case ActionClarify:
		return "clarify"
	case ActionNextQuestion:
		return "next_question"
	case ActionNextTopic:
		return "next_topic"
	case ActionEnd:
		return "end"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Valid reports whether the action code is one of the five defined codes.
func (a ActionCode) Valid() bool {
	return a >= ActionRepeat && a <= ActionEnd
}

// IsRetry reports whether the action keeps the conversation on the current
// question (Repeat or Clarify).
func (a ActionCode) IsRetry() bool {
	return a == ActionRepeat || a == ActionClarify
}

// Wire returns the integer wire value of the action code.
func (a ActionCode) Wire() int {
	return int(a)
}

// ActionCodeFromWire decodes an integer wire value (1..5) into an ActionCode.
func ActionCodeFromWire(value int) (ActionCode, error) {
	code := ActionCode(value)
	if !code.Valid() {
		return 0, fmt.Errorf("%w: action code %d outside 1..5", ErrInvalidAssessment, value)
	}
	return code, nil
}
