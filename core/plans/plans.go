// Package plans holds the immutable interview plan model.
//
// A plan is an ordered list of topics, each with an ordered list of question
// prompts. [Accept] and [New] are the single validation gate: a *Plan obtained
// from either is structurally sound and no other component re-checks its
// shape.
package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlan = errors.New("invalid plan")

// Topic is one named interview topic with its ordered question prompts.
type Topic struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// Plan is an accepted interview plan. It is immutable: accessors return
// copies and there is no way to alter topics after acceptance.
type Plan struct {
	topics []Topic
}

// Accept parses and validates a raw plan document of the shape
// {"topics": [{"name": ..., "questions": [...]}]}.
func Accept(raw []byte) (*Plan, error) {
	var document struct {
		Topics []Topic `json:"topics"`
	}
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	return New(document.Topics)
}

// New validates the given topics and returns an accepted plan.
func New(topics []Topic) (*Plan, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: plan has no topics", ErrInvalidPlan)
	}

	copied := make([]Topic, len(topics))
	for i, topic := range topics {
		if strings.TrimSpace(topic.Name) == "" {
			return nil, fmt.Errorf("%w: topic %d has no name", ErrInvalidPlan, i)
		}
		if len(topic.Questions) == 0 {
			return nil, fmt.Errorf("%w: topic %q has no questions", ErrInvalidPlan, topic.Name)
		}
		for j, question := range topic.Questions {
			if strings.TrimSpace(question) == "" {
				return nil, fmt.Errorf("%w: topic %q question %d is empty", ErrInvalidPlan, topic.Name, j)
			}
		}

		copied[i] = Topic{
			Name:      topic.Name,
			Questions: append([]string(nil), topic.Questions...),
		}
	}

	return &Plan{topics: copied}, nil
}

// Topics returns a copy of the plan's topics.
func (p *Plan) Topics() []Topic {
	topics := make([]Topic, len(p.topics))
	for i, topic := range p.topics {
		topics[i] = Topic{
			Name:      topic.Name,
			Questions: append([]string(nil), topic.Questions...),
		}
	}
	return topics
}

// TopicCount returns the number of topics in the plan.
func (p *Plan) TopicCount() int {
	return len(p.topics)
}

// QuestionCount returns the total number of questions across all topics.
func (p *Plan) QuestionCount() int {
	count := 0
	for _, topic := range p.topics {
		count += len(topic.Questions)
	}
	return count
}

// HasTopic reports whether index is a valid topic index.
func (p *Plan) HasTopic(index int) bool {
	return index >= 0 && index < len(p.topics)
}

// TopicName returns the name of the topic at index, or "" if out of bounds.
func (p *Plan) TopicName(index int) string {
	if !p.HasTopic(index) {
		return ""
	}
	return p.topics[index].Name
}

// Question returns the prompt at the given position and whether the position
// addresses an existing question.
func (p *Plan) Question(position Position) (string, bool) {
	if !p.HasTopic(position.Topic) {
		return "", false
	}
	questions := p.topics[position.Topic].Questions
	if position.Question < 0 || position.Question >= len(questions) {
		return "", false
	}
	return questions[position.Question], true
}

// IsExhausted reports whether the position's topic has no question left at
// the position's question index. A position whose question index equals the
// topic's question count is the "advance to next topic" marker.
func (p *Plan) IsExhausted(position Position) bool {
	if !p.HasTopic(position.Topic) {
		return true
	}
	return position.Question >= len(p.topics[position.Topic].Questions)
}
