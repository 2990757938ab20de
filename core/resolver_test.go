package orchestration

import (
	"testing"

	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

func twoTopicPlan(t *testing.T) *plans.Plan {
	t.Helper()

	plan, err := plans.New([]plans.Topic{
		{Name: "React", Questions: []string{"react q1", "react q2"}},
		{Name: "Node.js", Questions: []string{"node q1", "node q2", "node q3"}},
	})
	if err != nil {
		t.Fatalf("failed to build plan: %v", err)
	}
	return plan
}

func TestResolveAction(t *testing.T) {
	plan := twoTopicPlan(t)

	testCases := []struct {
		name      string
		position  plans.Position
		requested interviews.ActionCode

		wantAction   interviews.ActionCode
		wantNext     plans.Position
		wantTerminal bool
	}{
		{
			name:      "repeat holds position",
			position:  plans.Position{Topic: 0, Question: 1},
			requested: interviews.ActionRepeat,

			wantAction: interviews.ActionRepeat,
			wantNext:   plans.Position{Topic: 0, Question: 1},
		},
		{
			name:      "clarify holds position",
			position:  plans.Position{Topic: 1, Question: 0},
			requested: interviews.ActionClarify,

			wantAction: interviews.ActionClarify,
			wantNext:   plans.Position{Topic: 1, Question: 0},
		},
		{
			name:      "next question advances within topic",
			position:  plans.Position{Topic: 0, Question: 0},
			requested: interviews.ActionNextQuestion,

			wantAction: interviews.ActionNextQuestion,
			wantNext:   plans.Position{Topic: 0, Question: 1},
		},
		{
			name:      "next question past last question rolls into next topic",
			position:  plans.Position{Topic: 0, Question: 1},
			requested: interviews.ActionNextQuestion,

			wantAction: interviews.ActionNextTopic,
			wantNext:   plans.Position{Topic: 1, Question: 0},
		},
		{
			name:      "next question past last question of last topic terminates",
			position:  plans.Position{Topic: 1, Question: 2},
			requested: interviews.ActionNextQuestion,

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
		{
			name:      "next topic downgraded while questions remain",
			position:  plans.Position{Topic: 0, Question: 0},
			requested: interviews.ActionNextTopic,

			wantAction: interviews.ActionNextQuestion,
			wantNext:   plans.Position{Topic: 0, Question: 1},
		},
		{
			name:      "next topic downgrade on last topic still advances within it",
			position:  plans.Position{Topic: 1, Question: 0},
			requested: interviews.ActionNextTopic,

			wantAction: interviews.ActionNextQuestion,
			wantNext:   plans.Position{Topic: 1, Question: 1},
		},
		{
			name:      "exhausted position rolls into next topic regardless of request",
			position:  plans.Position{Topic: 0, Question: 2},
			requested: interviews.ActionRepeat,

			wantAction: interviews.ActionNextTopic,
			wantNext:   plans.Position{Topic: 1, Question: 0},
		},
		{
			name:      "exhausted position on last topic terminates",
			position:  plans.Position{Topic: 1, Question: 3},
			requested: interviews.ActionNextQuestion,

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
		{
			name:      "end request terminates",
			position:  plans.Position{Topic: 0, Question: 0},
			requested: interviews.ActionEnd,

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
		{
			name:      "out of bounds topic terminates",
			position:  plans.Position{Topic: 2, Question: 0},
			requested: interviews.ActionNextQuestion,

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
		{
			name:      "negative topic terminates",
			position:  plans.Position{Topic: -1, Question: 0},
			requested: interviews.ActionRepeat,

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
		{
			name:      "unknown action fails safe into termination",
			position:  plans.Position{Topic: 0, Question: 0},
			requested: interviews.ActionCode(42),

			wantAction:   interviews.ActionEnd,
			wantTerminal: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolved := resolveAction(plan, testCase.position, testCase.requested)

			if resolved.action != testCase.wantAction {
				t.Errorf("expected action %v, got %v", testCase.wantAction, resolved.action)
			}
			if resolved.terminal != testCase.wantTerminal {
				t.Errorf("expected terminal %v, got %v", testCase.wantTerminal, resolved.terminal)
			}
			if !resolved.terminal && resolved.next != testCase.wantNext {
				t.Errorf("expected next position %v, got %v", testCase.wantNext, resolved.next)
			}
		})
	}
}

func TestResolveActionNilPlanTerminates(t *testing.T) {
	resolved := resolveAction(nil, plans.Position{}, interviews.ActionNextQuestion)

	if !resolved.terminal {
		t.Error("expected a nil plan to terminate")
	}
	if resolved.action != interviews.ActionEnd {
		t.Errorf("expected action %v, got %v", interviews.ActionEnd, resolved.action)
	}
}

// Every non-terminal resolution must address an existing question; the turn
// generator depends on it.
func TestResolveActionAlwaysAddressesAQuestion(t *testing.T) {
	plan := twoTopicPlan(t)

	actions := []interviews.ActionCode{
		interviews.ActionRepeat,
		interviews.ActionClarify,
		interviews.ActionNextQuestion,
		interviews.ActionNextTopic,
		interviews.ActionEnd,
	}

	for topic := 0; topic < plan.TopicCount(); topic++ {
		for question := 0; question <= 3; question++ {
			position := plans.Position{Topic: topic, Question: question}
			for _, action := range actions {
				resolved := resolveAction(plan, position, action)
				if resolved.terminal {
					continue
				}
				if _, ok := plan.Question(resolved.next); !ok {
					t.Errorf("resolution from %v with %v landed on %v, which has no question",
						position, action, resolved.next)
				}
			}
		}
	}
}
