package orchestration

import (
	"testing"

	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/plans"
)

func TestAttemptTrackerEscalatesAtCeiling(t *testing.T) {
	tracker := newAttemptTracker(3)
	position := plans.Position{Topic: 0, Question: 0}

	for i := 1; i <= 3; i++ {
		var action interviews.ActionCode
		tracker, action = tracker.record(position, interviews.ActionRepeat)
		if action != interviews.ActionRepeat {
			t.Fatalf("retry %d: expected %v to pass through, got %v", i, interviews.ActionRepeat, action)
		}
		if tracker.attempts() != i {
			t.Fatalf("retry %d: expected count %d, got %d", i, i, tracker.attempts())
		}
	}

	// The fourth consecutive retry would exceed the ceiling and must be
	// escalated to forced advancement.
	tracker, action := tracker.record(position, interviews.ActionClarify)
	if action != interviews.ActionNextQuestion {
		t.Errorf("expected escalation to %v, got %v", interviews.ActionNextQuestion, action)
	}
	if tracker.attempts() != 3 {
		t.Errorf("expected count to stay at the ceiling, got %d", tracker.attempts())
	}
}

func TestAttemptTrackerNonRetryPassesThrough(t *testing.T) {
	tracker := newAttemptTracker(3)
	position := plans.Position{Topic: 1, Question: 2}

	tracker, _ = tracker.record(position, interviews.ActionRepeat)

	for _, action := range []interviews.ActionCode{
		interviews.ActionNextQuestion,
		interviews.ActionNextTopic,
		interviews.ActionEnd,
	} {
		updated, got := tracker.record(position, action)
		if got != action {
			t.Errorf("expected %v to pass through, got %v", action, got)
		}
		if updated.attempts() != tracker.attempts() {
			t.Errorf("expected %v to leave the count at %d, got %d", action, tracker.attempts(), updated.attempts())
		}
	}
}

func TestAttemptTrackerResetsOnNewPosition(t *testing.T) {
	tracker := newAttemptTracker(3)
	first := plans.Position{Topic: 0, Question: 0}
	second := plans.Position{Topic: 0, Question: 1}

	tracker, _ = tracker.record(first, interviews.ActionRepeat)
	tracker, _ = tracker.record(first, interviews.ActionRepeat)

	tracker, action := tracker.record(second, interviews.ActionClarify)
	if action != interviews.ActionClarify {
		t.Errorf("expected fresh position to accept the retry, got %v", action)
	}
	if tracker.attempts() != 1 {
		t.Errorf("expected fresh position to restart the count at 1, got %d", tracker.attempts())
	}
}

func TestAttemptTrackerMoveToClearsCount(t *testing.T) {
	tracker := newAttemptTracker(3)
	position := plans.Position{Topic: 0, Question: 0}

	tracker, _ = tracker.record(position, interviews.ActionRepeat)
	tracker, _ = tracker.record(position, interviews.ActionRepeat)

	moved := tracker.moveTo(plans.Position{Topic: 1, Question: 0})
	if moved.attempts() != 0 {
		t.Errorf("expected moveTo to clear the count, got %d", moved.attempts())
	}
}

func TestAttemptTrackerDefaultCeiling(t *testing.T) {
	tracker := newAttemptTracker(0)
	if tracker.ceiling != defaultAttemptCeiling {
		t.Errorf("expected default ceiling %d, got %d", defaultAttemptCeiling, tracker.ceiling)
	}
}
