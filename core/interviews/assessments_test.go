package interviews

import (
	"errors"
	"testing"
)

func TestActionCodeFromWire(t *testing.T) {
	testCases := []struct {
		name     string
		wire     int
		expected ActionCode
		invalid  bool
	}{
		{name: "repeat", wire: 1, expected: ActionRepeat},
		{name: "clarify", wire: 2, expected: ActionClarify},
		{name: "next question", wire: 3, expected: ActionNextQuestion},
		{name: "next topic", wire: 4, expected: ActionNextTopic},
		{name: "end", wire: 5, expected: ActionEnd},
		{name: "zero", wire: 0, invalid: true},
		{name: "out of range", wire: 6, invalid: true},
		{name: "negative", wire: -1, invalid: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			code, err := ActionCodeFromWire(testCase.wire)
			if testCase.invalid {
				if !errors.Is(err, ErrInvalidAssessment) {
					t.Fatalf("expected ErrInvalidAssessment, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected wire value %d to decode, got %v", testCase.wire, err)
			}
			if code != testCase.expected {
				t.Fatalf("expected %v, got %v", testCase.expected, code)
			}
			if code.Wire() != testCase.wire {
				t.Fatalf("expected wire round trip %d, got %d", testCase.wire, code.Wire())
			}
		})
	}
}

func TestIsRetryCoversRepeatAndClarifyOnly(t *testing.T) {
	for code := ActionRepeat; code <= ActionEnd; code++ {
		expected := code == ActionRepeat || code == ActionClarify
		if got := code.IsRetry(); got != expected {
			t.Fatalf("expected IsRetry for %v to be %t, got %t", code, expected, got)
		}
	}
}

func TestMetricsValidateRejectsOutOfRangeValues(t *testing.T) {
	valid := Metrics{Accuracy: 0, Relevance: 0.5, Clarity: 1, Completeness: 0.25}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected metrics to validate, got %v", err)
	}

	testCases := []struct {
		name    string
		metrics Metrics
	}{
		{name: "accuracy above one", metrics: Metrics{Accuracy: 1.1}},
		{name: "relevance below zero", metrics: Metrics{Relevance: -0.1}},
		{name: "clarity above one", metrics: Metrics{Clarity: 2}},
		{name: "completeness below zero", metrics: Metrics{Completeness: -1}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if err := testCase.metrics.Validate(); !errors.Is(err, ErrInvalidAssessment) {
				t.Fatalf("expected ErrInvalidAssessment, got %v", err)
			}
		})
	}
}

func TestAssessmentRecordValidate(t *testing.T) {
	record := AssessmentRecord{Action: ActionNextQuestion, Kind: TurnKindPlanned}
	if err := record.Validate(); err != nil {
		t.Fatalf("expected record to validate, got %v", err)
	}

	record.Action = ActionCode(7)
	if err := record.Validate(); !errors.Is(err, ErrInvalidAssessment) {
		t.Fatalf("expected invalid action code to fail validation, got %v", err)
	}

	record.Action = ActionRepeat
	record.Metrics.Accuracy = 3
	if err := record.Validate(); !errors.Is(err, ErrInvalidAssessment) {
		t.Fatalf("expected out-of-range metric to fail validation, got %v", err)
	}
}
