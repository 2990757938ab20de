package llm

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/llms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:embed interviewerInstr.tmpl
var interviewerSystemPrompt string

// Interviewer produces the interviewer's utterance for each turn, and may
// classify it as a spontaneous follow-up instead of the planned question.
type Interviewer struct {
	llm LLMWithStructuredPrompt
}

func NewInterviewer(llm LLMWithStructuredPrompt) *Interviewer {
	return &Interviewer{llm: llm}
}

func (i *Interviewer) GenerateTurn(ctx context.Context, request interviews.TurnRequest) (*interviews.TurnOutput, error) {
	ctx, span := tracer.Start(ctx, "generate interviewer turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("turn.topic", request.TopicName),
		attribute.String("turn.action", request.Action.String()),
	)

	resp := turnResponse{}
	if err := i.llm.PromptWithStructure(ctx, buildTurnPrompt(request), &resp,
		llms.WithSystemPrompt(interviewerSystemPrompt),
	); err != nil {
		err = fmt.Errorf("failed to prompt interviewer: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("turn.kind", resp.Kind))
	return &interviews.TurnOutput{
		Kind: interviews.TurnKind(resp.Kind),
		Text: resp.Text,
	}, nil
}

func buildTurnPrompt(request interviews.TurnRequest) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Topic: %s\n", request.TopicName)
	fmt.Fprintf(&prompt, "Planned question: %s\n", request.QuestionText)
	fmt.Fprintf(&prompt, "Flow directive: %s\n", request.Action)
	if request.PreviousTurnText != "" {
		fmt.Fprintf(&prompt, "Your previous utterance: %s\n", request.PreviousTurnText)
	}
	if request.PreviousAnswer != "" {
		fmt.Fprintf(&prompt, "Candidate's previous answer: %s\n", request.PreviousAnswer)
	}
	if request.DiscussionHint != "" {
		fmt.Fprintf(&prompt, "Possible thread worth probing: %s\n", request.DiscussionHint)
	}
	return prompt.String()
}

type turnResponse struct {
	Kind string `json:"kind" jsonschema:"title=Kind,description=Whether this is the planned question or a spontaneous follow-up,enum=planned,enum=follow_up"`
	Text string `json:"text" jsonschema:"title=Text,description=The utterance to present to the candidate"`
}
