package llm

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/vettlabs/vett-core/core/interviews"
	"github.com/vettlabs/vett-core/core/llms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:embed assessorInstr.tmpl
var assessorSystemPrompt string

// Assessor scores candidate answers and requests the next flow action.
type Assessor struct {
	llm LLMWithStructuredPrompt
}

func NewAssessor(llm LLMWithStructuredPrompt) *Assessor {
	return &Assessor{llm: llm}
}

func (a *Assessor) Assess(ctx context.Context, request interviews.AssessmentRequest) (*interviews.AssessmentRecord, error) {
	ctx, span := tracer.Start(ctx, "assess answer")
	defer span.End()
	span.SetAttributes(
		attribute.String("assessment.position", request.Position.String()),
		attribute.Bool("assessment.follow_up", request.IsFollowUp),
	)

	prompt := fmt.Sprintf("Question: %s\n\nCandidate's answer: %s", request.QuestionText, request.AnswerText)
	if request.IsFollowUp {
		prompt = "This was a spontaneous follow-up question, not part of the plan.\n\n" + prompt
	}

	resp := assessmentResponse{}
	if err := a.llm.PromptWithStructure(ctx, prompt, &resp,
		llms.WithSystemPrompt(assessorSystemPrompt),
		llms.WithTurns(toHistoryTurns(request.History)...),
	); err != nil {
		err = fmt.Errorf("failed to prompt assessor: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	action, err := interviews.ActionCodeFromWire(resp.Action)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("assessment.action", action.String()))
	return &interviews.AssessmentRecord{
		Position: request.Position,
		Metrics: interviews.Metrics{
			Accuracy:     resp.Accuracy,
			Relevance:    resp.Relevance,
			Clarity:      resp.Clarity,
			Completeness: resp.Completeness,
		},
		Action:          action,
		Reason:          resp.Reason,
		DiscussionPoint: resp.DiscussionPoint,
	}, nil
}

func toHistoryTurns(history []interviews.Exchange) []llms.Turn {
	turns := make([]llms.Turn, 0, len(history))
	for _, exchange := range history {
		turns = append(turns, llms.Turn{
			Prompt:   exchange.Question,
			Response: exchange.Answer,
		})
	}
	return turns
}

type assessmentResponse struct {
	Accuracy        float64 `json:"accuracy" jsonschema:"title=Accuracy,description=Technical correctness between 0 and 1"`
	Relevance       float64 `json:"relevance" jsonschema:"title=Relevance,description=How directly the answer addresses the question between 0 and 1"`
	Clarity         float64 `json:"clarity" jsonschema:"title=Clarity,description=Coherence of the explanation between 0 and 1"`
	Completeness    float64 `json:"completeness" jsonschema:"title=Completeness,description=Coverage of the expected ground between 0 and 1"`
	Action          int     `json:"action" jsonschema:"title=Action,description=Requested flow action,enum=1,enum=2,enum=3,enum=4,enum=5"`
	Reason          string  `json:"reason" jsonschema:"title=Reason,description=One sentence explaining the requested action"`
	DiscussionPoint string  `json:"discussion_point" jsonschema:"title=Discussion point,description=Thread worth probing later or empty"`
}
