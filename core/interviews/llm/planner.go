package llm

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/vettlabs/vett-core/core/llms"
	"github.com/vettlabs/vett-core/core/plans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:embed plannerInstr.tmpl
var plannerSystemPrompt string

// Planner generates interview plans from free-text job or competency
// descriptions.
type Planner struct {
	llm LLMWithStructuredPrompt
}

func NewPlanner(llm LLMWithStructuredPrompt) *Planner {
	return &Planner{llm: llm}
}

func (p *Planner) GeneratePlan(ctx context.Context, description string) (*plans.Plan, error) {
	ctx, span := tracer.Start(ctx, "generate plan")
	defer span.End()

	resp := planResponse{}
	if err := p.llm.PromptWithStructure(ctx, description, &resp,
		llms.WithSystemPrompt(plannerSystemPrompt),
	); err != nil {
		err = fmt.Errorf("failed to prompt planner: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var topics []plans.Topic
	if err := copier.Copy(&topics, resp.Topics); err != nil {
		err = fmt.Errorf("failed to map plan topics: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	plan, err := plans.New(topics)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("plan.topics", plan.TopicCount()),
		attribute.Int("plan.questions", plan.QuestionCount()),
	)
	return plan, nil
}

type planResponse struct {
	Topics []planTopic `json:"topics" jsonschema:"title=Topics,description=The ordered interview topics"`
}

type planTopic struct {
	Name      string   `json:"name" jsonschema:"title=Name,description=Short name of the competency area"`
	Questions []string `json:"questions" jsonschema:"title=Questions,description=Ordered interview questions for this topic"`
}
