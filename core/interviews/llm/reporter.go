package llm

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/vettlabs/vett-core/core/interviews"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vettlabs/vett-core/core/llms"
)

//go:embed reporterInstr.tmpl
var reporterSystemPrompt string

// Reporter turns a finished interview log into a hiring-panel narrative.
type Reporter struct {
	llm LLMWithGeneralPrompt
}

func NewReporter(llm LLMWithGeneralPrompt) *Reporter {
	return &Reporter{llm: llm}
}

func (r *Reporter) GenerateReport(ctx context.Context, log []interviews.AssessmentRecord) (string, error) {
	ctx, span := tracer.Start(ctx, "generate report")
	defer span.End()
	span.SetAttributes(attribute.Int("report.log_entries", len(log)))

	if len(log) == 0 {
		return "", fmt.Errorf("cannot report on an empty interview log")
	}

	response, err := r.llm.Prompt(ctx, buildReportPrompt(log),
		llms.WithSystemPrompt(reporterSystemPrompt),
	)
	if err != nil {
		err = fmt.Errorf("failed to prompt reporter: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if response == nil || response.Content == "" {
		err := fmt.Errorf("no response from reporter")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return response.Content, nil
}

func buildReportPrompt(log []interviews.AssessmentRecord) string {
	var prompt strings.Builder
	prompt.WriteString("Interview log:\n")
	for i, entry := range log {
		fmt.Fprintf(&prompt,
			"%d. position %s (%s): accuracy %.2f, relevance %.2f, clarity %.2f, completeness %.2f; action %s; reason: %s\n",
			i+1, entry.Position, entry.Kind,
			entry.Metrics.Accuracy, entry.Metrics.Relevance, entry.Metrics.Clarity, entry.Metrics.Completeness,
			entry.Action, entry.Reason,
		)
		if entry.DiscussionPoint != "" {
			fmt.Fprintf(&prompt, "   noted thread: %s\n", entry.DiscussionPoint)
		}
	}
	return prompt.String()
}
