// Package llm implements the interview collaborators (planner, interviewer,
// assessor, reporter) on top of an LLM client.
package llm

import (
	"context"

	"github.com/vettlabs/vett-core/core/llms"
)

// LLMWithStructuredPrompt is an LLM client capable of constraining its
// output to a JSON schema reflected from outputSchema.
type LLMWithStructuredPrompt interface {
	PromptWithStructure(ctx context.Context, prompt string, outputSchema any, opts ...llms.PromptOption) error
}

// LLMWithGeneralPrompt is an LLM client producing free-form text.
type LLMWithGeneralPrompt interface {
	Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error)
}
