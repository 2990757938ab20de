// Package llms holds the provider-independent prompt vocabulary shared by
// the LLM-backed collaborators and the provider clients under this package.
package llms

// PromptOptions is a struct that contains all the options for a prompt.
type PromptOptions struct {
	Instructions string
	Turns        []Turn
}

// PromptOption is a function that can be used to modify the prompt options.
type PromptOption func(*PromptOptions)

// WithSystemPrompt is a PromptOption that sets the system prompt for the
// prompt.
// Repeating this option will overwrite the previous system prompt.
func WithSystemPrompt(prompt string) PromptOption {
	return func(opts *PromptOptions) {
		opts.Instructions = prompt
	}
}

// WithTurns is a PromptOption that adds conversation history to the prompt.
// Repeating this option will sequentially add more turns.
func WithTurns(turns ...Turn) PromptOption {
	return func(opts *PromptOptions) {
		opts.Turns = append(opts.Turns, turns...)
	}
}
