package llms

// Message is a single response from an LLM.
type Message struct {
	Role    MessageRole
	Content string
}

// Turn is a single prompt/response exchange in a conversation.
type Turn struct {
	// Prompt is what was said to the model.
	Prompt string
	// Response is what the model answered, if anything yet.
	Response string
}

// MessageRole describes who a message is from.
type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)
