package types

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // RoleSystem carries framing context for the model.
	RoleUser      MessageRole = "user"      // RoleUser is a message from the user.
	RoleAssistant MessageRole = "assistant" // RoleAssistant is a model reply.
)

// Attachment is an inline binary part of a message, used for the résumé
// document analysis call. MIME identifies the encoding of Data.
type Attachment struct {
	MIME string
	Data []byte
}

// Message is a single turn in a conversation with the LLM.
type Message struct {
	Role       MessageRole `json:"role"`
	Content    string      `json:"content"`
	Attachment *Attachment `json:"-"`
}

// NewSystemMessage creates a system-role message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user-role message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}
