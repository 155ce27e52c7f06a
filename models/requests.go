package models

// Message roles as they appear in a conversation.
const (
	Role_User      = "user"
	Role_Assistant = "assistant"
	Role_Function  = "function"
	Role_System    = "system"
)

// Chat_Message is one element of a conversation. Insertion order is turn
// order; messages are append-only once sent. Name is set only on
// function-role messages and carries the producing tool's name.
type Chat_Message struct {
	Role    string  `json:"role"`
	Name    string  `json:"name,omitempty"`
	Content Content `json:"content"`
}

// Chat_Request is the inbound API shape for one user turn.
type Chat_Request struct {
	Message         string `json:"message"`
	Conversation_ID string `json:"conversation_id"`
	// Model optionally overrides the configured model identifier.
	Model string `json:"model,omitempty"`
}
