package models

import "time"

// ChatMessageResponse defines the structure for messages returned by the chat
// history API endpoint. It excludes internal DB fields but includes the
// identifiers and timestamps the front-end needs to render a transcript.
type ChatMessageResponse struct {
	ID             uint      `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ConversationID string    `json:"conversation_id"`
	Sequence       int       `json:"sequence"`
	Role           string    `json:"role"` // "user", "assistant"
	Name           string    `json:"name,omitempty"`
	Text           string    `json:"text,omitempty"` // flattened text, for previews
	Content        Content   `json:"content"`
}
