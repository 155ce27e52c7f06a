package stores

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/Desarso/vizchat/models"
)

// Message is one persisted chat message within a conversation. ContentJSON
// holds the wire encoding of the message content: a bare JSON string for
// plain text, or an array of parts when the assistant reply carries charts.
type Message struct {
	gorm.Model
	ConversationID string `gorm:"index;not null"`
	Sequence       int    `gorm:"not null"`
	Role           string `gorm:"not null"` // "user", "assistant", "function"
	// Name is the tool that produced a function-role message, empty otherwise.
	Name        string `gorm:"index"`
	ContentJSON string `gorm:"type:json"`
}

// Content decodes the stored content back into its structured form.
func (m Message) Content() (models.Content, error) {
	var content models.Content
	if err := json.Unmarshal([]byte(m.ContentJSON), &content); err != nil {
		return models.Content{}, fmt.Errorf("failed to decode content of message %d: %w", m.ID, err)
	}
	return content, nil
}

// ChatMessage converts a stored row into the in-memory message shape used by
// the workflow. Undecodable content degrades to empty text rather than
// failing the whole history load.
func (m Message) ChatMessage() models.Chat_Message {
	content, err := m.Content()
	if err != nil {
		content = models.Text_Content("")
	}
	return models.Chat_Message{
		Role:    m.Role,
		Name:    m.Name,
		Content: content,
	}
}

// Conversation holds metadata for a chat conversation
type Conversation struct {
	gorm.Model
	ConversationID string    `gorm:"uniqueIndex;not null"`
	UserID         string    `gorm:"index;not null"`
	Title          string    `gorm:"type:text"`
	MessageCount   int       `gorm:"default:0"`
	Messages       []Message `gorm:"foreignKey:ConversationID;references:ConversationID"`
}

// ConversationInfo holds basic conversation metadata for listing
type ConversationInfo struct {
	ConversationID string
	UserID         string
	Title          string
	MessageCount   int
	CreatedAt      string
	UpdatedAt      string
}

// MessageStore interface for abstracting database operations
type MessageStore interface {
	// Message operations
	SaveMessage(conversationID, role, name string, content models.Content) error
	FetchHistory(conversationID string, limit int) ([]Message, error)

	// Conversation operations
	CreateConversation(convoID, userID string) error
	ListConversations() ([]string, error)
	ListConversationsForUser(userID string) ([]ConversationInfo, error)
	DeleteConversationsBefore(cutoffDays int) (int64, error)

	// Connection management
	Connect() error
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for database stores
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres"
	Connection string            `json:"connection"` // connection string
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
