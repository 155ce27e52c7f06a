package stores

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// WorkflowTrace records the outcome of one visualization workflow run:
// how many turns it took, how it classified, and which tools ran. Traces
// are what answers "why did this conversation get a fallback reply" after
// the fact.
type WorkflowTrace struct {
	ID             uint      `gorm:"primarykey" json:"-"`
	CreatedAt      time.Time `json:"-"`
	ConversationID string    `gorm:"index:idx_wftrace_conv;not null" json:"conversation_id"`
	// Turns is the number of model calls the run used (1 or 2), zero when
	// the runner did not report statistics.
	Turns int `gorm:"not null" json:"turns"`
	// WorkflowType is the classification of the final turn.
	WorkflowType string `gorm:"not null" json:"workflow_type"`
	DataCalls    int    `json:"data_calls"`
	ChartCalls   int    `json:"chart_calls"`
	FellBack     bool   `json:"fell_back"`
	DetailsJSON  string `gorm:"type:text" json:"-"`
	Details      map[string]any `gorm:"-" json:"details,omitempty"`
	Timestamp    int64  `gorm:"not null" json:"timestamp"`
	DurationMS   int64  `json:"duration_ms,omitempty"`
}

// BeforeSave marshals Details to DetailsJSON
func (t *WorkflowTrace) BeforeSave(tx *gorm.DB) error {
	if t.Details != nil {
		data, err := json.Marshal(t.Details)
		if err != nil {
			return err
		}
		t.DetailsJSON = string(data)
	}
	return nil
}

// AfterFind unmarshals DetailsJSON to Details
func (t *WorkflowTrace) AfterFind(tx *gorm.DB) error {
	if t.DetailsJSON != "" {
		return json.Unmarshal([]byte(t.DetailsJSON), &t.Details)
	}
	return nil
}

// TraceStore interface for workflow trace persistence
type TraceStore interface {
	SaveTrace(trace *WorkflowTrace) error
	GetTracesByConversation(conversationID string) ([]*WorkflowTrace, error)
	DeleteTracesByConversation(conversationID string) error
}

// GORMTraceStore implements TraceStore on an existing GORM connection,
// SQLite or PostgreSQL alike.
type GORMTraceStore struct {
	db *gorm.DB
}

// NewGORMTraceStore creates a trace store from an existing GORM database connection
func NewGORMTraceStore(db *gorm.DB) (*GORMTraceStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	if err := db.AutoMigrate(&WorkflowTrace{}); err != nil {
		return nil, fmt.Errorf("failed to migrate workflow_traces table: %w", err)
	}

	return &GORMTraceStore{db: db}, nil
}

// SaveTrace saves a single workflow trace
func (s *GORMTraceStore) SaveTrace(trace *WorkflowTrace) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if trace.Timestamp == 0 {
		trace.Timestamp = time.Now().UnixMilli()
	}
	return s.db.Create(trace).Error
}

// GetTracesByConversation retrieves all traces for a conversation, ordered by timestamp
func (s *GORMTraceStore) GetTracesByConversation(conversationID string) ([]*WorkflowTrace, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var traces []*WorkflowTrace
	err := s.db.Where("conversation_id = ?", conversationID).
		Order("timestamp ASC").
		Find(&traces).Error

	return traces, err
}

// DeleteTracesByConversation removes all traces for a conversation
func (s *GORMTraceStore) DeleteTracesByConversation(conversationID string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.db.Where("conversation_id = ?", conversationID).Delete(&WorkflowTrace{}).Error
}
