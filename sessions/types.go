package sessions

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Desarso/vizchat/models"
	"github.com/Desarso/vizchat/stores"
)

// ChatRunner is the workflow entry point a session drives. It takes a full
// conversation and returns the final content for the user, calling the
// model at most twice.
type ChatRunner interface {
	Generate_Chat_Response(conversation []models.Chat_Message) (models.Content, error)
}

// StatsRunner is a ChatRunner that also reports run statistics. Sessions use
// them to record full workflow traces; plain runners get a coarser trace
// inferred from the reply content.
type StatsRunner interface {
	Generate_Chat_Response_With_Stats(conversation []models.Chat_Message) (models.Content, models.Workflow_Stats, error)
}

// runWorkflow drives the runner, preferring the stats-reporting form when
// available. The bool reports whether stats came from the runner.
func runWorkflow(runner ChatRunner, conversation []models.Chat_Message) (models.Content, models.Workflow_Stats, bool, error) {
	if sr, ok := runner.(StatsRunner); ok {
		content, stats, err := sr.Generate_Chat_Response_With_Stats(conversation)
		return content, stats, true, err
	}
	content, err := runner.Generate_Chat_Response(conversation)
	return content, models.Workflow_Stats{}, false, err
}

// buildTrace maps one run outcome onto the trace schema. Without runner
// stats the workflow type and chart count are inferred from the reply.
func buildTrace(conversationID string, content models.Content, stats models.Workflow_Stats, haveStats bool, elapsed time.Duration) *stores.WorkflowTrace {
	trace := &stores.WorkflowTrace{
		ConversationID: conversationID,
		Timestamp:      time.Now().UnixMilli(),
		DurationMS:     elapsed.Milliseconds(),
	}
	if haveStats {
		trace.Turns = stats.Turns
		trace.WorkflowType = stats.Workflow_Type
		trace.DataCalls = stats.Data_Calls
		trace.ChartCalls = stats.Chart_Calls
		trace.FellBack = stats.Fell_Back
		return trace
	}
	if content.IsMixed() {
		trace.WorkflowType = "complete"
		for _, part := range content.Parts {
			if part.Type == models.Part_Type_Chart {
				trace.ChartCalls++
			}
		}
	} else {
		trace.WorkflowType = "text_only"
	}
	return trace
}

// WebSocketWriter serializes all writes to one WebSocket connection.
// gorilla/websocket allows only a single concurrent writer.
type WebSocketWriter struct {
	Conn             *websocket.Conn
	Logger           *log.Logger
	StartTime        time.Time
	FirstTokenTime   *time.Time
	FirstTokenLogged bool
	mu               sync.Mutex
}

func (w *WebSocketWriter) WriteResponse(resp interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	// Track time to first reply
	if !w.FirstTokenLogged && w.FirstTokenTime == nil && !w.StartTime.IsZero() {
		now := time.Now()
		w.FirstTokenTime = &now
		w.Logger.Printf("Time to first reply: %v", now.Sub(w.StartTime))
		w.FirstTokenLogged = true
	}
	return w.Conn.WriteJSON(resp)
}

func (w *WebSocketWriter) WriteError(message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"error": message})
}

func (w *WebSocketWriter) WriteDone() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "done"})
}

// WebSocketChatMessage is the reply shape streamed to WebSocket clients.
type WebSocketChatMessage struct {
	Type           string         `json:"type"` // "chat_response"
	ConversationID string         `json:"conversation_id"`
	Content        models.Content `json:"content"`
}

// ChatSession handles a WebSocket chat connection: read a request, run the
// visualization workflow, persist both sides and push the reply.
type ChatSession struct {
	Runner    ChatRunner
	SessionID string
	UserID    string
	Writer    *WebSocketWriter
	Store     stores.MessageStore
	Traces    stores.TraceStore
	Logger    *log.Logger
}

// HTTPSession handles HTTP-based chat interactions
type HTTPSession struct {
	Runner         ChatRunner
	ConversationID string
	Store          stores.MessageStore
	Traces         stores.TraceStore
	Logger         *log.Logger
}
