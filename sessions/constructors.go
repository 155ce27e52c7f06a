package sessions

import (
	"fmt"
	"log"
	"os"

	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/Desarso/vizchat/stores"
)

// NewChatSession builds a WebSocket-backed session around an upgraded
// connection. Traces default to the store's own database when it exposes one.
func NewChatSession(sessionID string, conn *websocket.Conn, runner ChatRunner, store stores.MessageStore) *ChatSession {
	logger := log.New(os.Stdout, fmt.Sprintf("[WS %s] ", sessionID), log.LstdFlags)
	return &ChatSession{
		Runner:    runner,
		SessionID: sessionID,
		Writer: &WebSocketWriter{
			Conn:   conn,
			Logger: logger,
		},
		Store:  store,
		Traces: traceStoreFor(store),
		Logger: logger,
	}
}

// NewHTTPSession builds a request-scoped session for one conversation.
func NewHTTPSession(conversationID string, runner ChatRunner, store stores.MessageStore) *HTTPSession {
	return &HTTPSession{
		Runner:         runner,
		ConversationID: conversationID,
		Store:          store,
		Traces:         traceStoreFor(store),
		Logger:         log.New(os.Stdout, fmt.Sprintf("[HTTP %s] ", conversationID), log.LstdFlags),
	}
}

// traceStoreFor wires workflow traces to the same database as the message
// store when possible. Stores without a gorm handle get no tracing.
func traceStoreFor(store stores.MessageStore) stores.TraceStore {
	type dbProvider interface {
		DB() *gorm.DB
	}
	if provider, ok := store.(dbProvider); ok && provider.DB() != nil {
		traces, err := stores.NewGORMTraceStore(provider.DB())
		if err != nil {
			log.Printf("[SESSIONS] Trace store unavailable: %v", err)
			return nil
		}
		return traces
	}
	return nil
}
