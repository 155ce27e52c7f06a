package sessions

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/Desarso/vizchat/models"
	"github.com/Desarso/vizchat/stores"
)

// HandleConnection reads chat requests off the socket until the client
// disconnects. Each request runs the full visualization workflow; replies
// and errors go back over the same connection through the serialized writer.
func (cs *ChatSession) HandleConnection() error {
	for {
		var request models.Chat_Request
		if err := cs.Writer.Conn.ReadJSON(&request); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				cs.Logger.Printf("Unexpected close: %v", err)
			}
			return err
		}

		if request.Message == "" {
			if err := cs.Writer.WriteError("message must not be empty"); err != nil {
				return err
			}
			continue
		}

		cs.Writer.StartTime = time.Now()
		cs.Writer.FirstTokenTime = nil
		cs.Writer.FirstTokenLogged = false

		if err := cs.runInteraction(request.Message); err != nil {
			cs.Logger.Printf("Interaction error: %v", err)
			if writeErr := cs.Writer.WriteError("failed to generate response"); writeErr != nil {
				return writeErr
			}
			continue
		}

		if err := cs.Writer.WriteDone(); err != nil {
			return err
		}
	}
}

// runInteraction persists the user turn, runs the workflow over sanitized
// history and pushes the assistant reply to the client.
func (cs *ChatSession) runInteraction(userText string) error {
	userMessage := models.Chat_Message{
		Role:    models.Role_User,
		Content: models.Text_Content(userText),
	}
	if err := cs.Store.SaveMessage(cs.SessionID, userMessage.Role, "", userMessage.Content); err != nil {
		cs.Logger.Printf("Error saving user message: %v", err)
	}

	dbHistory, err := cs.Store.FetchHistory(cs.SessionID, 0)
	if err != nil {
		return err
	}
	dbHistory = stores.SanitizeHistory(dbHistory)

	conversation := make([]models.Chat_Message, 0, len(dbHistory)+1)
	for _, msg := range dbHistory {
		conversation = append(conversation, msg.ChatMessage())
	}
	if len(conversation) == 0 || conversation[len(conversation)-1].Content.AsText() != userText {
		conversation = append(conversation, userMessage)
	}

	start := time.Now()
	content, stats, haveStats, err := runWorkflow(cs.Runner, conversation)
	if err != nil {
		return err
	}

	if err := cs.Store.SaveMessage(cs.SessionID, models.Role_Assistant, "", content); err != nil {
		cs.Logger.Printf("Error saving assistant message: %v", err)
	}

	if cs.Traces != nil {
		trace := buildTrace(cs.SessionID, content, stats, haveStats, time.Since(start))
		if err := cs.Traces.SaveTrace(trace); err != nil {
			cs.Logger.Printf("Error saving workflow trace: %v", err)
		}
	}

	return cs.Writer.WriteResponse(WebSocketChatMessage{
		Type:           "chat_response",
		ConversationID: cs.SessionID,
		Content:        content,
	})
}
