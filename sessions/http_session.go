package sessions

import (
	"fmt"
	"time"

	"github.com/Desarso/vizchat/models"
	"github.com/Desarso/vizchat/stores"
)

// RunSingleInteraction handles a complete request-response cycle: persist
// the user message, replay sanitized history through the visualization
// workflow and persist whatever comes back.
func (s *HTTPSession) RunSingleInteraction(userText string) (models.Content, error) {
	userMessage := models.Chat_Message{
		Role:    models.Role_User,
		Content: models.Text_Content(userText),
	}

	if err := s.Store.SaveMessage(s.ConversationID, userMessage.Role, "", userMessage.Content); err != nil {
		s.Logger.Printf("Error saving user message: %v", err)
	}

	conversation, err := s.loadConversation()
	if err != nil {
		return models.Content{}, err
	}
	// History already includes the user message if the save succeeded; if it
	// failed, append so the model still sees the request.
	if len(conversation) == 0 || conversation[len(conversation)-1].Content.AsText() != userText {
		conversation = append(conversation, userMessage)
	}

	start := time.Now()
	content, stats, haveStats, err := runWorkflow(s.Runner, conversation)
	if err != nil {
		return models.Content{}, fmt.Errorf("workflow error: %w", err)
	}

	if err := s.Store.SaveMessage(s.ConversationID, models.Role_Assistant, "", content); err != nil {
		s.Logger.Printf("Error saving assistant message: %v", err)
	}

	s.saveTrace(content, stats, haveStats, time.Since(start))
	return content, nil
}

// loadConversation fetches stored history, repairs its shape and converts it
// to the in-memory form the workflow consumes.
func (s *HTTPSession) loadConversation() ([]models.Chat_Message, error) {
	dbHistory, err := s.Store.FetchHistory(s.ConversationID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	dbHistory = stores.SanitizeHistory(dbHistory)

	conversation := make([]models.Chat_Message, 0, len(dbHistory))
	for _, msg := range dbHistory {
		conversation = append(conversation, msg.ChatMessage())
	}
	return conversation, nil
}

// saveTrace records the outcome of one workflow run.
func (s *HTTPSession) saveTrace(content models.Content, stats models.Workflow_Stats, haveStats bool, elapsed time.Duration) {
	if s.Traces == nil {
		return
	}
	trace := buildTrace(s.ConversationID, content, stats, haveStats, elapsed)
	if err := s.Traces.SaveTrace(trace); err != nil {
		s.Logger.Printf("Error saving workflow trace: %v", err)
	}
}

// GetChatHistory retrieves and converts chat history to API response format
func (s *HTTPSession) GetChatHistory() ([]models.ChatMessageResponse, error) {
	dbHistory, err := s.Store.FetchHistory(s.ConversationID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	apiHistory := make([]models.ChatMessageResponse, 0, len(dbHistory))
	for _, msg := range dbHistory {
		content, err := msg.Content()
		if err != nil {
			s.Logger.Printf("Error decoding content for msg ID %d: %v", msg.ID, err)
			content = models.Text_Content("")
		}

		apiHistory = append(apiHistory, models.ChatMessageResponse{
			ID:             msg.ID,
			CreatedAt:      msg.CreatedAt,
			UpdatedAt:      msg.UpdatedAt,
			ConversationID: msg.ConversationID,
			Sequence:       msg.Sequence,
			Role:           msg.Role,
			Name:           msg.Name,
			Text:           content.AsText(),
			Content:        content,
		})
	}

	return apiHistory, nil
}
