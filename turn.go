package vizchat

import (
	"log"
	"os"

	"github.com/Desarso/vizchat/chart_tools"
	"github.com/Desarso/vizchat/models"
	"github.com/Desarso/vizchat/models/gemini"
)

var api_logger = log.New(os.Stdout, "[API] ", log.LstdFlags)

// Model is anything that can execute one model turn against a conversation.
type Model interface {
	Generate(conversation []models.Chat_Message, isCompletionCall bool) (models.Model_Response, error)
}

// Gemini_Model executes turns against the Gemini generateContent endpoint
// with the full chart and data tool set declared.
type Gemini_Model struct {
	Model_Name string
}

// Format_Conversation maps chat history to Gemini wire contents. Gemini only
// knows the roles user and model, so assistant and function messages both
// become model turns and any mixed content is flattened to its text form.
func Format_Conversation(conversation []models.Chat_Message) []gemini.Gemini_Content {
	formatted := make([]gemini.Gemini_Content, 0, len(conversation))
	for _, message := range conversation {
		role := "model"
		if message.Role == models.Role_User {
			role = "user"
		}
		formatted = append(formatted, gemini.Gemini_Content{
			Role:  role,
			Parts: []gemini.Request_Part{{Text: message.Content.AsText()}},
		})
	}
	return formatted
}

// Generate sends the conversation to Gemini. A single message conversation
// is sent as one user content; anything longer goes as formatted multi-turn
// history.
func (m Gemini_Model) Generate(conversation []models.Chat_Message, isCompletionCall bool) (models.Model_Response, error) {
	callType := "initial"
	if isCompletionCall {
		callType = "completion"
	}
	api_logger.Printf("making %s API call with %d messages", callType, len(conversation))

	var contents []gemini.Gemini_Content
	if len(conversation) == 1 {
		contents = []gemini.Gemini_Content{{
			Role:  "user",
			Parts: []gemini.Request_Part{{Text: conversation[0].Content.AsText()}},
		}}
	} else {
		contents = Format_Conversation(conversation)
	}

	config := gemini.Get_Appropriate_Config(conversation, isCompletionCall).
		WithTools(chart_tools.AllTools())

	response, err := gemini.Generate_Content(m.Model_Name, contents, config)
	if err != nil {
		api_logger.Printf("%s API call failed: %v", callType, err)
		return models.Model_Response{}, err
	}
	api_logger.Printf("%s API call completed", callType)
	return response, nil
}
