package vizchat

import (
	"strings"

	"github.com/Desarso/vizchat/models"
)

// Completion_User_Prompt forces the chart creation step when the first turn
// stopped after generating data.
const Completion_User_Prompt = "You have generated the required dataset. " +
	"Now you MUST call the appropriate chart-creation function " +
	"to visualise it. Use either the full 'data' list or the " +
	"'data_id' provided earlier."

// Build_Completion_Conversation assembles the follow-up conversation for an
// incomplete visualization workflow. The original conversation is deep
// copied, then extended with the model's own first reply for continuity, the
// function-role messages exposing tool output, and finally a user prompt
// that forces the chart call. The input and its message contents are never
// mutated and share no figure maps with the result.
func Build_Completion_Conversation(
	conversation []models.Chat_Message,
	workflowType string,
	functionMessages []models.Chat_Message,
	assistantReply models.Content,
) []models.Chat_Message {
	conv := make([]models.Chat_Message, 0, len(conversation)+len(functionMessages)+2)
	for _, msg := range conversation {
		msg.Content = msg.Content.Clone()
		conv = append(conv, msg)
	}

	if reply := strings.TrimSpace(assistantReply.AsText()); reply != "" {
		conv = append(conv, models.Chat_Message{
			Role:    models.Role_Assistant,
			Content: models.Text_Content(reply),
		})
	}

	conv = append(conv, functionMessages...)

	if workflowType == Workflow_Incomplete {
		conv = append(conv, models.Chat_Message{
			Role:    models.Role_User,
			Content: models.Text_Content(Completion_User_Prompt),
		})
	}

	return conv
}
