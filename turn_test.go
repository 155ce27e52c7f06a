package vizchat

import (
	"strings"
	"testing"

	"github.com/Desarso/vizchat/models"
)

func TestFormatConversationRoles(t *testing.T) {
	conversation := []models.Chat_Message{
		{Role: models.Role_User, Content: models.Text_Content("make a chart")},
		{Role: models.Role_Assistant, Content: models.Text_Content("working on it")},
		{Role: models.Role_Function, Name: "generate_business_data", Content: models.Text_Content(`{"values":[1]}`)},
		{Role: models.Role_User, Content: models.Text_Content("looks good")},
	}

	formatted := Format_Conversation(conversation)
	if len(formatted) != 4 {
		t.Fatalf("expected 4 contents, got %d", len(formatted))
	}
	wantRoles := []string{"user", "model", "model", "user"}
	for i, want := range wantRoles {
		if formatted[i].Role != want {
			t.Errorf("message %d role = %q, want %q", i, formatted[i].Role, want)
		}
	}
	if formatted[2].Parts[0].Text != `{"values":[1]}` {
		t.Errorf("function payload should pass through as text, got %q", formatted[2].Parts[0].Text)
	}
}

func TestFormatConversationFlattensMixedContent(t *testing.T) {
	figure := map[string]interface{}{"data": []interface{}{}, "layout": map[string]interface{}{}}
	conversation := []models.Chat_Message{
		{Role: models.Role_User, Content: models.Text_Content("chart please")},
		{Role: models.Role_Assistant, Content: models.Mixed_Content("Here you go", []map[string]interface{}{figure})},
	}

	formatted := Format_Conversation(conversation)
	text := formatted[1].Parts[0].Text
	if !strings.Contains(text, "Here you go") {
		t.Errorf("flattened text missing prose: %q", text)
	}
	if !strings.Contains(text, "[chart content displayed]") {
		t.Errorf("flattened text missing chart placeholder: %q", text)
	}
	if strings.Contains(text, "layout") {
		t.Errorf("figure internals leaked into wire text: %q", text)
	}
}
