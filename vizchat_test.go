package vizchat

import (
	"strings"
	"testing"

	"github.com/Desarso/vizchat/models"
)

// fake_model scripts one response per turn and records every conversation it
// was asked to generate from.
type fake_model struct {
	responses     []models.Model_Response
	conversations [][]models.Chat_Message
	completion    []bool
}

func (m *fake_model) Generate(conversation []models.Chat_Message, isCompletionCall bool) (models.Model_Response, error) {
	m.conversations = append(m.conversations, conversation)
	m.completion = append(m.completion, isCompletionCall)
	response := m.responses[0]
	m.responses = m.responses[1:]
	return response, nil
}

func test_agent(responses ...models.Model_Response) (*Agent, *fake_model) {
	model := &fake_model{responses: responses}
	agent := Agent{Model: model, Cache: NewDataCache()}
	return &agent, model
}

func user_conversation(text string) []models.Chat_Message {
	return []models.Chat_Message{
		{Role: models.Role_User, Content: models.Text_Content(text)},
	}
}

func TestChartOnFirstTurn(t *testing.T) {
	agent, model := test_agent(models.Model_Response{
		Parts: []models.Model_Part{
			text_part("Here is your chart."),
			business_data_call(),
			bar_chart_call(),
		},
	})

	content, err := agent.Generate_Chat_Response(user_conversation("chart of sales by region"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.conversations) != 1 {
		t.Errorf("expected exactly 1 model call, got %d", len(model.conversations))
	}
	if !content.IsMixed() {
		t.Fatal("expected mixed content with chart")
	}
	if content.Parts[0].Text != "Here is your chart." {
		t.Errorf("lead text = %q", content.Parts[0].Text)
	}
}

func TestIncompleteThenComplete(t *testing.T) {
	agent, model := test_agent(
		models.Model_Response{
			Parts: []models.Model_Part{
				text_part("I generated the data."),
				business_data_call(),
			},
		},
		models.Model_Response{
			Parts: []models.Model_Part{bar_chart_call()},
		},
	)

	content, err := agent.Generate_Chat_Response(user_conversation("visualize monthly sales"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.conversations) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(model.conversations))
	}
	if !model.completion[1] {
		t.Error("second call should be marked as a completion call")
	}
	if !content.IsMixed() {
		t.Fatal("expected mixed content after completion turn")
	}

	// The completion conversation exposes the tool output and forces the chart.
	completionConv := model.conversations[1]
	var sawFunction, sawPrompt bool
	for _, msg := range completionConv {
		if msg.Role == models.Role_Function && msg.Name == "generate_business_data" {
			sawFunction = true
		}
		if msg.Role == models.Role_User && msg.Content.AsText() == Completion_User_Prompt {
			sawPrompt = true
		}
	}
	if !sawFunction {
		t.Error("completion conversation missing function-role data message")
	}
	if !sawPrompt {
		t.Error("completion conversation missing forcing prompt")
	}
}

func TestLargeDatasetReferencedByKey(t *testing.T) {
	agent, model := test_agent(
		models.Model_Response{
			Parts: []models.Model_Part{
				call_part("generate_statistical_data", map[string]interface{}{
					"distribution":    "normal",
					"size":            50000.0,
					"parameters_json": `{"mean": 0, "std": 1}`,
				}),
			},
		},
		models.Model_Response{
			Parts: []models.Model_Part{bar_chart_call()},
		},
	)

	if _, err := agent.Generate_Chat_Response(user_conversation("histogram of 50000 samples")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completionConv := model.conversations[1]
	var functionContent string
	for _, msg := range completionConv {
		if msg.Role == models.Role_Function {
			functionContent = msg.Content.AsText()
		}
	}
	if functionContent == "" {
		t.Fatal("completion conversation missing function message")
	}
	if !strings.Contains(functionContent, "data_id") {
		t.Error("oversized dataset should be replaced by a data_id stub")
	}
	if len(functionContent) > 200 {
		t.Errorf("stub unexpectedly large: %d bytes", len(functionContent))
	}
	if agent.Cache.Len() != 1 {
		t.Errorf("expected 1 cached dataset, got %d", agent.Cache.Len())
	}
}

func TestTwoTurnsMaximum(t *testing.T) {
	incomplete := models.Model_Response{
		Parts: []models.Model_Part{
			text_part("Still just data."),
			business_data_call(),
		},
	}
	agent, model := test_agent(incomplete, incomplete)

	content, err := agent.Generate_Chat_Response(user_conversation("chart something"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.conversations) != 2 {
		t.Errorf("model must be called exactly twice, got %d calls", len(model.conversations))
	}
	if content.AsText() != "Still just data." {
		t.Errorf("second turn text should be returned, got %q", content.AsText())
	}
}

func TestFallbackWhenSecondTurnEmpty(t *testing.T) {
	agent, _ := test_agent(
		models.Model_Response{
			Parts: []models.Model_Part{business_data_call()},
		},
		models.Model_Response{},
	)

	content, err := agent.Generate_Chat_Response(user_conversation("chart something"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.AsText() != Failure_Fallback_Text {
		t.Errorf("expected fallback text, got %q", content.AsText())
	}
}

func TestTextOnlySecondTurnReturned(t *testing.T) {
	agent, model := test_agent(
		models.Model_Response{
			Parts: []models.Model_Part{text_part("What data would you like?")},
		},
		models.Model_Response{
			Parts: []models.Model_Part{text_part("Please give me more detail.")},
		},
	)

	content, err := agent.Generate_Chat_Response(user_conversation("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.AsText() != "Please give me more detail." {
		t.Errorf("got %q", content.AsText())
	}
	// Text only first turns skip the forcing prompt but still retry once.
	completionConv := model.conversations[1]
	last := completionConv[len(completionConv)-1]
	if last.Content.AsText() == Completion_User_Prompt {
		t.Error("text only workflow should not carry the forcing prompt")
	}
}

func TestStatsReportChartOnFirstTurn(t *testing.T) {
	agent, _ := test_agent(models.Model_Response{
		Parts: []models.Model_Part{
			business_data_call(),
			bar_chart_call(),
		},
	})

	_, stats, err := agent.Generate_Chat_Response_With_Stats(user_conversation("chart please"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Turns != 1 {
		t.Errorf("turns = %d, want 1", stats.Turns)
	}
	if stats.Workflow_Type != Workflow_Complete {
		t.Errorf("workflow type = %q, want %q", stats.Workflow_Type, Workflow_Complete)
	}
	if stats.Data_Calls != 1 || stats.Chart_Calls != 1 {
		t.Errorf("call counts = %d data, %d chart, want 1 and 1", stats.Data_Calls, stats.Chart_Calls)
	}
	if stats.Fell_Back {
		t.Error("successful run should not report a fallback")
	}
}

func TestStatsReportFallbackRun(t *testing.T) {
	agent, _ := test_agent(
		models.Model_Response{
			Parts: []models.Model_Part{business_data_call()},
		},
		models.Model_Response{},
	)

	content, stats, err := agent.Generate_Chat_Response_With_Stats(user_conversation("visualize this"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.AsText() != Failure_Fallback_Text {
		t.Fatalf("expected fallback text, got %q", content.AsText())
	}
	if stats.Turns != 2 {
		t.Errorf("turns = %d, want 2", stats.Turns)
	}
	if !stats.Fell_Back {
		t.Error("fallback run should report Fell_Back")
	}
	if stats.Data_Calls != 1 {
		t.Errorf("data calls = %d, want 1", stats.Data_Calls)
	}
	if stats.Workflow_Type != Workflow_Text_Only {
		t.Errorf("workflow type = %q, want %q", stats.Workflow_Type, Workflow_Text_Only)
	}
}

func TestCreateAgentVerifiesToolTables(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Create_Agent panicked on consistent tool tables: %v", r)
		}
	}()
	agent := Create_Agent(&fake_model{})
	if agent.Cache == nil {
		t.Error("agent should carry the process-wide data cache")
	}
}
