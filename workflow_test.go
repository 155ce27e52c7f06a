package vizchat

import (
	"strings"
	"testing"

	"github.com/Desarso/vizchat/models"
)

func text_part(s string) models.Model_Part {
	return models.Model_Part{Text: &s}
}

func call_part(name string, args map[string]interface{}) models.Model_Part {
	return models.Model_Part{FunctionCall: &models.FunctionCall{Name: name, Args: args}}
}

func bar_chart_call() models.Model_Part {
	return call_part("create_bar_chart", map[string]interface{}{
		"categories": []interface{}{"A", "B"},
		"values":     []interface{}{1.0, 2.0},
	})
}

func business_data_call() models.Model_Part {
	return call_part("generate_business_data", map[string]interface{}{
		"data_type":  "sales",
		"categories": []interface{}{"North", "South"},
	})
}

func TestProcessResponseStopsAtToolCallBound(t *testing.T) {
	cache := NewDataCache()
	parts := []models.Model_Part{}
	for i := 0; i < 8; i++ {
		parts = append(parts, business_data_call())
	}
	result := cache.Process_Model_Response(models.Model_Response{Parts: parts})

	bound := max_tool_calls()
	if bound != 5 {
		t.Fatalf("active profile bound = %d, want 5", bound)
	}
	if len(result.Data_Results) != bound {
		t.Errorf("executed %d data calls, want %d", len(result.Data_Results), bound)
	}
	if len(result.Function_Messages) != bound {
		t.Errorf("attached %d function messages, want %d", len(result.Function_Messages), bound)
	}
	if result.Workflow_Type != Workflow_Incomplete {
		t.Errorf("workflow type = %q, want %q", result.Workflow_Type, Workflow_Incomplete)
	}
}

func TestProcessResponseTextOnly(t *testing.T) {
	cache := NewDataCache()
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{text_part("Hello there.")},
	})
	if result.Workflow_Type != Workflow_Text_Only {
		t.Errorf("workflow type = %q, want %q", result.Workflow_Type, Workflow_Text_Only)
	}
	if result.Text.AsText() != "Hello there." {
		t.Errorf("text = %q", result.Text.AsText())
	}
	if len(result.Function_Messages) != 0 {
		t.Errorf("text only turn produced %d function messages", len(result.Function_Messages))
	}
}

func TestProcessResponseIncomplete(t *testing.T) {
	cache := NewDataCache()
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{
			text_part("I generated the data."),
			business_data_call(),
		},
	})
	if result.Workflow_Type != Workflow_Incomplete {
		t.Errorf("workflow type = %q, want %q", result.Workflow_Type, Workflow_Incomplete)
	}
	if len(result.Data_Results) != 1 {
		t.Fatalf("expected 1 data result, got %d", len(result.Data_Results))
	}
	if len(result.Function_Messages) != 1 {
		t.Fatalf("expected 1 function message, got %d", len(result.Function_Messages))
	}
	msg := result.Function_Messages[0]
	if msg.Role != models.Role_Function {
		t.Errorf("function message role = %q", msg.Role)
	}
	if msg.Name != "generate_business_data" {
		t.Errorf("function message name = %q", msg.Name)
	}
	if !strings.Contains(msg.Content.AsText(), "values") {
		t.Errorf("small result should be inlined, got %q", msg.Content.AsText())
	}
}

func TestProcessResponseComplete(t *testing.T) {
	cache := NewDataCache()
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{bar_chart_call()},
	})
	if result.Workflow_Type != Workflow_Complete {
		t.Errorf("workflow type = %q, want %q", result.Workflow_Type, Workflow_Complete)
	}
	if len(result.Chart_Results) != 1 {
		t.Fatalf("expected 1 chart result, got %d", len(result.Chart_Results))
	}
	if !result.Text.IsMixed() {
		t.Fatal("complete turn should produce mixed content")
	}
	// Empty model text falls back to the fixed lead-in.
	if got := result.Text.Parts[0].Text; got != Chart_Fallback_Text {
		t.Errorf("lead-in text = %q, want %q", got, Chart_Fallback_Text)
	}
}

func TestChartWinsOverData(t *testing.T) {
	cache := NewDataCache()
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{
			business_data_call(),
			bar_chart_call(),
		},
	})
	if result.Workflow_Type != Workflow_Complete {
		t.Errorf("turn with both families should be complete, got %q", result.Workflow_Type)
	}
	if len(result.Data_Results) != 1 || len(result.Chart_Results) != 1 {
		t.Errorf("expected both results kept: %d data, %d chart",
			len(result.Data_Results), len(result.Chart_Results))
	}
}

func TestUnknownFunctionIgnored(t *testing.T) {
	cache := NewDataCache()
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{
			text_part("Trying something."),
			call_part("launch_rocket", nil),
		},
	})
	if result.Workflow_Type != Workflow_Text_Only {
		t.Errorf("unknown call should not change classification, got %q", result.Workflow_Type)
	}
}

func TestChartCallOrderPreserved(t *testing.T) {
	cache := NewDataCache()
	first := call_part("create_bar_chart", map[string]interface{}{
		"categories": []interface{}{"A"},
		"values":     []interface{}{1.0},
		"title":      "first",
	})
	second := call_part("create_pie_chart", map[string]interface{}{
		"labels": []interface{}{"x"},
		"values": []interface{}{1.0},
		"title":  "second",
	})
	result := cache.Process_Model_Response(models.Model_Response{
		Parts: []models.Model_Part{first, second},
	})
	if len(result.Chart_Results) != 2 {
		t.Fatalf("expected 2 chart results, got %d", len(result.Chart_Results))
	}
	title := result.Chart_Results[0]["layout"].(map[string]interface{})["title"].(map[string]interface{})["text"]
	if title != "first" {
		t.Errorf("first chart title = %v, results out of order", title)
	}
}
