package vizchat

import (
	"log"
	"os"
	"strings"

	"github.com/Desarso/vizchat/chart_tools"
	"github.com/Desarso/vizchat/models"
	"github.com/Desarso/vizchat/models/gemini"
)

var workflow_logger = log.New(os.Stdout, "[WORKFLOW] ", log.LstdFlags)

// Workflow classification of a single model turn. Visualization requests
// follow a two step workflow: generate a dataset, then call a chart tool on
// it. A turn with at least one chart result is complete regardless of
// whether data tools also ran; data with no chart means the model stopped
// halfway and needs a completion turn.
const (
	Workflow_Complete   = "complete"
	Workflow_Incomplete = "incomplete"
	Workflow_Text_Only  = "text_only"
)

// Chart_Fallback_Text leads a mixed content reply when the model produced a
// chart but no accompanying prose.
const Chart_Fallback_Text = "Here's the visualisation you requested:"

// Workflow_Result is the parsed outcome of one model turn.
type Workflow_Result struct {
	// Workflow_Type is one of Workflow_Complete, Workflow_Incomplete or
	// Workflow_Text_Only.
	Workflow_Type string

	// Text is the content to hand back to the caller. For complete turns it
	// is mixed content carrying the chart figures; otherwise plain text.
	Text models.Content

	// Data_Results holds the raw output of every data generation call, in
	// call order.
	Data_Results []map[string]interface{}

	// Chart_Results holds one figure per chart creation call, in call order.
	Chart_Results []map[string]interface{}

	// Function_Messages are the function-role messages exposing data tool
	// output, ready to splice into a completion conversation.
	Function_Messages []models.Chat_Message
}

// max_tool_calls is the per-turn invocation bound of the active generation
// profile. Calls past the bound are dropped unexecuted.
func max_tool_calls() int {
	return gemini.Get_Appropriate_Config(nil, false).MaxToolCalls
}

// Process_Model_Response executes every function call in a model turn up to
// the profile's invocation bound, classifies the turn and assembles the
// content the caller should see. Unknown or failing calls are skipped as if
// the model never made them.
func (c *Data_Cache) Process_Model_Response(response models.Model_Response) Workflow_Result {
	result := Workflow_Result{}

	calls := response.FunctionCalls()
	if max := max_tool_calls(); max > 0 && len(calls) > max {
		workflow_logger.Printf("model returned %d tool calls, executing the first %d", len(calls), max)
		calls = calls[:max]
	}

	for _, call := range calls {
		workflow_logger.Printf("executing %s", call.Name)
		output, ok := chart_tools.Execute_Function(call.Name, call.Args)
		if !ok {
			continue
		}

		switch {
		case chart_tools.Is_Data_Generation_Function(call.Name):
			result.Data_Results = append(result.Data_Results, output)
			result.Function_Messages = c.Attach_Function_Message(result.Function_Messages, call.Name, output)
		case chart_tools.Is_Chart_Creation_Function(call.Name):
			if figure, ok := output["figure"].(map[string]interface{}); ok {
				result.Chart_Results = append(result.Chart_Results, figure)
			}
		}
	}

	switch {
	case len(result.Chart_Results) > 0:
		result.Workflow_Type = Workflow_Complete
	case len(result.Data_Results) > 0:
		result.Workflow_Type = Workflow_Incomplete
	default:
		result.Workflow_Type = Workflow_Text_Only
	}

	text := strings.TrimSpace(response.Text())
	if len(result.Chart_Results) > 0 {
		if text == "" {
			text = Chart_Fallback_Text
		}
		result.Text = models.Mixed_Content(text, result.Chart_Results)
	} else {
		result.Text = models.Text_Content(text)
	}

	workflow_logger.Printf("turn classified as %s (%d data, %d chart results)",
		result.Workflow_Type, len(result.Data_Results), len(result.Chart_Results))
	return result
}

// Process_Model_Response parses a turn using the process-wide data cache.
func Process_Model_Response(response models.Model_Response) Workflow_Result {
	return Default_Data_Cache.Process_Model_Response(response)
}
