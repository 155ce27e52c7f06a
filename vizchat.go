package vizchat

import (
	"log"
	"os"
	"sync"

	"github.com/Desarso/vizchat/chart_tools"
	"github.com/Desarso/vizchat/models"
)

var chat_logger = log.New(os.Stdout, "[CHAT] ", log.LstdFlags)

// Failure_Fallback_Text is returned when neither turn produced text nor a
// chart.
const Failure_Fallback_Text = "I've processed your request, but encountered an issue generating the response."

// Agent ties a model transport to the visualization workflow. The zero
// value is not usable; build one with Create_Agent.
type Agent struct {
	Model Model
	Cache *Data_Cache
}

var tool_table_check sync.Once

// Create_Agent returns an agent running the two turn visualization workflow
// against the given model. The first call checks the tool declaration and
// family tables against each other so a drifted declaration fails at process
// start rather than mid-conversation.
func Create_Agent(model Model) Agent {
	tool_table_check.Do(func() {
		if err := chart_tools.VerifyDeclarations(); err != nil {
			panic("tool declaration tables out of sync: " + err.Error())
		}
	})
	return Agent{
		Model: model,
		Cache: Default_Data_Cache,
	}
}

// Generate_Chat_Response runs the bounded visualization workflow:
//
//  1. send the conversation to the model and execute any tool calls
//  2. if a chart came back, return the mixed content immediately
//  3. otherwise build a completion conversation exposing the generated data
//     and forcing the chart call, and try exactly once more
//  4. return whatever the second turn produced, or a fixed fallback line
//
// The model is never called more than twice per request.
func (agent *Agent) Generate_Chat_Response(conversation []models.Chat_Message) (models.Content, error) {
	content, _, err := agent.Generate_Chat_Response_With_Stats(conversation)
	return content, err
}

// Generate_Chat_Response_With_Stats runs the same workflow and additionally
// reports run statistics for tracing.
func (agent *Agent) Generate_Chat_Response_With_Stats(conversation []models.Chat_Message) (models.Content, models.Workflow_Stats, error) {
	stats := models.Workflow_Stats{}

	response, err := agent.Model.Generate(conversation, false)
	if err != nil {
		return models.Content{}, stats, err
	}
	stats.Turns = 1
	first := agent.Cache.Process_Model_Response(response)
	stats.Workflow_Type = first.Workflow_Type
	stats.Data_Calls = len(first.Data_Results)
	stats.Chart_Calls = len(first.Chart_Results)

	if first.Workflow_Type == Workflow_Complete {
		return first.Text, stats, nil
	}

	completionConv := Build_Completion_Conversation(
		conversation,
		first.Workflow_Type,
		first.Function_Messages,
		first.Text,
	)
	response, err = agent.Model.Generate(completionConv, true)
	if err != nil {
		return models.Content{}, stats, err
	}
	stats.Turns = 2
	second := agent.Cache.Process_Model_Response(response)
	stats.Workflow_Type = second.Workflow_Type
	stats.Data_Calls += len(second.Data_Results)
	stats.Chart_Calls += len(second.Chart_Results)

	if second.Workflow_Type == Workflow_Complete {
		return second.Text, stats, nil
	}

	if second.Text.AsText() == "" {
		chat_logger.Printf("workflow still %s after completion turn, returning fallback text", second.Workflow_Type)
		stats.Fell_Back = true
		return models.Text_Content(Failure_Fallback_Text), stats, nil
	}
	return second.Text, stats, nil
}

// Generate_Chat_Response runs the workflow against Gemini using the
// process-wide data cache.
func Generate_Chat_Response(conversation []models.Chat_Message, model string) (models.Content, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	agent := Create_Agent(Gemini_Model{Model_Name: model})
	return agent.Generate_Chat_Response(conversation)
}
