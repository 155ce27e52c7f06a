package models

import "strings"

// Model_Response is the raw provider response: an ordered sequence of parts,
// each either free text or a tool invocation. Metadata beyond the parts is
// ignored by the workflow core.
type Model_Response struct {
	Parts []Model_Part `json:"parts"`
}

type Model_Part struct {
	Text         *string       `json:"text,omitempty"`
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`
}

// FunctionCall is a model-issued request to run one declared function.
// Read-only once received.
type FunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// Text concatenates the free-text parts of the response. Returns the empty
// string when the response carried only tool invocations.
func (r Model_Response) Text() string {
	var b strings.Builder
	for _, part := range r.Parts {
		if part.Text != nil {
			b.WriteString(*part.Text)
		}
	}
	return b.String()
}

// FunctionCalls returns the tool invocations in the order the model emitted
// them. Ordering is preserved end to end because downstream chart and text
// ordering depends on it.
func (r Model_Response) FunctionCalls() []FunctionCall {
	calls := []FunctionCall{}
	for _, part := range r.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, *part.FunctionCall)
		}
	}
	return calls
}

// Workflow_Stats summarizes one orchestrated run for tracing: how many model
// calls it used, how the final turn classified, how many tool calls of each
// family executed, and whether the caller got the fixed fallback line.
type Workflow_Stats struct {
	Turns         int    `json:"turns"`
	Workflow_Type string `json:"workflow_type"`
	Data_Calls    int    `json:"data_calls"`
	Chart_Calls   int    `json:"chart_calls"`
	Fell_Back     bool   `json:"fell_back"`
}
