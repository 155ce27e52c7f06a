package gemini

import "github.com/Desarso/vizchat/models"

type Gemini_response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	ModelVersion  string        `json:"modelVersion"`
	Error         *APIError     `json:"error,omitempty"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role"`
}

type Part struct {
	Text         *string              `json:"text,omitempty"`
	FunctionCall *models.FunctionCall `json:"functionCall,omitempty"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type Request_Part struct {
	Text string `json:"text,omitempty"`
}

type Gemini_Request_Body struct {
	Contents          *[]Gemini_Content          `json:"contents"`
	Tools             *[]Gemini_Tools            `json:"tools,omitempty"`
	SystemInstruction *SystemInstruction         `json:"systemInstruction,omitempty"`
	GenerationConfig  *Request_Generation_Config `json:"generationConfig,omitempty"`
}

type SystemInstruction struct {
	Parts []SystemPart `json:"parts"`
}

type SystemPart struct {
	Text string `json:"text"`
}

type Gemini_Content struct {
	Role  string         `json:"role"`
	Parts []Request_Part `json:"parts"`
}

type Gemini_Tools struct {
	FunctionDeclarations []models.FunctionDeclaration `json:"functionDeclarations"`
}

// Request_Generation_Config is the generationConfig block of the request body.
type Request_Generation_Config struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}
