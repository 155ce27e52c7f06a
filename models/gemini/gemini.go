package gemini

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Desarso/vizchat/models"
	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

const generateContentURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Generate_Content issues one generateContent call and returns the provider
// response converted to the neutral Model_Response shape. Transport errors
// are returned to the caller untouched; this layer never retries.
func Generate_Content(model string, contents []Gemini_Content, config Generation_Config) (models.Model_Response, error) {
	if len(contents) == 0 {
		return models.Model_Response{}, fmt.Errorf("cannot create gemini request with no content")
	}

	requestBody := create_gemini_request(contents, config)
	jsonBytes, err := json.Marshal(requestBody)
	if err != nil {
		return models.Model_Response{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	geminiResponse, err := make_request(string(jsonBytes), model)
	if err != nil {
		return models.Model_Response{}, err
	}
	return gemini_response_to_model_response(geminiResponse), nil
}

func create_gemini_request(contents []Gemini_Content, config Generation_Config) Gemini_Request_Body {
	geminiTools := []Gemini_Tools{}
	if len(config.Tools) > 0 {
		geminiTools = append(geminiTools, Gemini_Tools{FunctionDeclarations: config.Tools})
	}

	var systemInstruction *SystemInstruction
	if config.SystemInstruction != "" {
		systemInstruction = &SystemInstruction{
			Parts: []SystemPart{{Text: config.SystemInstruction}},
		}
	}

	return Gemini_Request_Body{
		Contents:          &contents,
		Tools:             &geminiTools,
		SystemInstruction: systemInstruction,
		GenerationConfig: &Request_Generation_Config{
			Temperature:     config.Temperature,
			MaxOutputTokens: config.MaxOutputTokens,
		},
	}
}

func make_request(requestBody string, model string) (Gemini_response, error) {
	url := fmt.Sprintf(generateContentURL, model, os.Getenv("GEMINI_API_KEY"))
	resp, err := http.Post(url, "application/json", strings.NewReader(requestBody))
	if err != nil {
		return Gemini_response{}, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Gemini_response{}, fmt.Errorf("error reading gemini response body: %w", err)
	}

	var response Gemini_response
	if err := json.Unmarshal(body, &response); err != nil {
		return Gemini_response{}, fmt.Errorf("error unmarshalling gemini response: %w", err)
	}

	if response.Error != nil {
		return Gemini_response{}, fmt.Errorf("gemini API error %d (%s): %s",
			response.Error.Code, response.Error.Status, response.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return Gemini_response{}, fmt.Errorf("unexpected status code %d from gemini API", resp.StatusCode)
	}

	return response, nil
}

func gemini_response_to_model_response(response Gemini_response) models.Model_Response {
	modelResponse := models.Model_Response{}
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			var modelPart models.Model_Part
			if part.Text != nil && *part.Text != "" {
				modelPart.Text = part.Text
			}
			if part.FunctionCall != nil {
				modelPart.FunctionCall = &models.FunctionCall{
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				}
			}
			modelResponse.Parts = append(modelResponse.Parts, modelPart)
		}
	}
	return modelResponse
}
