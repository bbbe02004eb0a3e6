package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

const (
	generationModel = "gemini-3-pro-preview"
	researchModel   = "gemini-3-flash-preview"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Generator is the narrow AI contract the domain services depend on.
// The data layer treats the model as an opaque text/JSON producer and
// never validates its correctness.
type Generator interface {
	// Generate returns plain text for a prompt under a persona system
	// instruction. An empty system instruction is allowed.
	Generate(ctx context.Context, model, system, prompt string) (string, error)

	// GenerateJSON asks for a response constrained to schema and
	// unmarshals it into out.
	GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, out any) error
}

// Gemini implements Generator over the Google generative language API.
type Gemini struct {
	client *genai.Client
}

// NewGemini wraps an initialized genai client.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client}
}

// Generate returns plain text for the prompt.
func (g *Gemini) Generate(ctx context.Context, model, system, prompt string) (string, error) {
	m := g.client.GenerativeModel(model)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return responseText(resp)
}

// GenerateJSON returns a schema-constrained JSON response unmarshaled
// into out.
func (g *Gemini) GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, out any) error {
	m := g.client.GenerativeModel(model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = schema

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}

// responseText flattens the first candidate's parts into a string.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
