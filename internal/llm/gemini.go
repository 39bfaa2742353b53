package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akorchagin/procsim/internal/config"
	"github.com/akorchagin/procsim/internal/domain"
	"google.golang.org/genai"
)

// scoreTemperature keeps grading output near-deterministic.
const scoreTemperature = float32(0.1)

// scorecardSchema constrains assessment responses to the scorecard shape.
// Structured output beats free-text scraping, but the model still is not
// contractually bounded on the numeric ranges.
var scorecardSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"total_score": {Type: genai.TypeInteger},
		"commercial":  {Type: genai.TypeInteger},
		"strategy":    {Type: genai.TypeInteger},
		"feedback":    {Type: genai.TypeString},
	},
	Required: []string{"total_score", "commercial", "strategy", "feedback"},
}

// Gemini implements Client on the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// Ensure Gemini implements Client.
var _ Client = (*Gemini)(nil)

// NewGemini creates a Gemini-backed completion client. Depending on
// configuration it talks to the public API (key) or a Vertex deployment
// (project/location pair).
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	cc := &genai.ClientConfig{}
	if cfg.UsesVertex() {
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	} else {
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model}, nil
}

// Reply sends the transcript plus a system instruction and returns the
// counterparty's free-text reply.
func (g *Gemini) Reply(ctx context.Context, systemInstruction string, history []domain.Turn, temperature float32) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleCounterparty {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	temp := temperature
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		Temperature:       &temp,
	})
	if err != nil {
		return "", fmt.Errorf("%w: generate reply: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate", ErrUnavailable)
	}
	return text, nil
}

// Score requests a schema-constrained scorecard for the grading prompt.
func (g *Gemini) Score(ctx context.Context, prompt string) (domain.Scorecard, error) {
	temp := scoreTemperature
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   scorecardSchema,
	})
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("%w: generate scorecard: %v", ErrUnavailable, err)
	}

	var card domain.Scorecard
	if err := json.Unmarshal([]byte(resp.Text()), &card); err != nil {
		return domain.Scorecard{}, fmt.Errorf("%w: decode scorecard: %v", ErrUnavailable, err)
	}
	return card, nil
}
