// Package gemini provides the Gemini-backed text generator used by the
// agent pipeline.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/danielpatrickdp/travel-eval/internal/agent"
)

// #region generator
// Generator wraps a genai.Client to implement agent.Generator.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a Gemini generator for the given model,
// e.g. "gemini-2.5-flash".
func NewGenerator(client *genai.Client, modelName string) *Generator {
	return &Generator{
		client:    client,
		modelName: modelName,
	}
}
// #endregion generator

// #region generate
// Generate implements agent.Generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.modelName,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in response")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
// #endregion generate

var _ agent.Generator = (*Generator)(nil)
