// Package agent implements the two-stage research → plan pipeline that
// turns a destination and trip duration into a natural-language itinerary.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/danielpatrickdp/travel-eval/internal/logstore"
)

// #region generator

// Generator produces text from a prompt. The pipeline is agnostic to how
// the text is produced; a Gemini implementation lives in internal/gemini.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// #endregion generator

// #region pipeline

// Pipeline coordinates the researcher and planner stages and logs each
// interaction for later evaluation.
type Pipeline struct {
	researcher Generator // optional; planner runs alone when nil
	planner    Generator
	store      *logstore.Store // optional; nil disables logging
	modelName  string
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithResearcher enables the research stage.
func WithResearcher(g Generator) Option {
	return func(p *Pipeline) { p.researcher = g }
}

// WithStore enables interaction logging to the given store.
func WithStore(s *logstore.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// WithModelName records the model name in logged metadata.
func WithModelName(name string) Option {
	return func(p *Pipeline) { p.modelName = name }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a Pipeline around the planner generator.
func NewPipeline(planner Generator, opts ...Option) *Pipeline {
	p := &Pipeline{planner: planner}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// #endregion pipeline

// #region itinerary

// Itinerary runs the pipeline for one request and returns the cleaned
// planner output. The research stage degrades gracefully: on error the
// planner runs without notes.
func (p *Pipeline) Itinerary(ctx context.Context, destination string, numDays int) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("destination is required")
	}
	if numDays < 1 {
		return "", fmt.Errorf("day count must be positive, got %d", numDays)
	}

	var notes string
	if p.researcher != nil {
		raw, err := p.researcher.Generate(ctx, researcherPrompt(destination, numDays))
		if err != nil {
			p.logger.Warn("research stage failed, planning without notes",
				"destination", destination, "error", err.Error())
		} else {
			notes = CleanResponse(raw)
		}
	}

	raw, err := p.planner.Generate(ctx, plannerPrompt(destination, numDays, notes))
	if err != nil {
		return "", fmt.Errorf("plan itinerary: %w", err)
	}
	itinerary := CleanResponse(raw)

	if p.store != nil {
		if err := p.logInteraction(destination, numDays, itinerary, notes); err != nil {
			p.logger.Warn("failed to log interaction",
				"destination", destination, "error", err.Error())
		}
	}

	return itinerary, nil
}

func (p *Pipeline) logInteraction(destination string, numDays int, itinerary, notes string) error {
	meta, _ := json.Marshal(map[string]string{
		"agent_name": "planner",
		"model":      p.modelName,
	})
	_, err := p.store.Append(logstore.Entry{
		Destination:     destination,
		NumDays:         numDays,
		Response:        itinerary,
		ResearcherNotes: notes,
		MetadataJSON:    string(meta),
	})
	return err
}

// #endregion itinerary

// #region clean

var (
	thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)
	blankRuns  = regexp.MustCompile(`\n\s*\n`)
)

// CleanResponse strips <think> blocks emitted by reasoning models and
// collapses the blank-line runs left behind.
func CleanResponse(s string) string {
	s = thinkBlock.ReplaceAllString(s, "")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// #endregion clean
