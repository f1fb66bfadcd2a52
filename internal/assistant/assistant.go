// Package assistant drafts editorial text through a generative model. Each
// operation builds one prompt and makes exactly one call; failures are
// returned to the caller without retry.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/metrics"
)

const (
	outlinePrompt  = `Act as a senior cybersecurity editor. Generate a professional news article outline for the topic: "%s". Include technical details, potential impact, and mitigation steps. Format as Markdown.`
	cvePrompt      = `Provide a concise cybersecurity summary of the vulnerability %s. Include severity, affected versions, and a brief description.`
	trendingPrompt = `List 5 trending cybersecurity news topics for today. Be specific about recent threats or research.`
)

var (
	// ErrDisabled is returned when no generator is configured
	ErrDisabled = errors.New("assistant is not configured")
	// ErrEmptyInput is returned for a blank topic or CVE id
	ErrEmptyInput = errors.New("assistant input is empty")
)

// Generator produces text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Assistant wraps a Generator with the newsroom prompts
type Assistant struct {
	gen Generator
	log zerolog.Logger
}

// New creates an assistant. A nil generator yields an assistant whose
// operations all return ErrDisabled.
func New(gen Generator, log zerolog.Logger) *Assistant {
	return &Assistant{
		gen: gen,
		log: log.With().Str("component", "assistant").Logger(),
	}
}

// Enabled reports whether a generator is configured
func (a *Assistant) Enabled() bool {
	return a != nil && a.gen != nil
}

// ArticleOutline drafts a Markdown outline for topic
func (a *Assistant) ArticleOutline(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic", ErrEmptyInput)
	}
	return a.generate(ctx, "outline", fmt.Sprintf(outlinePrompt, topic))
}

// SummarizeCVE summarizes a vulnerability by its CVE id
func (a *Assistant) SummarizeCVE(ctx context.Context, cveID string) (string, error) {
	cveID = strings.TrimSpace(cveID)
	if cveID == "" {
		return "", fmt.Errorf("%w: cve id", ErrEmptyInput)
	}
	return a.generate(ctx, "cve_summary", fmt.Sprintf(cvePrompt, cveID))
}

// TrendingTopics lists five current security news topics
func (a *Assistant) TrendingTopics(ctx context.Context) (string, error) {
	return a.generate(ctx, "trending", trendingPrompt)
}

func (a *Assistant) generate(ctx context.Context, kind, prompt string) (string, error) {
	if !a.Enabled() {
		return "", ErrDisabled
	}

	start := time.Now()
	text, err := a.gen.Generate(ctx, prompt)
	metrics.ObserveAssistantRequest(kind, err, time.Since(start))
	if err != nil {
		a.log.Error().Err(err).Str("kind", kind).Msg("Generation failed")
		return "", fmt.Errorf("generate %s: %w", kind, err)
	}

	a.log.Debug().Str("kind", kind).Int("chars", len(text)).Dur("duration", time.Since(start)).Msg("Generation complete")
	return text, nil
}
