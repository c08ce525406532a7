// Package spell provides LLM-backed spell correction for search
// queries. The corrector runs in parallel with vendor fetches, so a
// slow or unavailable model costs nothing but the missing suggestion.
package spell

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/fynda/backend/internal/domain"
)

const (
	// Prompt kept minimal for speed; the model only echoes a corrected
	// query back.
	systemPrompt = `You are a search query spell checker for a fashion shopping app.
Given a user's search query, correct any spelling mistakes and return ONLY the corrected query.
If the query has no mistakes, return it exactly as-is.
Rules:
- Fix typos (e.g., "bwon" -> "brown", "snekers" -> "sneakers")
- Keep the same words/meaning - do NOT add extra words
- Keep it lowercase
- Do NOT add quotes or punctuation
- Do NOT explain, just return the corrected query`

	correctionCacheSize = 1000
	requestTimeout      = 2 * time.Second
	minQueryLength      = 3
)

// Corrector corrects query typos with an OpenAI-compatible chat model.
// Results are cached so repeated queries never hit the API twice.
type Corrector struct {
	client llms.Model
	cache  *lru.Cache[string, domain.SpellCorrection]
	debug  bool
}

// New builds a corrector against an OpenAI-compatible endpoint. An
// empty token disables authentication for local model servers.
func New(baseURL, token, model string, debug bool) (*Corrector, error) {
	if token == "" {
		token = "none"
	}
	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating spell model client: %w", err)
	}

	cache, _ := lru.New[string, domain.SpellCorrection](correctionCacheSize)
	return &Corrector{client: client, cache: cache, debug: debug}, nil
}

// Correct returns a corrected form of the query. Queries too short to
// correct come back unchanged; model failures return an error the
// caller is free to ignore.
func (c *Corrector) Correct(ctx context.Context, query string) (domain.SpellCorrection, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return domain.SpellCorrection{Original: query, Corrected: query}, nil
	}

	if cached, ok := c.cache.Get(query); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	response, err := c.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithMaxTokens(60),
	)
	if err != nil {
		return domain.SpellCorrection{}, fmt.Errorf("spell correction request: %w", err)
	}
	if len(response.Choices) == 0 {
		return domain.SpellCorrection{}, fmt.Errorf("spell correction returned no choices")
	}

	corrected := strings.ToLower(strings.TrimSpace(response.Choices[0].Content))
	corrected = strings.Trim(corrected, `"'`)

	correction, err := buildCorrection(query, corrected)
	if err != nil {
		if c.debug {
			log.Printf("[SPELL] rejected correction %q -> %q: %v", query, corrected, err)
		}
		return domain.SpellCorrection{}, err
	}

	c.cache.Add(query, correction)
	if c.debug && correction.WasCorrected {
		log.Printf("[SPELL] %q -> %q", query, correction.Corrected)
	}
	return correction, nil
}

// buildCorrection sanity-checks the model output. A correction wildly
// different in length from the input is almost certainly the model
// going off script.
func buildCorrection(original, corrected string) (domain.SpellCorrection, error) {
	if corrected == "" {
		return domain.SpellCorrection{}, fmt.Errorf("empty correction")
	}
	inLen, outLen := len(original), len(corrected)
	if outLen > inLen*2 || float64(outLen) < float64(inLen)*0.3 {
		return domain.SpellCorrection{}, fmt.Errorf("correction length %d out of range for input length %d", outLen, inLen)
	}
	return domain.SpellCorrection{
		Original:     original,
		Corrected:    corrected,
		WasCorrected: corrected != strings.ToLower(original),
	}, nil
}
