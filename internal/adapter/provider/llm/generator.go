// Package llm implements the content generator on top of the Anthropic
// Messages API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/vocabquiz/internal/config"
	"github.com/heartmarshall/vocabquiz/internal/provider"
	"github.com/heartmarshall/vocabquiz/pkg/ctxutil"
)

// Generator asks Claude for vocabulary entries and quiz sentences. Calls are
// throttled, bounded by a per-attempt timeout and retried on transport
// errors, 5xx and 429 responses.
type Generator struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	limiter     *rate.Limiter
	log         *slog.Logger
}

// New creates a Generator from the generator config.
func New(cfg config.GeneratorConfig, logger *slog.Logger) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0), // retries are handled here, with logging
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Generator{
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		maxAttempts: attempts,
		backoff:     cfg.RetryBackoff,
		limiter:     rate.NewLimiter(limit, 1),
		log:         logger.With("adapter", "llm"),
	}, nil
}

// GenerateEntry asks for a full entry. An empty JSON object means nothing was generated.
func (g *Generator) GenerateEntry(ctx context.Context, req provider.EntryRequest) (*provider.EntryResult, error) {
	text, err := g.complete(ctx, req.Word, buildEntryPrompt(req))
	if err != nil {
		return nil, err
	}

	var res provider.EntryResult
	if err := decodeJSON(text, &res); err != nil {
		return nil, fmt.Errorf("llm: entry for %q: %w", req.Word, err)
	}
	if res == (provider.EntryResult{}) {
		return nil, nil
	}
	return &res, nil
}

type sentencesResponse struct {
	Sentences []string `json:"sentences"`
}

// GenerateSentences asks for up to req.Count sentences using the headword.
func (g *Generator) GenerateSentences(ctx context.Context, req provider.SentenceRequest) ([]string, error) {
	if req.Count <= 0 {
		return nil, nil
	}
	text, err := g.complete(ctx, req.Word, buildSentencePrompt(req))
	if err != nil {
		return nil, err
	}

	var res sentencesResponse
	if err := decodeJSON(text, &res); err != nil {
		return nil, fmt.Errorf("llm: sentences for %q: %w", req.Word, err)
	}
	if len(res.Sentences) > req.Count {
		res.Sentences = res.Sentences[:req.Count]
	}
	return res.Sentences, nil
}

// complete sends one prompt and returns the concatenated text of the reply.
func (g *Generator) complete(ctx context.Context, word, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	log := g.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if attempt > 1 {
			log.WarnContext(ctx, "llm retry",
				slog.String("word", word),
				slog.Int("attempt", attempt),
				slog.String("reason", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt-1) * g.backoff):
			}
		}

		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("llm: rate limit wait: %w", err)
		}

		text, err := g.send(ctx, params)
		if err == nil {
			log.DebugContext(ctx, "llm response", slog.String("word", word), slog.Int("attempt", attempt), slog.Int("bytes", len(text)))
			return text, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}
	return "", fmt.Errorf("llm: request for %q: %w", word, lastErr)
}

func (g *Generator) send(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("empty response")
	}
	return b.String(), nil
}

// retryable reports whether a failed attempt may be repeated: transport
// errors, timeouts of a single attempt, server errors and rate limiting.
// Cancellation of the caller's context is final.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError || apiErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// decodeJSON extracts the first JSON object of text into v.
func decodeJSON(text string, v any) error {
	raw, err := extractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// extractJSON finds the outermost JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

var _ provider.Generator = (*Generator)(nil)
