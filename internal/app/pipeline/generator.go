package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/adapter/provider/llm"
	"github.com/heartmarshall/vocabquiz/internal/adapter/provider/stub"
	"github.com/heartmarshall/vocabquiz/internal/config"
	"github.com/heartmarshall/vocabquiz/internal/provider"
)

// NewGenerator builds the content generator selected by cfg.Provider.
func NewGenerator(cfg config.GeneratorConfig, logger *slog.Logger) (provider.Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderStub, "":
		logger.Info("using stub generator: no content will be generated")
		return stub.New(), nil
	case config.ProviderAnthropic:
		g, err := llm.New(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create generator: %w", err)
		}
		logger.Info("using anthropic generator", slog.String("model", cfg.Model), slog.Float64("rps", cfg.RequestsPerSecond))
		return g, nil
	}
	return nil, fmt.Errorf("create generator: unknown provider %q", cfg.Provider)
}
