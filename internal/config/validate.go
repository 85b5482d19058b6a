package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return fmt.Errorf("paths: data_dir must not be empty")
	}
	if !strings.Contains(c.Paths.LevelFile, "%s") {
		return fmt.Errorf("paths: level_file must contain %%s for the level name (got %q)", c.Paths.LevelFile)
	}
	if !strings.Contains(c.Paths.L4BatchFile, "%") {
		return fmt.Errorf("paths: l4_batch_file must contain a number verb (got %q)", c.Paths.L4BatchFile)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))
	if !IsKnownProvider(g.Provider) {
		return fmt.Errorf("unknown provider %q", g.Provider)
	}
	if g.Provider == ProviderAnthropic && g.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %q", g.Provider)
	}
	if g.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", g.Concurrency)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", g.MaxAttempts)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	if g.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be >= 0 (got %v)", g.RequestsPerSecond)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if p.MaxSentencesPerWord < 1 || p.MaxSentencesPerWord > 10 {
		return fmt.Errorf("max_sentences_per_word must be in [1, 10] (got %d)", p.MaxSentencesPerWord)
	}
	if p.L4BatchSize < 1 {
		return fmt.Errorf("l4_batch_size must be >= 1 (got %d)", p.L4BatchSize)
	}
	return nil
}
