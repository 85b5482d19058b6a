package config

import (
	"path/filepath"
	"slices"
	"time"
)

// Config is the root configuration of the content pipeline tools.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Paths     PathsConfig     `yaml:"paths"`
	Generator GeneratorConfig `yaml:"generator"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// PathsConfig locates every CSV the pipeline reads or writes.
// File names are relative to DataDir unless absolute.
type PathsConfig struct {
	DataDir       string `yaml:"data_dir"       env:"PATHS_DATA_DIR"       env-default:"data"`
	MasterList    string `yaml:"master_list"    env:"PATHS_MASTER_LIST"    env-default:"vocabularyList.csv"`
	Catalogue     string `yaml:"catalogue"      env:"PATHS_CATALOGUE"      env-default:"vocabulary_content_new.csv"`
	LevelIndex    string `yaml:"level_index"    env:"PATHS_LEVEL_INDEX"    env-default:"vocabulary_levels.csv"`
	MissingWords  string `yaml:"missing_words"  env:"PATHS_MISSING_WORDS"  env-default:"missing_words_with_levels.csv"`
	LevelFile     string `yaml:"level_file"     env:"PATHS_LEVEL_FILE"     env-default:"quiz_sentences_%s.csv"`
	L4BatchFile   string `yaml:"l4_batch_file"  env:"PATHS_L4_BATCH_FILE"  env-default:"l4_batch_%02d.csv"`
	L2StagingFile string `yaml:"l2_staging"     env:"PATHS_L2_STAGING"     env-default:"l2_staging.csv"`
	RulesFile     string `yaml:"rules_file"     env:"PATHS_RULES_FILE"`
}

// GeneratorConfig selects and tunes the content provider.
type GeneratorConfig struct {
	Provider          string        `yaml:"provider"            env:"GENERATOR_PROVIDER"            env-default:"stub"`
	APIKey            string        `yaml:"api_key"             env:"GENERATOR_API_KEY"`
	BaseURL           string        `yaml:"base_url"            env:"GENERATOR_BASE_URL"`
	Model             string        `yaml:"model"               env:"GENERATOR_MODEL"               env-default:"claude-sonnet-4-5"`
	MaxTokens         int64         `yaml:"max_tokens"          env:"GENERATOR_MAX_TOKENS"          env-default:"1024"`
	Timeout           time.Duration `yaml:"timeout"             env:"GENERATOR_TIMEOUT"             env-default:"60s"`
	MaxAttempts       int           `yaml:"max_attempts"        env:"GENERATOR_MAX_ATTEMPTS"        env-default:"3"`
	RetryBackoff      time.Duration `yaml:"retry_backoff"       env:"GENERATOR_RETRY_BACKOFF"       env-default:"1s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"GENERATOR_REQUESTS_PER_SECOND" env-default:"2"`
	Concurrency       int           `yaml:"concurrency"         env:"GENERATOR_CONCURRENCY"         env-default:"1"`
}

// PipelineConfig holds batch-shape settings.
type PipelineConfig struct {
	MaxSentencesPerWord int `yaml:"max_sentences_per_word" env:"PIPELINE_MAX_SENTENCES_PER_WORD" env-default:"10"`
	L4BatchSize         int `yaml:"l4_batch_size"          env:"PIPELINE_L4_BATCH_SIZE"          env-default:"25"`
}

// Known provider names.
const (
	ProviderStub      = "stub"
	ProviderAnthropic = "anthropic"
)

var knownProviders = []string{ProviderStub, ProviderAnthropic}

// Resolve joins name onto DataDir unless name is already absolute.
func (p PathsConfig) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.DataDir, name)
}

// IsKnownProvider reports whether name is a supported provider.
func IsKnownProvider(name string) bool {
	return slices.Contains(knownProviders, name)
}
