package quiz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

//go:embed rules_default.yaml
var defaultRulesYAML []byte

// Rules is the data side of sentence quality: banned openings, authoring
// templates per level, and word-specific fallback sentences.
type Rules struct {
	BannedPrefixes []string                  `yaml:"banned_prefixes"`
	Templates      map[domain.Level][]string `yaml:"templates"`
	Fallbacks      map[string][]string       `yaml:"fallbacks"`
}

// DefaultRules returns the embedded rule set.
func DefaultRules() (*Rules, error) {
	return parseRules(defaultRulesYAML)
}

// LoadRules reads a rules file. Sections absent from the file keep their
// embedded defaults. An empty path returns the defaults.
func LoadRules(path string) (*Rules, error) {
	rules, err := DefaultRules()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	override, err := parseRules(data)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}

	if override.BannedPrefixes != nil {
		rules.BannedPrefixes = override.BannedPrefixes
	}
	if override.Templates != nil {
		rules.Templates = override.Templates
	}
	if override.Fallbacks != nil {
		rules.Fallbacks = override.Fallbacks
	}
	return rules, nil
}

func parseRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	for level, templates := range r.Templates {
		if !level.IsValid() {
			return nil, fmt.Errorf("parse rules: unknown template level %q", level)
		}
		for i, t := range templates {
			if !strings.Contains(t, domain.AuthoringBlank) {
				return nil, fmt.Errorf("parse rules: %s template %d has no %s", level, i, domain.AuthoringBlank)
			}
		}
	}

	if r.Fallbacks != nil {
		fallbacks := make(map[string][]string, len(r.Fallbacks))
		for word, sentences := range r.Fallbacks {
			key := domain.NormalizeText(word)
			fallbacks[key] = append(fallbacks[key], sentences...)
		}
		r.Fallbacks = fallbacks
	}
	return &r, nil
}

// FallbacksFor returns the fallback sentences of a word, in file order.
func (r *Rules) FallbacksFor(word string) []string {
	return r.Fallbacks[domain.NormalizeText(word)]
}

// TemplatesFor returns the authoring templates of a level.
func (r *Rules) TemplatesFor(level domain.Level) []string {
	return r.Templates[level]
}
