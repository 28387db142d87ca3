package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	aderrors "github.com/answerdesk/answerdesk/internal/errors"
	"github.com/answerdesk/answerdesk/internal/match"
	"github.com/answerdesk/answerdesk/internal/synonym"
)

// DefaultConfigPath is where Load looks when no path is given
const DefaultConfigPath = ".answerdesk.toml"

type Config struct {
	Data      Data           `toml:"data"`
	Match     Match          `toml:"match"`
	Normalize Normalize      `toml:"normalize"`
	Synonyms  []SynonymEntry `toml:"synonyms"`
}

type Data struct {
	Path  string `toml:"path"`
	Sheet string `toml:"sheet"` // xlsx sheet name; empty means first sheet

	// Glob patterns for directory loads
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`

	Watch           bool `toml:"watch"`             // reload the table when the data file changes
	WatchDebounceMs int  `toml:"watch_debounce_ms"` // debounce time for file change events
}

type Match struct {
	FuzzyThreshold  int    `toml:"fuzzy_threshold"` // 0-100 acceptance score for the fuzzy stage
	FuzzyAlgorithm  string `toml:"fuzzy_algorithm"`
	KeywordStemming bool   `toml:"keyword_stemming"` // compare word stems in the keyword stage
}

type Normalize struct {
	// WordBoundary restricts synonym replacement to whole-word occurrences.
	// Off by default: plain substring replacement is the compatibility
	// behavior, embedded-variant collisions included.
	WordBoundary bool `toml:"word_boundary"`

	// ReplaceBuiltinSynonyms drops the built-in synonym table instead of
	// appending the configured entries after it.
	ReplaceBuiltinSynonyms bool `toml:"replace_builtin_synonyms"`
}

// SynonymEntry is one configured substitution rule. Entry order in the
// config file is preserved and is significant.
type SynonymEntry struct {
	Canonical string   `toml:"canonical"`
	Variants  []string `toml:"variants"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Data: Data{
			Path:            "qa.xlsx",
			WatchDebounceMs: 250,
		},
		Match: Match{
			FuzzyThreshold: match.DefaultFuzzyThreshold,
			FuzzyAlgorithm: match.AlgorithmTokenSet,
		},
	}
}

// Load reads the TOML config at path, falling back to defaults when the file
// does not exist. Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, aderrors.NewConfigError("config", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, aderrors.NewConfigError("config", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and the configured synonym entries
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return aderrors.NewConfigError("data.path", "", fmt.Errorf("data path must not be empty"))
	}
	if c.Data.WatchDebounceMs < 0 {
		return aderrors.NewConfigError("data.watch_debounce_ms",
			fmt.Sprintf("%d", c.Data.WatchDebounceMs), fmt.Errorf("debounce must not be negative"))
	}
	if c.Match.FuzzyThreshold < 0 || c.Match.FuzzyThreshold > 100 {
		return aderrors.NewConfigError("match.fuzzy_threshold",
			fmt.Sprintf("%d", c.Match.FuzzyThreshold), fmt.Errorf("threshold must be between 0 and 100"))
	}
	if err := match.ValidateAlgorithm(c.Match.FuzzyAlgorithm); err != nil {
		return aderrors.NewConfigError("match.fuzzy_algorithm", c.Match.FuzzyAlgorithm, err)
	}
	if err := c.synonymEntries().Validate(); err != nil {
		return aderrors.NewConfigError("synonyms", "", err)
	}
	return nil
}

// SynonymTable builds the effective substitution table: the built-in table
// followed by the configured entries, or the configured entries alone when
// replace_builtin_synonyms is set.
func (c *Config) SynonymTable() synonym.Table {
	if c.Normalize.ReplaceBuiltinSynonyms {
		return c.synonymEntries()
	}
	return append(synonym.DefaultTable(), c.synonymEntries()...)
}

func (c *Config) synonymEntries() synonym.Table {
	table := make(synonym.Table, 0, len(c.Synonyms))
	for _, e := range c.Synonyms {
		table = append(table, synonym.Entry{Canonical: e.Canonical, Variants: e.Variants})
	}
	return table
}
