package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/answerdesk/answerdesk/internal/config"
	"github.com/answerdesk/answerdesk/internal/debug"
	"github.com/answerdesk/answerdesk/internal/knowledge"
	"github.com/answerdesk/answerdesk/internal/match"
	"github.com/answerdesk/answerdesk/internal/synonym"
	"github.com/answerdesk/answerdesk/internal/version"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("data") {
		cfg.Data.Path = c.String("data")
	}
	if c.IsSet("sheet") {
		cfg.Data.Sheet = c.String("sheet")
	}
	if c.IsSet("threshold") {
		cfg.Match.FuzzyThreshold = c.Int("threshold")
	}
	if c.IsSet("algorithm") {
		cfg.Match.FuzzyAlgorithm = c.String("algorithm")
	}
	if c.IsSet("watch") {
		cfg.Data.Watch = c.Bool("watch")
	}
	if c.IsSet("word-boundary") {
		cfg.Normalize.WordBoundary = c.Bool("word-boundary")
	}
	if c.IsSet("stemming") {
		cfg.Match.KeywordStemming = c.Bool("stemming")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildMatcher assembles the resolution pipeline from configuration
func buildMatcher(cfg *config.Config) *match.Matcher {
	normalizer := synonym.NewNormalizer(cfg.SynonymTable(), cfg.Normalize.WordBoundary)
	scorer := match.NewScorer(cfg.Match.FuzzyThreshold, cfg.Match.FuzzyAlgorithm)
	return match.NewMatcher(normalizer, scorer, cfg.Match.KeywordStemming)
}

func loadOptions(cfg *config.Config) knowledge.LoadOptions {
	return knowledge.LoadOptions{
		Sheet:   cfg.Data.Sheet,
		Include: cfg.Data.Include,
		Exclude: cfg.Data.Exclude,
	}
}

func main() {
	debug.SetDebugOutput(os.Stderr)

	app := &cli.App{
		Name:                   "answerdesk",
		Usage:                  "Spreadsheet-backed question answering for chat front-ends",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigPath,
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Data file or directory with question/answer rows (overrides config)",
			},
			&cli.StringFlag{
				Name:  "sheet",
				Usage: "Worksheet name for xlsx files (default: first sheet)",
			},
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Fuzzy acceptance score 0-100 (overrides config)",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Usage: "Fuzzy algorithm: token-set, jaro-winkler, levenshtein, cosine",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Reload the table when the data file changes",
			},
			&cli.BoolFlag{
				Name:  "word-boundary",
				Usage: "Restrict synonym replacement to whole words",
			},
			&cli.BoolFlag{
				Name:  "stemming",
				Usage: "Compare word stems in the keyword stage",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Resolve a single question and print the answer",
				ArgsUsage: "<question>",
				Action:    runAsk,
			},
			{
				Name:   "chat",
				Usage:  "Interactive question/answer session",
				Action: runChat,
			},
			{
				Name:   "check",
				Usage:  "Validate the configuration and data source",
				Action: runCheck,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAsk(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: answerdesk ask <question>")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	table, err := knowledge.Load(cfg.Data.Path, loadOptions(cfg))
	if err != nil {
		return err
	}

	matcher := buildMatcher(cfg)
	query := strings.Join(c.Args().Slice(), " ")
	fmt.Println(matcher.Resolve(query, table.Rows()))
	return nil
}

func runChat(c *cli.Context) error {
	// Debug output would interleave with the prompt.
	debug.SetQuietMode(true)

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	table, err := knowledge.Load(cfg.Data.Path, loadOptions(cfg))
	if err != nil {
		return err
	}
	store := knowledge.NewStore(table)

	if cfg.Data.Watch {
		watcher, err := knowledge.NewWatcher(cfg.Data.Path, loadOptions(cfg), store,
			time.Duration(cfg.Data.WatchDebounceMs)*time.Millisecond)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	matcher := buildMatcher(cfg)

	fmt.Printf("answerdesk %s — loaded %d questions from %s\n", version.Info(), table.Len(), cfg.Data.Path)
	fmt.Println(`Ask me anything. Type "exit" to quit.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "exit", "quit":
			return nil
		case "":
			continue
		}

		fmt.Println(matcher.Resolve(query, store.Table().Rows()))
	}
}

func runCheck(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	table, err := knowledge.Load(cfg.Data.Path, loadOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("config OK: fuzzy %s @ %d, word boundary %v, stemming %v\n",
		cfg.Match.FuzzyAlgorithm, cfg.Match.FuzzyThreshold,
		cfg.Normalize.WordBoundary, cfg.Match.KeywordStemming)
	fmt.Printf("data OK: %d rows from %s\n", table.Len(), cfg.Data.Path)
	if table.Len() == 0 {
		fmt.Println("warning: table has zero rows; every query will hit the fallback message")
	}
	return nil
}
