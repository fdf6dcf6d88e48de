// Command cssinspect parses stylesheets and resolves styles against HTML
// documents from the command line. Malformed CSS never fails a run; only
// I/O and configuration problems produce a nonzero exit.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/SkuldNorniern/celeris-sub000/config"
	"github.com/SkuldNorniern/celeris-sub000/css"
	"github.com/SkuldNorniern/celeris-sub000/dom"
	"github.com/SkuldNorniern/celeris-sub000/html"
)

// environment carries what the subcommands need after flag parsing.
type environment struct {
	cfg *config.Config
	log *zap.Logger
}

var env environment

// setup loads configuration and builds the logger before a subcommand runs.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	if path := cmd.String("config"); path != "" {
		env.cfg, err = config.Load(path)
		if err != nil {
			return ctx, err
		}
	} else {
		env.cfg = config.Default()
	}
	if level := cmd.String("log-level"); level != "" {
		env.cfg.Logging.Level = level
	}
	if maxRules := cmd.Int("limit-rules"); maxRules > 0 {
		env.cfg.Limits.MaxRules = int(maxRules)
	}
	if err := env.cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("invalid configuration: %w", err)
	}
	env.log, err = env.cfg.Logging.Build()
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func teardown(ctx context.Context, cmd *cli.Command) error {
	if env.log != nil {
		env.log.Sync()
	}
	return nil
}

func newParser() *css.Parser {
	return css.NewParserWithLimits(env.log, env.cfg.Limits.CSSLimits())
}

// loadSheets parses every readable file into one sheet each. Read errors
// accumulate; readable files still parse.
func loadSheets(paths []string) ([]*css.StyleSheet, error) {
	var err error
	var sheets []*css.StyleSheet
	for _, path := range paths {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			err = multierr.Append(err, fmt.Errorf("reading %s: %w", path, rerr))
			continue
		}
		sheets = append(sheets, newParser().Parse(string(data)))
	}
	return sheets, err
}

// runRules parses and prints every rule of the merged input sheets.
func runRules(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("rules: at least one stylesheet file is required")
	}
	sheets, err := loadSheets(paths)
	merged := css.Merge(sheets...)
	for i, rule := range merged.Rules {
		if sr, ok := rule.(*css.StyleRule); ok {
			for _, sel := range sr.Selectors {
				fmt.Printf("rule %d: %s %s\n", i, sel.String(), sel.Specificity.String())
			}
			for _, d := range sr.Declarations {
				fmt.Printf("    %s\n", d.String())
			}
			continue
		}
		fmt.Printf("rule %d: %s\n", i, rule.CSSText())
	}
	return err
}

// runResolve parses an HTML page, merges its inline styles with any extra
// sheets, and prints the resolved declarations of every element.
func runResolve(ctx context.Context, cmd *cli.Command) error {
	page := cmd.String("page")
	if page == "" {
		return fmt.Errorf("resolve: --page is required")
	}
	data, err := os.ReadFile(page)
	if err != nil {
		return fmt.Errorf("reading %s: %w", page, err)
	}
	root, err := html.ParseString(string(data))
	if err != nil {
		return err
	}

	var sheets []*css.StyleSheet
	for _, text := range html.StyleTexts(root) {
		sheets = append(sheets, newParser().Parse(text))
	}
	extra, err := loadSheets(cmd.StringSlice("sheet"))
	sheets = append(sheets, extra...)
	engine := css.NewStyleEngine(css.Merge(sheets...), env.log)

	root.Walk(func(n *dom.Node) {
		if n.Type != dom.ElementNode {
			return
		}
		styled := engine.ApplyStyles(*n)
		if len(styled.Declarations) == 0 {
			return
		}
		fmt.Printf("<%s", n.TagName)
		if id := n.ID(); id != "" {
			fmt.Printf(" id=%q", id)
		}
		fmt.Println(">")
		for _, d := range styled.Declarations {
			fmt.Printf("    %s\n", d.String())
		}
	})
	return err
}

func main() {
	app := &cli.Command{
		Name:            "cssinspect",
		Usage:           "inspect parsed stylesheets and resolved element styles",
		HideHelpCommand: true,
		Before:          setup,
		After:           teardown,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "log-level", Usage: "override the configured log `LEVEL` (debug, info, warn, error)"},
			&cli.IntFlag{Name: "limit-rules", Usage: "override the top-level rule cap"},
		},
		Commands: []*cli.Command{
			{
				Name:      "rules",
				Usage:     "Parse stylesheet file(s) and print every rule with selector specificity",
				Action:    runRules,
				ArgsUsage: "FILE...",
			},
			{
				Name:   "resolve",
				Usage:  "Resolve styles for every element of an HTML page",
				Action: runResolve,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "page", Usage: "HTML `FILE` to resolve against"},
					&cli.StringSliceFlag{Name: "sheet", Usage: "additional stylesheet `FILE` merged after inline styles"},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssinspect: %v\n", err)
		os.Exit(1)
	}
}
