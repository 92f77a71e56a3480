// Package cmd provides the CLI commands for wordle-patterns.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/benjaminjkraft/wordle-patterns/internal/config"
	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
	"github.com/benjaminjkraft/wordle-patterns/internal/logging"
	"github.com/benjaminjkraft/wordle-patterns/internal/output"
	"github.com/benjaminjkraft/wordle-patterns/internal/wordle"
	"github.com/benjaminjkraft/wordle-patterns/internal/wordlist"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath   string
	solution     string
	wordList     string
	patterns     []string
	patternsFile string
	format       string
	all          bool
	strict       bool
	workers      int
	logLevel     string
	logFile      string
	color        string
	cpuProfile   string

	stopProfile func()
}

// NewRootCmd creates the root command for the wordle-patterns CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordle-patterns [pattern...]",
		Short: "Find words that give a feedback pattern against a solution",
		Long: `wordle-patterns scores every word in a word list against a solution
and reports, for each query pattern, which words produce it.

Patterns use one character per letter:
  G  green: right letter, right place
  Y  yellow: right letter, wrong place
  X  gray: letter not in the solution
  ?  green or yellow
  *  anything

Patterns come from arguments, --pattern or --patterns-file. Only one of the
three may be used; with none, the config file's patterns are used.

Examples:
  wordle-patterns --solution ideal --wordlist words.txt GGGGG '??*??'
  wordle-patterns --patterns-file art.txt --format json`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, args)
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.startProfiling()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			opts.finish()
			return nil
		},
	}
	cmd.SetVersionTemplate("wordle-patterns version {{.Version}}\n")

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.DefaultFileName+" if present)")
	f.StringVarP(&opts.solution, "solution", "s", "", "Solution word")
	f.StringVarP(&opts.wordList, "wordlist", "w", "", "Word list file, one word per line")
	f.StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Query pattern (repeatable; not with --patterns-file or arguments)")
	f.StringVar(&opts.patternsFile, "patterns-file", "", "File of query patterns, one per line (not with --pattern or arguments)")
	f.StringVarP(&opts.format, "format", "f", "", "Output format: text, json")
	f.BoolVarP(&opts.all, "all", "a", false, "List every match instead of the first and a count")
	f.BoolVar(&opts.strict, "strict", false, "Abort on the first invalid pattern line")
	f.IntVarP(&opts.workers, "workers", "j", 0, "Goroutines used to build the index (0 or 1: sequential)")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file instead of stderr")
	f.StringVar(&opts.color, "color", "", "Colour output: auto, always, never")
	f.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")

	cmd.AddCommand(newScoreCmd(opts))
	cmd.AddCommand(newExpandCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	opts := &rootOptions{}
	defer opts.finish()
	return newRootCmd(opts).Execute()
}

// runEnv is the per-command state derived from config and flags.
type runEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	out     *output.Writer
	cleanup func()
}

func (rt *runEnv) close() {
	if rt.cleanup != nil {
		rt.cleanup()
	}
}

// setup loads and validates config, then wires logging and output.
func (o *rootOptions) setup(cmd *cobra.Command) (*runEnv, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := o.apply(cmd.Flags(), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(logging.Config{
		Level:    cfg.Log.Level,
		FilePath: cfg.Log.File,
		Stderr:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()), slog.String("command", cmd.Name()))
	slog.SetDefault(logger)

	stdout := cmd.OutOrStdout()
	return &runEnv{
		cfg:     cfg,
		logger:  logger,
		out:     output.New(stdout, output.ColorEnabled(cfg.Output.Color, stdout)),
		cleanup: cleanup,
	}, nil
}

// apply copies explicitly set flags over cfg.
func (o *rootOptions) apply(f *pflag.FlagSet, cfg *config.Config) error {
	if f.Changed("solution") {
		cfg.Solution = o.solution
	}
	if f.Changed("wordlist") {
		cfg.WordList = o.wordList
	}
	if f.Changed("patterns-file") && f.Changed("pattern") {
		return perrors.ConfigError("--pattern and --patterns-file cannot be used together", nil).
			WithSuggestion("put every pattern in the file, or pass them all with --pattern")
	}
	if f.Changed("patterns-file") {
		data, err := os.ReadFile(o.patternsFile)
		if err != nil {
			return perrors.New(perrors.ErrCodeConfigUnreadable,
				fmt.Sprintf("failed to read patterns file %s", o.patternsFile), err)
		}
		cfg.Patterns = string(data)
	}
	if f.Changed("pattern") {
		cfg.Patterns = strings.Join(o.patterns, "\n")
	}
	if f.Changed("format") {
		cfg.Output.Format = o.format
	}
	if f.Changed("all") {
		cfg.Output.All = o.all
	}
	if f.Changed("strict") {
		cfg.Strict = o.strict
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if f.Changed("color") {
		cfg.Output.Color = o.color
	}
	return nil
}

// index loads the word list and builds the signature index.
func (rt *runEnv) index(cmd *cobra.Command) (*wordle.Index, error) {
	words, err := wordlist.Load(rt.cfg.WordList, len(rt.cfg.Solution))
	if err != nil {
		rt.logger.Error("wordlist_load_failed", perrors.FormatForLog(err)...)
		return nil, err
	}
	rt.logger.Info("wordlist_loaded",
		slog.String("path", rt.cfg.WordList),
		slog.Int("words", len(words)))

	idx, err := wordle.NewIndexParallel(cmd.Context(), words, rt.cfg.Solution, rt.cfg.Workers)
	if err != nil {
		return nil, err
	}
	rt.logger.Info("index_built",
		slog.String("solution", rt.cfg.Solution),
		slog.Int("signatures", len(idx.Signatures())),
		slog.Int("workers", rt.cfg.Workers))
	return idx, nil
}

// runQuery resolves the configured pattern block and prints the report.
func runQuery(cmd *cobra.Command, opts *rootOptions, args []string) error {
	rt, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if len(args) > 0 {
		if f := cmd.Flags(); f.Changed("pattern") || f.Changed("patterns-file") {
			return perrors.ConfigError("pattern arguments cannot be combined with --pattern or --patterns-file", nil)
		}
		rt.cfg.Patterns = strings.Join(args, "\n")
	}

	idx, err := rt.index(cmd)
	if err != nil {
		return err
	}

	report, err := wordle.Run(rt.cfg.Patterns, idx, wordle.RunOptions{
		Strict: rt.cfg.Strict,
		Logger: rt.logger,
	})
	if err != nil {
		return err
	}

	if rt.cfg.Output.Format == "json" {
		if err := rt.out.JSON(report); err != nil {
			return err
		}
	} else {
		rt.out.Report(report, rt.cfg.Output.All)
	}

	rt.logger.Info("query_complete",
		slog.Int("patterns", len(report.Results)),
		slog.Int("rejected", report.Rejected),
		slog.Bool("possible", report.Possible))

	if report.Rejected > 0 {
		return perrors.PatternsRejected(report.Rejected)
	}
	return nil
}
