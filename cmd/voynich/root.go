package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mhr3/voynich/freq"
	"github.com/mhr3/voynich/internal/config"
	"github.com/mhr3/voynich/internal/input"
	"github.com/mhr3/voynich/internal/logging"
	"github.com/mhr3/voynich/report"
)

const promptMessage = "Enter the absolute file path for voynich_folio93v.txt: "

// app carries flag values and the logger between the cobra hooks.
type app struct {
	configPath string
	verbose    bool
	tieBreak   string
	alphabet   string
	escape     bool
	decipher   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithLogger(nil)
}

// newRootCmdWithLogger uses logger instead of building one from the
// configuration when it is not nil.
func newRootCmdWithLogger(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	cmd := &cobra.Command{
		Use:   "voynich [path]",
		Short: "Symbol frequency analysis with a frequency-rank letter mapping",
		Long: `Reads a text file, counts every letter and white space symbol, ranks the
symbols by frequency and pairs the most frequent ones with the Latin letters
ordered by English frequency (e t a o i n s r h d l u c m f y p b v k g w x z j q).

Without a path argument the path is read from standard input.

Examples:
  voynich /data/voynich_folio93v.txt
  voynich --tie-break code-point --escape folio.txt
  voynich --alphabet eaiou --decipher folio.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	flags := cmd.Flags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.tieBreak, "tie-break", "", "order of equally frequent symbols: first-occurrence or code-point")
	flags.StringVar(&a.alphabet, "alphabet", "", "reference letters, most frequent first")
	flags.BoolVar(&a.escape, "escape", false, "print white space symbols as escapes")
	flags.BoolVar(&a.decipher, "decipher", false, "append the text with mapped symbols substituted")

	return cmd
}

// setup loads the configuration, applies flags on top of it and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tie-break") {
		cfg.Analysis.TieBreak = a.tieBreak
	}
	if flags.Changed("alphabet") {
		cfg.Analysis.Alphabet = a.alphabet
	}
	if flags.Changed("escape") {
		cfg.Report.Escape = a.escape
	}
	if flags.Changed("decipher") {
		cfg.Report.Decipher = a.decipher
	}
	if a.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		level, _ := cfg.LogLevel()
		a.logger, err = logging.New(logging.Options{
			Level:       level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := input.Prompt(cmd.InOrStdin(), stdout, promptMessage)
		if err != nil {
			return fmt.Errorf("failed to read file path: %w", err)
		}
		path = p
	}

	text, err := input.NewReader(a.logger).ReadText(path)
	if err != nil {
		if errors.Is(err, input.ErrRead) {
			a.reportReadFailure(cmd.ErrOrStderr(), path, err)
			return nil
		}
		return err
	}

	opts, err := a.cfg.AnalysisOptions()
	if err != nil {
		return err
	}
	analysis := freq.Analyze(text, opts)

	a.logger.Debug("analysis complete",
		zap.String("path", path),
		zap.Int("distinct_symbols", analysis.Counts.Len()),
		zap.Int("total_symbols", analysis.Counts.Total()),
		zap.Int("mapped_symbols", analysis.Mapping.Len()),
		zap.Stringer("tie_break", opts.TieBreak),
	)

	return report.Write(stdout, text, analysis, report.Options{
		Escape:   a.cfg.Report.Escape,
		Decipher: a.cfg.Report.Decipher,
	})
}

// reportReadFailure writes the operator diagnostic and logs the underlying
// error with its stack trace. The run still ends successfully.
func (a *app) reportReadFailure(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "Error reading file: %s\n%v\n", path, err)
	a.logger.Error("read failure", zap.String("path", path), zap.Error(err))
}
