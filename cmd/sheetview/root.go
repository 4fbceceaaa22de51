package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/sheetview/internal/config"
	"github.com/dshills/sheetview/internal/config/loader"
	"github.com/dshills/sheetview/internal/viewport"
	"github.com/dshills/sheetview/internal/workbook"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFile    string

	logger  *slog.Logger
	closers []io.Closer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sheetview",
		Short: "Spreadsheet viewport, selection and navigation",
		Long: `sheetview moves a pixel viewport and an anchored selection around a
spreadsheet. Viewports are written as URL fragments such as

  /home/A1/width/800/height/480/selection/B2:D4/bottom-right

and navigations as comma separated text such as "right,extend-down,down 200px".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, closer, err := newLogger(opts.logLevel, opts.logFile, stderr)
			if err != nil {
				return err
			}
			opts.logger = logger
			if closer != nil {
				opts.closers = append(opts.closers, closer)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			for _, c := range opts.closers {
				_ = c.Close()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(
		newCompactCmd(),
		newNavigateCmd(opts),
		newViewCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sheetview %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// newLogger builds a text logger at level writing to path, or to stderr
// when path is empty. The closer is nil for stderr.
func newLogger(level, path string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w := stderr
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closer, nil
}

// loadConfig reads the configuration file, or only the environment when
// no file was given.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.LoadFrom(loader.NewEnvLoader(config.EnvPrefix))
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("config loaded", "path", o.configPath)
	return cfg, nil
}

// sheetSource names where the sheet geometry comes from.
type sheetSource struct {
	workbookPath string
	sheetName    string
}

func (s *sheetSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.workbookPath, "workbook", "w", "", "Read sheet geometry and text from this .xlsx file")
	cmd.Flags().StringVarP(&s.sheetName, "sheet", "s", "", "Sheet name in the workbook (default: active sheet)")
}

// open returns the navigation context and the workbook sheet, if any. The
// returned close function is never nil.
func (s *sheetSource) open(cfg *config.Config, logger *slog.Logger) (viewport.Context, *workbook.Sheet, func() error, error) {
	noop := func() error { return nil }
	if s.workbookPath == "" {
		if s.sheetName != "" {
			return nil, nil, noop, fmt.Errorf("--sheet requires --workbook")
		}
		sheet, err := cfg.Sheet.Layout()
		if err != nil {
			return nil, nil, noop, err
		}
		return sheet, nil, noop, nil
	}

	wb, err := workbook.Open(s.workbookPath)
	if err != nil {
		return nil, nil, noop, err
	}
	sheet, err := wb.Sheet(s.sheetName)
	if err != nil {
		_ = wb.Close()
		return nil, nil, noop, err
	}
	logger.Debug("workbook opened", "path", s.workbookPath, "sheet", sheet.Name())
	return sheet.Layout(), sheet, wb.Close, nil
}
