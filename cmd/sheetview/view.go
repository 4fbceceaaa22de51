package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetview/internal/config/watcher"
	"github.com/dshills/sheetview/internal/terminal"
	"github.com/dshills/sheetview/internal/viewport"
)

func newViewCmd(opts *globalOptions) *cobra.Command {
	var (
		fragment string
		source   sheetSource
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a sheet in the terminal",
		Long: `view draws the sheet in the terminal and moves the selection with the
keyboard and mouse. The URL fragment of the current viewport is shown on the
status line. Changes to the configuration file are applied while running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			vp, err := cfg.Viewport.Build()
			if err != nil {
				return err
			}
			if fragment != "" {
				if vp, err = viewport.ParseURLFragment(fragment); err != nil {
					return err
				}
			}

			ctx, sheet, closeSheet, err := source.open(cfg, opts.logger)
			if err != nil {
				return err
			}
			defer closeSheet()
			var text terminal.TextSource = terminal.NoText{}
			if sheet != nil {
				text = sheet
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initialising screen: %w", err)
			}
			defer screen.Fini()
			screen.EnableMouse()

			app, err := terminal.New(screen, ctx, text, vp.Navigate(ctx), cfg.Terminal, opts.logger)
			if err != nil {
				return err
			}

			if opts.configPath != "" {
				w, err := watchConfig(opts, app, sheet == nil)
				if err != nil {
					opts.logger.Warn("config watch disabled", "error", err)
				} else {
					defer w.Close()
				}
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := app.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&fragment, "fragment", "f", "", "Start from this URL fragment instead of the configured viewport")
	source.addFlags(cmd)
	return cmd
}

// watchConfig reloads the configuration file into app whenever it
// changes. The sheet geometry follows the file only when no workbook
// supplies it.
func watchConfig(opts *globalOptions, app *terminal.App, followSheet bool) (*watcher.Watcher, error) {
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		opts.logger.Warn("config watcher", "error", err)
	}))
	if err != nil {
		return nil, err
	}
	w.OnChange(func(ev watcher.Event) {
		opts.logger.Debug("config changed", "path", ev.Path, "op", ev.Op.String())
		cfg, err := opts.loadConfig()
		if err != nil {
			opts.logger.Warn("config reload failed", "error", err)
			return
		}
		var sheet viewport.Context
		if followSheet {
			if sheet, err = cfg.Sheet.Layout(); err != nil {
				opts.logger.Warn("config reload failed", "error", err)
				return
			}
		}
		if err := app.Reload(sheet, cfg.Terminal); err != nil {
			opts.logger.Warn("config reload dropped", "error", err)
		}
	})
	if err := w.Watch(opts.configPath); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
