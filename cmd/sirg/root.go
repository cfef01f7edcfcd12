package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirg/config"
)

// app is the state shared by subcommands after the persistent pre-run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.RunConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sirg",
		Short:         "Structurally induced random graph growth",
		Long:          "sirg grows a seed graph by repeatedly attaching small patterns drawn from the graph's own substructure, keeping the candidate that scores best on a chosen statistic.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML run configuration (defaults apply when omitted)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "auto, text or json (overrides config)")

	root.AddCommand(newGrowCmd(a), newCatalogCmd(a), newFractalCmd(a), newStatCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		cfg := config.Default()
		a.cfg = &cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	slog.SetDefault(logger)

	return nil
}

func newLogger(w io.Writer, conf config.LogConf) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(conf.Level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", conf.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	format := conf.Format
	if format == "auto" || format == "" {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("log format %q: want auto, text or json", conf.Format)
}
