package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/selectdemo/internal/config"
	"github.com/vango-dev/selectdemo/internal/data"
	"github.com/vango-dev/selectdemo/internal/errors"
	"github.com/vango-dev/selectdemo/internal/gallery"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "selectdemo",
		Short: "Gallery of select component examples",
		Long: `selectdemo serves a catalog of select widget examples.

Each card shows one way to configure the widget: plain string items,
entity items, disabled options, read-only state, validation, binder
integration, separators and custom option rendering.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ./selectdemo.{yaml,json,toml})")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		serveCmd(&flags),
		exportCmd(&flags),
		cardsCmd(&flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config and applies the global flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(".", flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	return cfg, nil
}

// newLogger builds the slog logger described by cfg.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// galleryDeps resolves the sample data providers.
func galleryDeps(cfg *config.Config, logger *slog.Logger) (gallery.Deps, error) {
	deps := gallery.Deps{Logger: logger}
	if cfg.Data.File == "" {
		return deps, nil
	}
	set, err := data.LoadFile(cfg.Data.File)
	if err != nil {
		return gallery.Deps{}, err
	}
	logger.Info("loaded sample data", "file", cfg.Data.File,
		"departments", len(set.Departments()), "teams", len(set.Teams()))
	deps.Departments = set
	deps.Teams = set
	return deps, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
