// Package main is the entry point for the risk-prevention registry console.
// It wires together configuration, the logger, the in-memory models and the
// interactive menu.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aoideee/prevention-registry/internal/data"
	"github.com/aoideee/prevention-registry/internal/validator"
)

// appVersion is the current version of the registry, shown in logs.
const appVersion = "1.0.0"

// registryConfig holds all the values that can be tweaked at startup via
// command-line flags or the YAML config file.
type registryConfig struct {
	configFile        string // Optional YAML file read before flags are applied
	logLevel          string // debug, info, warn or error
	logFormat         string // text or json
	releaseDeletedIDs bool   // Allow a deleted person's RUN to be entered again
}

// application bundles every shared resource that menu handlers need.
// A pointer to this struct is the receiver on all handler and menu methods.
type application struct {
	config registryConfig      // Settings after the config file and flags are merged
	logger *slog.Logger        // Structured logger that writes to stderr
	models data.Models         // In-memory persons and trainings
	prompt *validator.Prompter // Validated console input and output
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the registry command. The menu reads in and writes out;
// logs go to logOut.
func newRootCmd(in io.Reader, out, logOut io.Writer) *cobra.Command {
	var settings registryConfig

	rootCmd := &cobra.Command{
		Use:          "registry",
		Short:        "Registro de asesorías en prevención de riesgos",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.load(cmd.Flags()); err != nil {
				return err
			}

			logger, err := newLogger(settings, logOut)
			if err != nil {
				return err
			}
			logger = logger.With("session", uuid.NewString())

			app := newApplication(settings, logger, in, out)
			logger.Info("starting registry", "version", appVersion, "release_deleted_ids", settings.releaseDeletedIDs)
			return app.serve(cmd.Context())
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(logOut)
	rootCmd.Flags().StringVar(&settings.configFile, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&settings.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.Flags().StringVar(&settings.logFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.Flags().BoolVar(&settings.releaseDeletedIDs, "release-deleted-ids", false, "Allow the RUN of a deleted user to be entered again")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the registry",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "registry version", appVersion)
		},
	}
}

// newApplication bundles the dependencies of one interactive session.
func newApplication(settings registryConfig, logger *slog.Logger, in io.Reader, out io.Writer) *application {
	return &application{
		config: settings,
		logger: logger,
		models: data.NewModels(),
		prompt: validator.NewPrompter(in, out, validator.NewIdentifierSet()),
	}
}

// newLogger creates a structured logger for the configured level and format.
func newLogger(settings registryConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch settings.logFormat {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", settings.logFormat)
}
