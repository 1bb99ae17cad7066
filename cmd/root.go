package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/app"
	"github.com/abhisek/discern/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "discern",
	Short: "Vocational discernment scoring and reports",
	Long: "discern scores the strengths, spiritual gifts and vocational direction assessments\n" +
		"and synthesizes a personal discernment report with a language model.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DISCERN_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the stderr logger from --log-level and --log-json.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(levelName))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", levelName)
	}
	opts := &slog.HandlerOptions{Level: level}

	if asJSON, _ := cmd.Flags().GetBool("log-json"); asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DISCERN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp reads the environment, opens the store and wires the services.
// Callers must Close the returned App.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.DBPath, err = resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	cfg.InsecureDev, _ = cmd.Flags().GetBool("insecure-dev")
	return app.New(cmd.Context(), cfg, slog.Default())
}

// openStore opens the database alone, for commands that need no services.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
