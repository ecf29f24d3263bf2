// ABOUTME: Root command wiring shared flags, logging and the card repository.
// ABOUTME: Subcommands reach the repository through appState.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ImFeH2/sylvo/internal/app"
	"github.com/ImFeH2/sylvo/internal/config"
	"github.com/ImFeH2/sylvo/internal/store"
	"github.com/spf13/cobra"
)

// skipStore marks commands that run without opening the repository.
const skipStore = "skip-store"

var (
	verbose    bool
	dataDir    string
	repoName   string
	configPath string

	cfg      *config.Config
	appState *app.State
)

var rootCmd = &cobra.Command{
	Use:   "sylvo",
	Short: "Flashcards kept in a single local file",
	Long: `Sylvo stores flashcards (title, tags, content) in one file per repository.
Every change rewrites the whole file atomically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		if _, ok := cmd.Annotations[skipStore]; ok {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		dir, err := cfg.ResolveDataDir(dataDir)
		if err != nil {
			return err
		}
		name := cfg.Name
		if repoName != "" {
			name = repoName
		}

		repo, err := store.Open(dir, name, store.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open repository: %w", err)
		}
		appState = app.New(repo)
		return nil
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "directory holding repository files")
	rootCmd.PersistentFlags().StringVar(&repoName, "name", "", "repository name (default from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
}
