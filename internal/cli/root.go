// Package cli implements the cubesight command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubesight/cubesight/internal/config"
	"github.com/cubesight/cubesight/internal/logging"
	"github.com/cubesight/cubesight/internal/recorder"
	"github.com/cubesight/cubesight/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	logLevel  string

	cfg config.Config
	log *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesight",
	Short: "Cube state analysis and solve recording",
	Long: `cubesight models a 3x3x3 cube as 27 pieces with positions and
orientations, recognizes CFOP solve phases (Cross, F2L, OLL, PLL), and
records solves to a local database for later analysis.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if dbPath == "" {
			dbPath = cfg.DBPath
		}
		if statePath == "" {
			statePath = cfg.StatePath
		}
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
		log = logging.NewLogger(os.Stderr, logging.ParseLevel(logLevel))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (default: ~/.cubesight/cubesight.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "state file path (default: ~/.cubesight/state.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// openStateFile opens the state file from the --state flag or default.
func openStateFile() (*recorder.StateFile, error) {
	if statePath != "" {
		return recorder.NewStateFile(statePath)
	}
	return recorder.NewDefaultStateFile()
}
