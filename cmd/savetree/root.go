package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/savetree/internal/config"
	"github.com/joshuapare/savetree/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	debug   bool
	logDir  string

	cfg = config.Load()
)

var rootCmd = &cobra.Command{
	Use:   "savetree",
	Short: "Inspect game save scan results as a tree",
	Long: `savetree folds the flat result of a game save scan (files and
registry keys, with their backup outcome, duplicate and change status)
into a tree and prints it the way an interactive browser would show it.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(logger.Options{
			Enabled: debug,
			LogDir:  logDir,
			Level:   slog.LevelDebug,
		}); err != nil {
			printError("failed to init logging: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVarP(&debug, "debug", "d", cfg.Debug, "Write debug logs (SAVETREE_DEBUG)")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", cfg.LogDir, "Directory for debug logs (SAVETREE_LOG_DIR)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
