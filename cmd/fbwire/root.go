package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markb/fbwire/internal/log"
)

// Version information set via ldflags at build time
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:     "fbwire",
	Short:   "Inspect Firebird-style message layouts and info buffers",
	Long:    `Utilities around the fbwire marshaling library: dump the wire type table, compute message layouts, and parse info buffers.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(&log.Config{Level: logLevel, Format: logFormat})
	},
}

func init() {
	rootCmd.SetVersionTemplate("fbwire version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
