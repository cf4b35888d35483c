// Package main provides the pokedex CLI: a small relational store of
// Pokemon, types, abilities, and trainers, cleaned at startup and served
// over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configDir is set by the --config-dir flag.
var configDir string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokedex is a Pokemon catalog service",
	Long: `Pokedex maintains a relational store of Pokemon, their types and
abilities, and the trainers who hold them. At startup it repairs and
deduplicates the store, then serves read queries and catalog-backed
creation over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default: .pokedex)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
