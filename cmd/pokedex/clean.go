package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/cleaning"
	"github.com/mesh-intelligence/pokedex/internal/server"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleaning pass once and exit",
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := server.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DataDir, cfg.DBFile)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := cleaning.NewOrchestrator(store, log).CleanAll(context.Background()); err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database cleaned successfully")
	return nil
}
