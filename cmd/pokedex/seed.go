package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with the demo dataset",
	Long: `Populate an empty database with a deliberately dirty demo dataset:
duplicates, misspellings, and placeholder junk for the cleaning pass to
repair. Refuses to run against a non-empty database.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DataDir, cfg.DBFile)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.Seed(context.Background()); err != nil {
		if errors.Is(err, types.ErrAlreadyExists) {
			return errors.New("database is not empty; seed only works on a fresh database")
		}
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Demo dataset seeded successfully")
	return nil
}
