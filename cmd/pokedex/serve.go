package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/internal/catalog"
	"github.com/mesh-intelligence/pokedex/internal/cleaning"
	"github.com/mesh-intelligence/pokedex/internal/server"
	"github.com/mesh-intelligence/pokedex/internal/service"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Clean the store and serve the HTTP API",
	Long: `Open the database, run the cleaning pass, and serve the HTTP API.
A cleaning failure aborts startup; the service never serves a partially
cleaned store.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen-addr", "", "listen address (overrides config.yaml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
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

	ctx := context.Background()
	if err := cleaning.NewOrchestrator(store, log).CleanAll(ctx); err != nil {
		return fmt.Errorf("startup cleaning failed: %w", err)
	}

	creator := service.NewCreator(store, catalog.NewClient(cfg), service.NewRandomPicker(), log)
	return server.New(cfg, store, creator, log).Run(ctx)
}
