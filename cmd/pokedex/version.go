package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	version    = "0.1.0"
	modulePath = "github.com/mesh-intelligence/pokedex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pokedex version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "pokedex v%s\nmodule: %s\n", version, modulePath)
		return nil
	},
}
