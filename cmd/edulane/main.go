package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edulane/edulane/internal/interfaces/cli/migrate"
	"github.com/edulane/edulane/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edulane",
		Short: "EduLane - course access and subscription platform",
		Long:  `EduLane manages course catalogs, access requests, subscription windows, and lesson progress tracking.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
