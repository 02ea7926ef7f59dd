package main

import (
	"os"

	"github.com/spf13/cobra"

	"revu/internal/interfaces/cli/migrate"
	"revu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "revu",
		Short: "revu - a review exchange service",
		Long:  `revu is a content sharing service where users request and publish reviews of books and articles.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
