package main

import (
	"os"

	"github.com/spf13/cobra"

	"mentorhub/internal/interfaces/cli/migrate"
	"mentorhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mentorhub",
		Short: "MentorHub - mentorship platform backend",
		Long:  `MentorHub is the mentorship platform backend with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
