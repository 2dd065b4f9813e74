package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "equiprent",
	Short: "Equipment rental management CLI",
	Long:  "Maintenance commands for the rental service: seeding, cron jobs and state export.",
}

// Execute runs the root command. Called from the cli build of main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
