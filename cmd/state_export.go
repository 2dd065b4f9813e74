package cmd

import (
	"github.com/spf13/cobra"

	"equiprent.GO/cron/jobs"
)

var exportDir string

var stateExportCmd = &cobra.Command{
	Use:   "state:export",
	Short: "Write the current state snapshot to a timestamped JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		if exportDir != "" {
			jobs.StateExportJob(exportDir)
			return
		}
		jobs.StateExportJob()
	},
}

func init() {
	stateExportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Target directory (defaults to BACKUP_DIR)")
	rootCmd.AddCommand(stateExportCmd)
}
