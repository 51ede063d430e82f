package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "exhibits-admin",
	Short: "Administrative dashboard for the Exhibits CMS",
	Long: `Exhibits Admin serves the curator-facing dashboard for an exhibits
content management system: exhibit, heading, grid, and timeline forms
backed by the exhibits REST API, plus batch media upload and agent
integration from the command line.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".exhibits-admin.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
