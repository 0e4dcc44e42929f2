package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sgmatch",
	Short: "sgmatch — bilingual matcher for the Sigma Gloves catalogs",
	Long:  "Fuzzy Persian/English matching of free text to industries, protection intents, knowledge articles, and products.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(intentCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(replCmd)
}
