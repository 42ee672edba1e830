// Package main is the entry point for the ddb-importer CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile    string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "ddb-importer",
	Short: "Import D&D Beyond content as host documents",
	Long: `ddb-importer turns D&D Beyond spells, class features and encounters into
host application documents with activities and active effects.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print documents as JSON")

	rootCmd.AddCommand(spellsCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(encountersCmd)
	rootCmd.AddCommand(compendiumCmd)
}
