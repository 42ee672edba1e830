package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/formula"
)

var (
	featureFile  string
	featureRoll  bool
	featureStore bool
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Parse class, race and feat features",
}

var featuresParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse features from a JSON file",
	RunE:  runFeaturesParse,
}

func init() {
	featuresParseCmd.Flags().StringVar(&featureFile, "file", "", "JSON file of feature entries")
	featuresParseCmd.Flags().BoolVar(&featureRoll, "roll", false, "Roll a sample of every damage and healing part")
	featuresParseCmd.Flags().BoolVar(&featureStore, "store", false, "Store the parsed features in the compendium")
	_ = featuresParseCmd.MarkFlagRequired("file")

	featuresCmd.AddCommand(featuresParseCmd)
}

func runFeaturesParse(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	entries, err := readEntries[ddbentities.Feature](featureFile)
	if err != nil {
		return err
	}

	if featureStore {
		// entries come from the file, so no proxy credentials are needed
		svc, err := a.importer(importer.SourceSRD, document.ActivityTypeNone)
		if err != nil {
			return err
		}
		run, err := svc.ImportFeatures(cmd.Context(), &importer.ImportFeaturesInput{Features: entries})
		if err != nil {
			return err
		}
		printRun(cmd.OutOrStdout(), run)
		return nil
	}

	parser, err := a.featureParser()
	if err != nil {
		return err
	}

	items := make([]*document.Item, 0, len(entries))
	for _, entry := range entries {
		item, err := parser.Parse(entry)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping entry: %v\n", err)
			continue
		}
		items = append(items, item)
	}

	var roller *formula.Roller
	if featureRoll {
		roller = formula.NewRoller(nil)
	}
	return printItems(cmd.OutOrStdout(), items, roller)
}
