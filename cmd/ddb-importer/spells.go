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
	spellFile     string
	spellFallback string
	spellRoll     bool
	spellClass    string
	spellSource   string
	spellCampaign string
	spellDryRun   bool
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "Parse and import spells",
}

var spellsParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse spells from a JSON file",
	Long: `Parse spells from a JSON file holding proxy spell entries. The file may
hold a list of entries, one entry, or a saved proxy response.`,
	RunE: runSpellsParse,
}

var spellsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a class spell list into the compendium",
	Long: `Import a class spell list from D&D Beyond (ddb, needs DDB_COBALT) or from
the SRD (srd) and store every parsed spell in the compendium.`,
	RunE: runSpellsImport,
}

func init() {
	spellsParseCmd.Flags().StringVar(&spellFile, "file", "", "JSON file of spell entries")
	spellsParseCmd.Flags().BoolVar(&spellRoll, "roll", false, "Roll a sample of every damage and healing part")
	_ = spellsParseCmd.MarkFlagRequired("file")

	spellsImportCmd.Flags().StringVar(&spellClass, "class", "", "Class whose spell list is imported")
	spellsImportCmd.Flags().StringVar(&spellSource, "source", string(importer.SourceDDB), "Spell source: ddb or srd")
	spellsImportCmd.Flags().StringVar(&spellCampaign, "campaign", "", "Campaign id for homebrew (defaults to DDB_CAMPAIGN_ID)")
	spellsImportCmd.Flags().BoolVar(&spellDryRun, "dry-run", false, "Parse without storing")
	_ = spellsImportCmd.MarkFlagRequired("class")

	for _, c := range []*cobra.Command{spellsParseCmd, spellsImportCmd} {
		c.Flags().StringVar(&spellFallback, "fallback", "", "Activity type for spells nothing classifies, e.g. utility")
	}

	spellsCmd.AddCommand(spellsParseCmd)
	spellsCmd.AddCommand(spellsImportCmd)
}

func fallbackType() (document.ActivityType, error) {
	t := document.ActivityType(spellFallback)
	if t != document.ActivityTypeNone && !t.Valid() {
		return t, fmt.Errorf("unknown activity type %q", spellFallback)
	}
	return t, nil
}

func runSpellsParse(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	fallback, err := fallbackType()
	if err != nil {
		return err
	}
	parser, err := a.spellParser(fallback)
	if err != nil {
		return err
	}

	entries, err := readEntries[ddbentities.Spell](spellFile)
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
	if spellRoll {
		roller = formula.NewRoller(nil)
	}
	return printItems(cmd.OutOrStdout(), items, roller)
}

func runSpellsImport(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	fallback, err := fallbackType()
	if err != nil {
		return err
	}

	source := importer.Source(spellSource)
	svc, err := a.importer(source, fallback)
	if err != nil {
		return err
	}

	campaign := spellCampaign
	if campaign == "" {
		campaign = a.cfg.DDB.CampaignID
	}

	run, err := svc.ImportSpells(cmd.Context(), &importer.ImportSpellsInput{
		Source:     source,
		ClassName:  spellClass,
		CampaignID: campaign,
		DryRun:     spellDryRun,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), run)
	}
	printRun(cmd.OutOrStdout(), run)
	return nil
}
