package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
)

var (
	compendiumKind string
	compendiumFile string
	compendiumType string
)

var compendiumCmd = &cobra.Command{
	Use:   "compendium",
	Short: "Manage the stored documents and DDB id indexes",
}

var compendiumLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load monster or actor index entries from a JSON file",
	Long: `Load index entries used to match encounters. The file holds a list of
{"ddbId": 16907, "documentId": "...", "name": "Goblin"} objects.`,
	RunE: runCompendiumLoad,
}

var compendiumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents of one type",
	RunE:  runCompendiumList,
}

func init() {
	compendiumLoadCmd.Flags().StringVar(&compendiumKind, "kind", string(compendium.IndexKindMonster), "Index kind: monster or actor")
	compendiumLoadCmd.Flags().StringVar(&compendiumFile, "file", "", "JSON file of index entries")
	_ = compendiumLoadCmd.MarkFlagRequired("file")

	compendiumListCmd.Flags().StringVar(&compendiumType, "type", string(document.ItemTypeSpell), "Item type: spell or feat")

	compendiumCmd.AddCommand(compendiumLoadCmd)
	compendiumCmd.AddCommand(compendiumListCmd)
}

func runCompendiumLoad(cmd *cobra.Command, _ []string) error {
	kind := compendium.IndexKind(compendiumKind)
	if !kind.IsValid() {
		return fmt.Errorf("unknown index kind %q", compendiumKind)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	repo, err := a.compendium()
	if err != nil {
		return err
	}

	entries, err := readEntries[compendium.IndexEntry](compendiumFile)
	if err != nil {
		return err
	}

	loaded := 0
	for _, e := range entries {
		if _, err := repo.PutIndexEntry(cmd.Context(), &compendium.PutIndexEntryInput{Kind: kind, Entry: *e}); err != nil {
			return fmt.Errorf("failed to load %q: %w", e.Name, err)
		}
		loaded++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "loaded %d %s entries\n", loaded, kind)
	return nil
}

func runCompendiumList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	repo, err := a.compendium()
	if err != nil {
		return err
	}

	out, err := repo.ListByKind(cmd.Context(), &compendium.ListByKindInput{Kind: document.ItemType(compendiumType)})
	if err != nil {
		return err
	}
	return printItems(cmd.OutOrStdout(), out.Items, nil)
}
