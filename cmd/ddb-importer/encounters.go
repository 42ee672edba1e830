package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/encounter"
)

var encounterCampaign string

var encountersCmd = &cobra.Command{
	Use:   "encounters",
	Short: "Browse D&D Beyond encounters",
}

var encountersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List encounters, optionally for one campaign",
	RunE:  runEncountersList,
}

var encountersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an encounter and which monsters and characters are imported",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncountersShow,
}

func init() {
	encountersListCmd.Flags().StringVar(&encounterCampaign, "campaign", "", "Campaign id (defaults to DDB_CAMPAIGN_ID)")

	encountersCmd.AddCommand(encountersListCmd)
	encountersCmd.AddCommand(encountersShowCmd)
}

func runEncountersList(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	svc, err := a.encounters()
	if err != nil {
		return err
	}

	campaign := encounterCampaign
	if campaign == "" {
		campaign = a.cfg.DDB.CampaignID
	}

	out, err := svc.ListEncounters(cmd.Context(), &encounter.ListEncountersInput{CampaignID: campaign})
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out.Encounters)
	}

	w := cmd.OutOrStdout()
	for _, e := range out.Encounters {
		line := fmt.Sprintf("%s  %s", e.ID, e.Name)
		// the campaign column is redundant once filtered
		if !out.Filtered && e.Campaign != nil {
			line += fmt.Sprintf(" (%s)", e.Campaign.Name)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func runEncountersShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	svc, err := a.encounters()
	if err != nil {
		return err
	}

	out, err := svc.ParseEncounter(cmd.Context(), &encounter.ParseEncounterInput{EncounterID: args[0]})
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Encounter: %s\n", out.Name)
	if strings.TrimSpace(out.Summary) != "" {
		fmt.Fprintf(w, "Summary: %s\n", out.Summary)
	}
	fmt.Fprintf(w, "Difficulty: %s (%s)\n", out.Difficulty.Name, out.Difficulty.Color)

	if len(out.GoodCharacters) > 0 || len(out.MissingCharacters) > 0 {
		names := make([]string, len(out.GoodCharacters))
		for i, c := range out.GoodCharacters {
			names[i] = c.Name
		}
		fmt.Fprintf(w, "Characters: %s\n", strings.Join(names, ", "))
		if len(out.MissingCharacters) > 0 {
			missing := make([]string, len(out.MissingCharacters))
			for i, c := range out.MissingCharacters {
				missing[i] = c.Name
			}
			fmt.Fprintf(w, "  Missing %d: %s\n", len(missing), strings.Join(missing, ", "))
		}
	}

	if len(out.GoodMonsters) > 0 || len(out.MissingMonsters) > 0 {
		names := make([]string, len(out.GoodMonsters))
		for i, m := range out.GoodMonsters {
			names[i] = fmt.Sprintf("%s x%d", m.Name, m.Quantity)
		}
		fmt.Fprintf(w, "Monsters: %s\n", strings.Join(names, ", "))
		if len(out.MissingMonsters) > 0 {
			missing := make([]string, len(out.MissingMonsters))
			for i, m := range out.MissingMonsters {
				missing[i] = fmt.Sprintf("%d x%d", m.DDBID, m.Quantity)
			}
			fmt.Fprintf(w, "  Missing %d: %s\n", len(missing), strings.Join(missing, ", "))
		}
	}

	if strings.TrimSpace(out.Rewards) != "" {
		fmt.Fprintf(w, "Rewards: %s\n", out.Rewards)
	}
	return nil
}
