package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/formula"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printItems writes one summary block per item, or the documents as JSON.
// A non-nil roller adds a sample roll for every damage and healing part.
func printItems(w io.Writer, items []*document.Item, roller *formula.Roller) error {
	if jsonOutput {
		return printJSON(w, items)
	}

	for _, item := range items {
		fmt.Fprintf(w, "%s [%s] %s\n", item.Name, item.Type, item.ID)
		if item.Type == document.ItemTypeSpell {
			fmt.Fprintf(w, "  level %d %s, range %s, target %s\n",
				item.System.Level, item.System.School, rangeText(item.System.Range), targetText(item.System.Target))
		}

		ids := make([]string, 0, len(item.System.Activities))
		for id := range item.System.Activities {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			act := item.System.Activities[id]
			label := act.Type.String()
			if act.Name != "" {
				label += " (" + act.Name + ")"
			}
			fmt.Fprintf(w, "  activity %s\n", label)
			if roller == nil {
				continue
			}
			results, err := roller.RollActivity(act)
			if err != nil {
				return err
			}
			for _, r := range results {
				line := fmt.Sprintf("    roll %s = %d %v", r.Formula, r.Total, r.Rolls)
				if len(r.Unresolved) > 0 {
					line += " (unresolved " + strings.Join(r.Unresolved, ", ") + ")"
				}
				fmt.Fprintln(w, line)
			}
		}
		for _, e := range item.Effects {
			fmt.Fprintf(w, "  effect %s (%d changes)\n", e.Name, len(e.Changes))
		}
	}
	return nil
}

func printRun(w io.Writer, run *importer.RunOutput) {
	fmt.Fprintf(w, "run %s from %s: fetched %d, parsed %d, stored %d, failed %d\n",
		run.RunID, run.Source, run.Fetched, run.Parsed, run.Stored, run.Failed())
	for _, f := range run.Failures {
		fmt.Fprintf(w, "  failed %q: %s\n", f.Name, f.Error)
	}
}

func rangeText(r document.Range) string {
	if r.Units == nil {
		return "-"
	}
	if r.Value == nil {
		return *r.Units
	}
	return fmt.Sprintf("%d %s", *r.Value, *r.Units)
}

func targetText(t document.Target) string {
	parts := []string{}
	if t.Template.Type != "" {
		parts = append(parts, strings.TrimSpace(t.Template.Size+" "+t.Template.Units+" "+t.Template.Type))
	}
	if t.Affects.Type != "" {
		affects := t.Affects.Type
		if t.Affects.Count != "" {
			affects = t.Affects.Count + " " + affects
		}
		parts = append(parts, affects)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
