// Package encounter matches D&D Beyond encounters against the imported
// monsters and characters
package encounter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
)

// Service defines the interface for encounter operations
type Service interface {
	// ListEncounters returns the user's encounters, filtered by campaign when
	// the campaign id is one the user belongs to
	ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error)

	// ParseEncounter resolves an encounter's monsters, players and difficulty
	ParseEncounter(ctx context.Context, input *ParseEncounterInput) (*ParseEncounterOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Client     ddb.Client
	Compendium compendium.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}

	return vb.Build()
}

type orchestrator struct {
	client     ddb.Client
	compendium compendium.Repository
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:     cfg.Client,
		compendium: cfg.Compendium,
	}, nil
}

// ListEncounters returns the encounters of the user
func (o *orchestrator) ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error) {
	if input == nil {
		input = &ListEncountersInput{}
	}

	encounters, err := o.fetchEncounters(ctx)
	if err != nil {
		return nil, err
	}

	campaignID := strings.TrimSpace(input.CampaignID)
	if campaignID == "" {
		return &ListEncountersOutput{Encounters: encounters}, nil
	}

	id, err := strconv.Atoi(campaignID)
	if err != nil {
		slog.Debug("Ignoring non numeric campaign filter", "campaign_id", campaignID)
		return &ListEncountersOutput{Encounters: encounters}, nil
	}

	campaigns, err := o.client.ListCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}
	if !hasCampaign(campaigns, id) {
		slog.Debug("Campaign filter is not one of the user's campaigns",
			"campaign_id", id,
			"campaign_count", len(campaigns),
		)
		return &ListEncountersOutput{Encounters: encounters}, nil
	}

	filtered := make([]*ddbentities.Encounter, 0, len(encounters))
	for _, e := range encounters {
		if e.Campaign != nil && e.Campaign.ID == id {
			filtered = append(filtered, e)
		}
	}

	slog.Debug("Filtered encounters",
		"campaign_id", id,
		"total", len(encounters),
		"matched", len(filtered),
	)

	return &ListEncountersOutput{Encounters: filtered, Filtered: true}, nil
}

// ParseEncounter resolves one encounter against the monster and actor indexes
func (o *orchestrator) ParseEncounter(ctx context.Context, input *ParseEncounterInput) (*ParseEncounterOutput, error) {
	if input == nil || strings.TrimSpace(input.EncounterID) == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}
	id := strings.TrimSpace(input.EncounterID)

	encounters, err := o.fetchEncounters(ctx)
	if err != nil {
		return nil, err
	}

	var encounter *ddbentities.Encounter
	for _, e := range encounters {
		if e.ID == id {
			encounter = e
			break
		}
	}
	if encounter == nil {
		return nil, errors.NotFoundf("encounter %s not found", id)
	}

	out := &ParseEncounterOutput{
		ID:                encounter.ID,
		Name:              encounter.Name,
		Description:       encounter.Description,
		Summary:           encounter.FlavorText,
		Rewards:           encounter.Rewards,
		Difficulty:        DifficultyFor(encounter.Difficulty),
		Campaign:          encounter.Campaign,
		GoodMonsters:      []MatchedMonster{},
		MissingMonsters:   []MissingMonster{},
		GoodCharacters:    []MatchedCharacter{},
		MissingCharacters: []MissingCharacter{},
	}

	if err := o.matchMonsters(ctx, encounter, out); err != nil {
		return nil, err
	}
	if err := o.matchCharacters(ctx, encounter, out); err != nil {
		return nil, err
	}

	slog.Info("Parsed encounter",
		"encounter_id", out.ID,
		"monsters_found", len(out.GoodMonsters),
		"monsters_missing", len(out.MissingMonsters),
		"characters_found", len(out.GoodCharacters),
		"characters_missing", len(out.MissingCharacters),
	)

	return out, nil
}

func (o *orchestrator) matchMonsters(ctx context.Context, e *ddbentities.Encounter, out *ParseEncounterOutput) error {
	if len(e.Monsters) == 0 {
		return nil
	}

	ids := make([]int, len(e.Monsters))
	for i, m := range e.Monsters {
		ids[i] = m.ID
	}

	found, err := o.compendium.FindByDDBID(ctx, &compendium.FindByDDBIDInput{
		Kind:   compendium.IndexKindMonster,
		DDBIDs: ids,
	})
	if err != nil {
		return errors.Wrap(err, "failed to look up encounter monsters")
	}

	for _, m := range e.Monsters {
		entry, ok := found.Entries[m.ID]
		if !ok {
			out.MissingMonsters = append(out.MissingMonsters, MissingMonster{DDBID: m.ID, Quantity: m.Quantity})
			continue
		}
		out.GoodMonsters = append(out.GoodMonsters, MatchedMonster{
			DDBID:      m.ID,
			DocumentID: entry.DocumentID,
			Name:       entry.Name,
			Quantity:   m.Quantity,
		})
	}
	return nil
}

func (o *orchestrator) matchCharacters(ctx context.Context, e *ddbentities.Encounter, out *ParseEncounterOutput) error {
	players := make([]ddbentities.EncounterPlayer, 0, len(e.Players))
	for _, p := range e.Players {
		if !p.Hidden {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil
	}

	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	found, err := o.compendium.FindByDDBID(ctx, &compendium.FindByDDBIDInput{
		Kind:   compendium.IndexKindActor,
		DDBIDs: ids,
	})
	if err != nil {
		return errors.Wrap(err, "failed to look up encounter characters")
	}

	for _, p := range players {
		entry, ok := found.Entries[p.ID]
		if !ok {
			out.MissingCharacters = append(out.MissingCharacters, MissingCharacter{DDBID: p.ID, Name: p.Name})
			continue
		}
		out.GoodCharacters = append(out.GoodCharacters, MatchedCharacter{
			DDBID:      p.ID,
			DocumentID: entry.DocumentID,
			Name:       entry.Name,
		})
	}
	return nil
}

// fetchEncounters lists the user's encounters, skipping null entries
func (o *orchestrator) fetchEncounters(ctx context.Context) ([]*ddbentities.Encounter, error) {
	encounters, err := o.client.ListEncounters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list encounters")
	}

	out := make([]*ddbentities.Encounter, 0, len(encounters))
	for _, e := range encounters {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// DifficultyFor maps a DDB difficulty id to its display level. Unknown ids
// are shown as no challenge.
func DifficultyFor(id *int) Difficulty {
	if id == nil {
		return DifficultyNone
	}
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly} {
		if *d.ID == *id {
			return d
		}
	}
	return DifficultyNone
}

func hasCampaign(campaigns []*ddbentities.Campaign, id int) bool {
	for _, c := range campaigns {
		if c != nil && c.ID == id {
			return true
		}
	}
	return false
}
