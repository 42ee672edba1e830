package encounter

import (
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
)

// Difficulty is the display form of an encounter difficulty
type Difficulty struct {
	ID    *int
	Name  string
	Color string
}

// Difficulty levels as shown by the encounter builder
var (
	DifficultyNone   = Difficulty{Name: "No challenge", Color: "grey"}
	DifficultyEasy   = Difficulty{ID: intPtr(1), Name: "Easy", Color: "green"}
	DifficultyMedium = Difficulty{ID: intPtr(2), Name: "Medium", Color: "brown"}
	DifficultyHard   = Difficulty{ID: intPtr(3), Name: "Hard", Color: "orange"}
	DifficultyDeadly = Difficulty{ID: intPtr(4), Name: "Deadly", Color: "red"}
)

func intPtr(v int) *int {
	return &v
}

// ListEncountersInput defines the request for listing encounters
type ListEncountersInput struct {
	// CampaignID narrows the list when it is one of the user's campaigns (optional)
	CampaignID string
}

// ListEncountersOutput defines the response for listing encounters
type ListEncountersOutput struct {
	Encounters []*ddbentities.Encounter
	// Filtered is true when the campaign filter was applied
	Filtered bool
}

// ParseEncounterInput defines the request for parsing an encounter
type ParseEncounterInput struct {
	EncounterID string
}

// MatchedMonster is an encounter monster found in the monster index
type MatchedMonster struct {
	DDBID      int
	DocumentID string
	Name       string
	Quantity   int
}

// MissingMonster is an encounter monster with no index entry
type MissingMonster struct {
	DDBID    int
	Quantity int
}

// MatchedCharacter is a player found in the actor index
type MatchedCharacter struct {
	DDBID      int
	DocumentID string
	Name       string
}

// MissingCharacter is a player with no imported actor
type MissingCharacter struct {
	DDBID int
	Name  string
}

// ParseEncounterOutput is a parsed encounter ready for import
type ParseEncounterOutput struct {
	ID                string
	Name              string
	Description       string
	Summary           string
	Rewards           string
	Difficulty        Difficulty
	Campaign          *ddbentities.Campaign
	GoodMonsters      []MatchedMonster
	MissingMonsters   []MissingMonster
	GoodCharacters    []MatchedCharacter
	MissingCharacters []MissingCharacter
}

// HasMissing reports whether any monster or character could not be matched
func (o *ParseEncounterOutput) HasMissing() bool {
	return len(o.MissingMonsters) > 0 || len(o.MissingCharacters) > 0
}
