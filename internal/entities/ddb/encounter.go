package ddb

// Encounter is one encounter built in the encounter builder
type Encounter struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	FlavorText  string             `json:"flavorText"`
	Rewards     string             `json:"rewards"`
	Difficulty  *int               `json:"difficulty"`
	Campaign    *Campaign          `json:"campaign"`
	Monsters    []EncounterMonster `json:"monsters"`
	Players     []EncounterPlayer  `json:"players"`
}

// EncounterMonster is a monster slot in an encounter
type EncounterMonster struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// EncounterPlayer is a character slot in an encounter
type EncounterPlayer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Campaign is a campaign the user belongs to
type Campaign struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
