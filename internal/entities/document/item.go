// Package document defines the host application's document schema: items,
// their activities and the active effects attached to them.
package document

import "github.com/KirkDiggler/rpg-toolkit/core"

// ItemType is the host item type
type ItemType string

// Item types produced by the importer
const (
	ItemTypeSpell ItemType = "spell"
	ItemTypeFeat  ItemType = "feat"
)

// Item is a host item document
type Item struct {
	ID      string         `json:"_id"`
	Name    string         `json:"name"`
	Type    ItemType       `json:"type"`
	System  ItemSystem     `json:"system"`
	Effects []Effect       `json:"effects"`
	Flags   map[string]any `json:"flags,omitempty"`
	Extra   map[string]any `json:"-"`
}

var _ core.Entity = (*Item)(nil)

// GetID returns the document id
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the item type as an entity type
func (i *Item) GetType() string {
	return string(i.Type)
}

// ItemSystem is the system data of an item
type ItemSystem struct {
	Level       int                 `json:"level"`
	School      string              `json:"school"`
	Source      Source              `json:"source"`
	Properties  []string            `json:"properties"`
	Materials   Materials           `json:"materials"`
	Preparation *Preparation        `json:"preparation,omitempty"`
	Description Description         `json:"description"`
	Activation  Activation          `json:"activation"`
	Duration    Duration            `json:"duration"`
	Range       Range               `json:"range"`
	Target      Target              `json:"target"`
	Uses        Uses                `json:"uses"`
	Damage      *Damage             `json:"damage,omitempty"`
	Ability     string              `json:"ability,omitempty"`
	Activities  map[string]Activity `json:"activities"`
	Extra       map[string]any      `json:"-"`
}

// Source is the book reference of an item
type Source struct {
	SourceID int    `json:"sourceId,omitempty"`
	Page     string `json:"page,omitempty"`
	Custom   string `json:"custom,omitempty"`
}

// Materials describes the material component of a spell
type Materials struct {
	Value    string `json:"value"`
	Consumed bool   `json:"consumed"`
	Cost     int    `json:"cost"`
	Supply   int    `json:"supply"`
}

// Preparation is the preparation mode of a spell
type Preparation struct {
	Mode     string `json:"mode"`
	Prepared bool   `json:"prepared"`
}

// Preparation modes
const (
	PreparationPrepared = "prepared"
	PreparationAlways   = "always"
	PreparationPact     = "pact"
	PreparationRitual   = "ritual"
	PreparationInnate   = "innate"
	PreparationAtWill   = "atwill"
)

// Description holds the rendered description
type Description struct {
	Value string `json:"value"`
	Chat  string `json:"chat"`
}

// Activation is the casting or use time
type Activation struct {
	Type      string `json:"type"`
	Value     *int   `json:"value"`
	Condition string `json:"condition"`
}

// Duration is how long the item's effect lasts
type Duration struct {
	Value string `json:"value"`
	Units string `json:"units"`
}

// Uses tracks limited uses and their recovery
type Uses struct {
	Spent    *int       `json:"spent"`
	Max      *string    `json:"max"`
	Recovery []Recovery `json:"recovery"`
}

// Recovery is one recovery rule for uses
type Recovery struct {
	Period string `json:"period"`
	Type   string `json:"type"`
}

// Damage is the item level damage block
type Damage struct {
	Parts []DamagePart `json:"parts,omitempty"`
	Bonus string       `json:"bonus,omitempty"`
}
