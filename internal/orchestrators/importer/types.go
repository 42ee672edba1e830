package importer

import (
	"time"

	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
)

// Source selects where spells are fetched from
type Source string

// Spell sources
const (
	SourceDDB Source = "ddb"
	SourceSRD Source = "srd"
)

// IsValid reports whether s is a known source
func (s Source) IsValid() bool {
	return s == SourceDDB || s == SourceSRD
}

// EventDocumentImported is published once per stored document
const EventDocumentImported = "ddbimporter.document.imported"

// Event context keys
const (
	ContextKeyRunID  = "run_id"
	ContextKeySource = "source"
	ContextKeyKind   = "kind"
)

// ImportSpellsInput defines the request for a spell import run
type ImportSpellsInput struct {
	// Source defaults to ddb
	Source     Source
	ClassName  string
	CampaignID string
	// DryRun parses without storing or publishing
	DryRun bool
}

// ImportFeaturesInput defines the request for a feature import run
type ImportFeaturesInput struct {
	Features []*ddbentities.Feature
	DryRun   bool
}

// Failure records one entry that could not be imported
type Failure struct {
	Name  string
	Error string
}

// RunOutput summarizes an import run
type RunOutput struct {
	RunID      string
	Source     Source
	Fetched    int
	Parsed     int
	Stored     int
	Failures   []Failure
	Items      []*document.Item
	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed returns the number of entries that were not imported
func (o *RunOutput) Failed() int {
	return len(o.Failures)
}
