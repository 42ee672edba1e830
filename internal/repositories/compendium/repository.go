// Package compendium provides the interface for storing imported documents and
// the DDB id indexes used to match encounter monsters and players.
package compendium

//go:generate mockgen -destination=mock/mock_repository.go -package=compendiummock github.com/KirkDiggler/ddb-importer/internal/repositories/compendium Repository

import (
	"context"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
)

// IndexKind names a DDB id index
type IndexKind string

// Index kinds
const (
	IndexKindMonster IndexKind = "monster"
	IndexKindActor   IndexKind = "actor"
)

// IsValid reports whether k is a known index kind
func (k IndexKind) IsValid() bool {
	return k == IndexKindMonster || k == IndexKindActor
}

// IndexEntry links a DDB id to a document in the compendium or world
type IndexEntry struct {
	DDBID      int    `json:"ddbId"`
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
}

// Repository defines the interface for compendium persistence
type Repository interface {
	// Put stores an item under its type, replacing any previous version
	// Returns errors.InvalidArgument for a nil item, an empty id or an unknown type
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Get retrieves a stored item
	// Returns errors.NotFound if the item does not exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListByKind returns every stored item of one type ordered by id
	ListByKind(ctx context.Context, input *ListByKindInput) (*ListByKindOutput, error)

	// PutIndexEntry records a DDB id in the monster or actor index
	PutIndexEntry(ctx context.Context, input *PutIndexEntryInput) (*PutIndexEntryOutput, error)

	// FindByDDBID looks up many DDB ids at once. Ids with no entry are left
	// out of the result rather than reported as errors.
	FindByDDBID(ctx context.Context, input *FindByDDBIDInput) (*FindByDDBIDOutput, error)
}

// PutInput defines the input for storing an item
type PutInput struct {
	Item *document.Item
}

// PutOutput defines the output for storing an item
type PutOutput struct {
	Key string
}

// GetInput defines the input for getting an item
type GetInput struct {
	Kind document.ItemType
	ID   string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *document.Item
}

// ListByKindInput defines the input for listing items
type ListByKindInput struct {
	Kind document.ItemType
}

// ListByKindOutput defines the output for listing items
type ListByKindOutput struct {
	Items []*document.Item
}

// PutIndexEntryInput defines the input for indexing a DDB id
type PutIndexEntryInput struct {
	Kind  IndexKind
	Entry IndexEntry
}

// PutIndexEntryOutput defines the output for indexing a DDB id
type PutIndexEntryOutput struct{}

// FindByDDBIDInput defines the input for an index lookup
type FindByDDBIDInput struct {
	Kind   IndexKind
	DDBIDs []int
}

// FindByDDBIDOutput defines the output for an index lookup
type FindByDDBIDOutput struct {
	Entries map[int]IndexEntry
}
