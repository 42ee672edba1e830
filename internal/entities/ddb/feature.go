package ddb

// Feature is a class, race or feat feature entry from a character sheet
type Feature struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Snippet     string      `json:"snippet"`
	Activation  *Activation `json:"activation"`
	LimitedUse  *LimitedUse `json:"limitedUse"`
	Sources     []Source    `json:"sources"`

	// Type is one of class, race or feat
	Type      string `json:"type,omitempty"`
	ClassName string `json:"className,omitempty"`
}

// Feature types
const (
	FeatureTypeClass = "class"
	FeatureTypeRace  = "race"
	FeatureTypeFeat  = "feat"
)
