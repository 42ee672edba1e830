package document

// Range is the range of an item. A nil Units means no range was given.
type Range struct {
	Value *int    `json:"value"`
	Units *string `json:"units"`
}

// Range units
const (
	UnitsFeet  = "ft"
	UnitsMiles = "ml"
	UnitsTouch = "touch"
	UnitsSelf  = "self"
	UnitsNone  = "none"
	UnitsSpec  = "spec"
	UnitsAny   = "any"
)

// Target describes who or what an item affects. At most one of Affects and
// Template carries meaningful data.
type Target struct {
	Prompt   bool     `json:"prompt"`
	Affects  Affects  `json:"affects"`
	Template Template `json:"template"`
}

// Affects is the creature based part of a target. Count is a formula string,
// empty when unknown.
type Affects struct {
	Count   string `json:"count"`
	Type    string `json:"type"`
	Choice  bool   `json:"choice"`
	Special string `json:"special"`
}

// Template is the area based part of a target
type Template struct {
	Count      string `json:"count"`
	Contiguous bool   `json:"contiguous"`
	Type       string `json:"type"`
	Size       string `json:"size"`
	Width      string `json:"width"`
	Height     string `json:"height"`
	Units      string `json:"units"`
}

// Affects and template types
const (
	AffectsCreature = "creature"
	AffectsSelf     = "self"
	AffectsNone     = "none"

	TemplateRadius = "radius"
	TemplateWall   = "wall"
)

// NewTarget returns a target with the host defaults
func NewTarget() Target {
	return Target{
		Prompt: true,
		Template: Template{
			Units: UnitsFeet,
		},
	}
}
