package document

// EffectMode is how an effect change is applied to its key
type EffectMode int

// Effect modes as numbered by the host
const (
	EffectModeCustom    EffectMode = 0
	EffectModeMultiply  EffectMode = 1
	EffectModeAdd       EffectMode = 2
	EffectModeDowngrade EffectMode = 3
	EffectModeUpgrade   EffectMode = 4
	EffectModeOverride  EffectMode = 5
)

var effectModeNames = map[string]EffectMode{
	"custom":    EffectModeCustom,
	"multiply":  EffectModeMultiply,
	"add":       EffectModeAdd,
	"downgrade": EffectModeDowngrade,
	"upgrade":   EffectModeUpgrade,
	"override":  EffectModeOverride,
}

// ParseEffectMode resolves a mode name such as "add"
func ParseEffectMode(name string) (EffectMode, bool) {
	m, ok := effectModeNames[name]
	return m, ok
}

// Effect is an active effect attached to an item
type Effect struct {
	ID       string         `json:"_id"`
	Name     string         `json:"name"`
	Transfer bool           `json:"transfer"`
	Disabled bool           `json:"disabled"`
	Changes  []EffectChange `json:"changes"`
	Duration EffectDuration `json:"duration"`
	Flags    map[string]any `json:"flags,omitempty"`
	Extra    map[string]any `json:"-"`
}

// EffectChange is a single modification of a document path
type EffectChange struct {
	Key      string     `json:"key"`
	Value    string     `json:"value"`
	Mode     EffectMode `json:"mode"`
	Priority int        `json:"priority"`
}

// EffectDuration bounds how long an effect lasts
type EffectDuration struct {
	Rounds  *int `json:"rounds,omitempty"`
	Seconds *int `json:"seconds,omitempty"`
	Turns   *int `json:"turns,omitempty"`
}
