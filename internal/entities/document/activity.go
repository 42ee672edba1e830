package document

// ActivityType selects how an activity is built and used
type ActivityType string

// Activity types. ActivityTypeNone marks a spell the classifier could not
// place; ActivityTypeCheck is only ever produced by override hints.
const (
	ActivityTypeNone    ActivityType = ""
	ActivityTypeSave    ActivityType = "save"
	ActivityTypeAttack  ActivityType = "attack"
	ActivityTypeDamage  ActivityType = "damage"
	ActivityTypeHeal    ActivityType = "heal"
	ActivityTypeUtility ActivityType = "utility"
	ActivityTypeEnchant ActivityType = "enchant"
	ActivityTypeSummon  ActivityType = "summon"
	ActivityTypeCheck   ActivityType = "check"
)

// Valid reports whether t names a buildable activity
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeSave, ActivityTypeAttack, ActivityTypeDamage, ActivityTypeHeal,
		ActivityTypeUtility, ActivityTypeEnchant, ActivityTypeSummon, ActivityTypeCheck:
		return true
	}
	return false
}

func (t ActivityType) String() string {
	if t == ActivityTypeNone {
		return "none"
	}
	return string(t)
}

// Activity is one usable effect of an item
type Activity struct {
	ID          string          `json:"_id"`
	Type        ActivityType    `json:"type"`
	Name        string          `json:"name,omitempty"`
	Activation  *Activation     `json:"activation,omitempty"`
	Range       *Range          `json:"range,omitempty"`
	Target      *Target         `json:"target,omitempty"`
	Consumption *Consumption    `json:"consumption,omitempty"`
	Save        *Save           `json:"save,omitempty"`
	Attack      *Attack         `json:"attack,omitempty"`
	Damage      *ActivityDamage `json:"damage,omitempty"`
	Healing     *DamagePart     `json:"healing,omitempty"`
	Roll        *Roll           `json:"roll,omitempty"`
	Check       *Check          `json:"check,omitempty"`
	Flags       map[string]any  `json:"flags,omitempty"`
	Extra       map[string]any  `json:"-"`
}

// Consumption lists what using the activity consumes
type Consumption struct {
	Targets []ConsumptionTarget `json:"targets"`
}

// ConsumptionTarget is one consumed resource
type ConsumptionTarget struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	Value  string `json:"value"`
}

// Save is a saving throw
type Save struct {
	Ability string `json:"ability"`
	DC      DC     `json:"dc"`
}

// DC is a difficulty class, either calculated from an ability or a formula
type DC struct {
	Calculation string `json:"calculation"`
	Formula     string `json:"formula"`
}

// Attack is an attack roll
type Attack struct {
	Ability string     `json:"ability"`
	Bonus   string     `json:"bonus"`
	Type    AttackType `json:"type"`
}

// AttackType is the attack value and classification
type AttackType struct {
	Value          string `json:"value"`
	Classification string `json:"classification"`
}

// ActivityDamage is the damage rolled by an activity
type ActivityDamage struct {
	OnSave string       `json:"onSave"`
	Parts  []DamagePart `json:"parts"`
}

// DamagePart is a single damage or healing roll
type DamagePart struct {
	Number       *int          `json:"number"`
	Denomination *int          `json:"denomination"`
	Bonus        string        `json:"bonus"`
	Types        []string      `json:"types"`
	Custom       CustomFormula `json:"custom"`
	Scaling      *Scaling      `json:"scaling,omitempty"`
}

// CustomFormula replaces the dice of a part when enabled
type CustomFormula struct {
	Enabled bool   `json:"enabled"`
	Formula string `json:"formula"`
}

// Scaling describes how a part scales with level
type Scaling struct {
	Mode    string `json:"mode"`
	Number  *int   `json:"number"`
	Formula string `json:"formula"`
}

// Roll is a free roll attached to an activity
type Roll struct {
	Prompt  bool   `json:"prompt"`
	Visible bool   `json:"visible"`
	Formula string `json:"formula"`
	Name    string `json:"name"`
}

// Check is an ability or skill check
type Check struct {
	Associated []string `json:"associated"`
	Ability    string   `json:"ability"`
	DC         DC       `json:"dc"`
}
