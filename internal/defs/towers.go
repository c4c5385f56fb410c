// internal/defs/towers.go
package defs

// MajorAbility identifies a kind-specific ability granted at levels 6 and 7.
type MajorAbility string

const (
	AbilityPiercingShot MajorAbility = "PIERCING_SHOT"
	AbilityEMPSlow      MajorAbility = "EMP_SLOW"
	AbilityChainHit     MajorAbility = "CHAIN_HIT"
	AbilityTripleBeam   MajorAbility = "TRIPLE_BEAM"
	AbilityDoublePulse  MajorAbility = "DOUBLE_PULSE"
	AbilityNovaBurst    MajorAbility = "NOVA_BURST"
)

// CombatStats contains the level-1 combat parameters of a tower.
type CombatStats struct {
	Damage       float64    `yaml:"damage"`
	FireRate     float64    `yaml:"fire_rate"` // shots per second
	Range        float64    `yaml:"range"`     // world units
	DamageType   DamageType `yaml:"damage_type"`
	Mode         AttackMode `yaml:"mode"`
	SplashRadius float64    `yaml:"splash_radius,omitempty"` // for AREA mode
}

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Cost            int          `yaml:"cost"`              // placement cost
	UpgradeCostBase float64      `yaml:"upgrade_cost_base"` // base for the level cost curve
	Combat          CombatStats  `yaml:"combat"`
	Level6Ability   MajorAbility `yaml:"level6_ability"`
	Level7Ability   MajorAbility `yaml:"level7_ability"`
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary map[string]TowerDefinition
