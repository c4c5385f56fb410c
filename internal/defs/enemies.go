// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	Health      float64                `yaml:"health"`
	Speed       float64                `yaml:"speed"` // world units per second
	Reward      int                    `yaml:"reward"`
	Resistances map[DamageType]float64 `yaml:"resistances"` // divisor per damage type, 1.0 if absent
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition
