// internal/component/enemy.go
package component

import "go-lane-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID              string // ID из enemies.yaml
	Reward             int
	Resistances        map[defs.DamageType]float64
	LaneChangeCooldown float64 // seconds until the lane AI may evaluate again
	ReachedEnd         bool    // враг достиг конца пути
}

// LaneTransition is present while an enemy is moving between two lanes.
// T runs 0..1 in fixed per-tick increments; the authoritative lane stays
// FromLane until the transition completes.
type LaneTransition struct {
	FromLane int
	ToLane   int
	T        float64
	Fallback bool // chosen lane was not the first-ranked safe candidate
}
