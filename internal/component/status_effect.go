// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
// Slows refresh (max of amounts, max of durations), they never stack.
type SlowEffect struct {
	Amount    float64 // speed reduction fraction, e.g. 0.35 for a 35% slow
	Remaining float64 // seconds left
}

// DamageFlash is a short cosmetic hit-feedback timer, consumed by renderers.
type DamageFlash struct {
	Timer    float64
	Duration float64
}
