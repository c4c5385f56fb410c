// internal/component/movement.go
package component

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // base speed, world units per second
}

// PathProgress tracks where an enemy is along the lane network.
// Progress is normalized to [0, 1] and never decreases while the enemy
// is alive; a lane transition changes only lateral position.
type PathProgress struct {
	Lane     int
	Progress float64
}
