// internal/component/wave.go
package component

import "go-lane-defense/internal/defs"

// SpawnGroup is the live spawning state of one wave group.
type SpawnGroup struct {
	Group      defs.WaveGroup
	Remaining  int     // enemies still to spawn
	SpawnTimer float64 // accumulates up to Group.SpawnDelay
	NextLane   int     // round-robin cursor when Group.Lane < 0
}

// Wave — компонент текущей волны
type Wave struct {
	Number int
	Groups []*SpawnGroup
}

// Done reports whether every group has finished spawning.
func (w *Wave) Done() bool {
	for _, g := range w.Groups {
		if g.Remaining > 0 {
			return false
		}
	}
	return true
}
