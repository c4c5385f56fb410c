// internal/app/views.go
package app

import (
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanepath"
)

// EnemyView is the per-tick render state of one enemy. Renderers consume
// these; the core never asks a renderer anything back.
type EnemyView struct {
	ID          types.EntityID
	Kind        string
	Position    lanepath.Point
	HealthFrac  float64
	Lane        int
	Progress    float64
	TransitionT float64 // 0 when not switching lanes
	Slowed      bool
	HitFlash    bool
}

// TowerView is the per-tick render state of one tower.
type TowerView struct {
	ID       types.EntityID
	Kind     string
	Position lanepath.Point
	Level    int
	Range    float64
	IsFiring bool
	TargetID types.EntityID
}

// EnemyViews snapshots every live enemy for rendering, in entity order.
func (g *Game) EnemyViews() []EnemyView {
	ids := g.ECS.SortedEnemyIDs()
	views := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		enemy := g.ECS.Enemies[id]
		health := g.ECS.Healths[id]
		prog := g.ECS.Progress[id]
		frac := 0.0
		if health.Max > 0 {
			frac = health.Value / health.Max
		}
		view := EnemyView{
			ID:         id,
			Kind:       enemy.DefID,
			Position:   system.WorldPosition(g.ECS, g.Network, id),
			HealthFrac: frac,
			Lane:       prog.Lane,
			Progress:   prog.Progress,
		}
		if tr, ok := g.ECS.LaneTransitions[id]; ok {
			view.TransitionT = tr.T
		}
		if _, ok := g.ECS.SlowEffects[id]; ok {
			view.Slowed = true
		}
		if _, ok := g.ECS.DamageFlashes[id]; ok {
			view.HitFlash = true
		}
		views = append(views, view)
	}
	return views
}

// TowerViews snapshots every tower for rendering, in entity order.
func (g *Game) TowerViews() []TowerView {
	ids := g.ECS.SortedTowerIDs()
	views := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		tower := g.ECS.Towers[id]
		pos := g.ECS.Positions[id]
		view := TowerView{
			ID:       id,
			Kind:     tower.DefID,
			Position: lanepath.Point{X: pos.X, Y: pos.Y},
			Level:    tower.Level,
			Range:    tower.Range,
		}
		if combat, ok := g.ECS.Combats[id]; ok {
			view.IsFiring = combat.Firing
			view.TargetID = combat.TargetID
		}
		views = append(views, view)
	}
	return views
}
