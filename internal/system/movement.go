// internal/system/movement.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanepath"
)

// MovementSystem advances enemy progress along the lane network.
// Progress is monotonically non-decreasing while an enemy is alive; lane
// transitions only affect the lateral world position, never progress.
type MovementSystem struct {
	ecs     *entity.ECS
	network *lanepath.Network
}

func NewMovementSystem(ecs *entity.ECS, network *lanepath.Network) *MovementSystem {
	return &MovementSystem{ecs: ecs, network: network}
}

func (s *MovementSystem) Update(deltaTime float64, snapshot []EnemySnapshot) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		prog, hasProg := s.ecs.Progress[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasProg || !hasVel || enemy.ReachedEnd {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		if hasHealth && health.Value <= 0 {
			continue
		}

		currentSpeed := vel.Speed
		if slowEffect, isSlowed := s.ecs.SlowEffects[id]; isSlowed {
			currentSpeed *= 1.0 - slowEffect.Amount
		}
		currentSpeed *= proximityFactor(id, prog.Lane, snapshot)

		laneLength := s.network.Lane(prog.Lane).Length()
		prog.Progress += currentSpeed * deltaTime / laneLength
		if prog.Progress >= 1.0 {
			prog.Progress = 1.0
			enemy.ReachedEnd = true
		}

		// Зеркалим мировую позицию для рендера и боевых систем.
		pos := WorldPosition(s.ecs, s.network, id)
		if p, ok := s.ecs.Positions[id]; ok {
			p.X, p.Y = pos.X, pos.Y
		} else {
			s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
		}
	}
}

// proximityFactor is the physics-style slowdown from the nearest same-lane
// enemy ahead, independent of the lane-switch AI. Closer than MinSafeDistance
// the enemy nearly stops; between MinSafeDistance and SlowdownDistance the
// factor ramps linearly back to 1.
func proximityFactor(id types.EntityID, lane int, snapshot []EnemySnapshot) float64 {
	var self *EnemySnapshot
	for i := range snapshot {
		if snapshot[i].ID == id {
			self = &snapshot[i]
			break
		}
	}
	if self == nil {
		return 1.0
	}

	nearest := -1.0
	for i := range snapshot {
		other := &snapshot[i]
		if other.ID == id || other.Lane != lane {
			continue
		}
		if other.Progress <= self.Progress {
			continue
		}
		d := lanepath.Dist(self.Pos, other.Pos)
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest < 0 || nearest >= config.SlowdownDistance {
		return 1.0
	}
	if nearest <= config.MinSafeDistance {
		return config.MinSpeedFactor
	}
	t := (nearest - config.MinSafeDistance) / (config.SlowdownDistance - config.MinSafeDistance)
	return config.MinSpeedFactor + (1.0-config.MinSpeedFactor)*t
}
