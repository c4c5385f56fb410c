// internal/system/snapshot.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanepath"
)

// EnemySnapshot is an enemy's pre-tick state. All AI decisions within a tick
// read these values, never live component state: an enemy's lane evaluation
// may see another enemy's pre-tick position, which is the accepted lockstep
// approximation. The pass is intentionally not linearizable across agents.
type EnemySnapshot struct {
	ID       types.EntityID
	Lane     int // authoritative lane (FromLane during a transition)
	Progress float64
	Speed    float64 // base speed, without slows
	Pos      lanepath.Point
}

// TakeSnapshot captures every live enemy at the start of the tick,
// in ascending entity order.
func TakeSnapshot(ecs *entity.ECS, network *lanepath.Network) []EnemySnapshot {
	ids := ecs.SortedEnemyIDs()
	snap := make([]EnemySnapshot, 0, len(ids))
	for _, id := range ids {
		prog, ok := ecs.Progress[id]
		if !ok {
			continue
		}
		vel := ecs.Velocities[id]
		snap = append(snap, EnemySnapshot{
			ID:       id,
			Lane:     prog.Lane,
			Progress: prog.Progress,
			Speed:    vel.Speed,
			Pos:      WorldPosition(ecs, network, id),
		})
	}
	return snap
}

// WorldPosition computes an entity's world position from its path state.
// During a lane transition the position is interpolated laterally between the
// two lanes with a cubic ease; progress itself is untouched.
func WorldPosition(ecs *entity.ECS, network *lanepath.Network, id types.EntityID) lanepath.Point {
	prog := ecs.Progress[id]
	if tr, ok := ecs.LaneTransitions[id]; ok {
		from := network.Lane(tr.FromLane).PositionAt(prog.Progress)
		to := network.Lane(tr.ToLane).PositionAt(prog.Progress)
		t := utils.EaseInOutCubic(utils.Clamp(tr.T, 0, 1))
		return lanepath.Point{
			X: utils.Lerp(from.X, to.X, t),
			Y: utils.Lerp(from.Y, to.Y, t),
		}
	}
	return network.Lane(prog.Lane).PositionAt(prog.Progress)
}
