// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/types"
)

type ECS struct {
	GameTime        float64
	NextID          types.EntityID
	Positions       map[types.EntityID]*component.Position
	Velocities      map[types.EntityID]*component.Velocity
	Progress        map[types.EntityID]*component.PathProgress
	Healths         map[types.EntityID]*component.Health
	Enemies         map[types.EntityID]*component.Enemy
	Towers          map[types.EntityID]*component.Tower
	Combats         map[types.EntityID]*component.Combat
	SlowEffects     map[types.EntityID]*component.SlowEffect
	LaneTransitions map[types.EntityID]*component.LaneTransition
	DamageFlashes   map[types.EntityID]*component.DamageFlash
	Wave            *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Positions:       make(map[types.EntityID]*component.Position),
		Velocities:      make(map[types.EntityID]*component.Velocity),
		Progress:        make(map[types.EntityID]*component.PathProgress),
		Healths:         make(map[types.EntityID]*component.Health),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		Towers:          make(map[types.EntityID]*component.Tower),
		Combats:         make(map[types.EntityID]*component.Combat),
		SlowEffects:     make(map[types.EntityID]*component.SlowEffect),
		LaneTransitions: make(map[types.EntityID]*component.LaneTransition),
		DamageFlashes:   make(map[types.EntityID]*component.DamageFlash),
		Wave:            nil,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes every component of the entity.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Progress, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.LaneTransitions, id)
	delete(ecs.DamageFlashes, id)
}

// SortedEnemyIDs returns the live enemy IDs in ascending order.
// Systems iterate in this order so a tick is deterministic regardless of
// map iteration order.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedTowerIDs returns the tower IDs in ascending order.
func (ecs *ECS) SortedTowerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
