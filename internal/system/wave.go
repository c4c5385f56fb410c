// internal/system/wave.go
package system

import (
	"log"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/lanepath"
)

// WaveGameContext определяет методы, которые WaveSystem требует от игры.
// Это помогает избежать циклических зависимостей.
type WaveGameContext interface {
	RegisterEnemySpawn()
}

// WaveSystem spawns the enemies of the current wave onto their lanes.
type WaveSystem struct {
	ecs        *entity.ECS
	network    *lanepath.Network
	dispatcher *event.Dispatcher
	game       WaveGameContext
}

func NewWaveSystem(ecs *entity.ECS, network *lanepath.Network, dispatcher *event.Dispatcher, game WaveGameContext) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		network:    network,
		dispatcher: dispatcher,
		game:       game,
	}
}

// StartWave installs the given wave groups as the active wave.
func (s *WaveSystem) StartWave(number int, groups []defs.WaveGroup) {
	wave := &component.Wave{Number: number}
	for _, group := range groups {
		wave.Groups = append(wave.Groups, &component.SpawnGroup{
			Group:     group,
			Remaining: group.Count,
		})
	}
	s.ecs.Wave = wave
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Index: number}})
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	for _, group := range wave.Groups {
		if group.Remaining <= 0 {
			continue
		}
		group.SpawnTimer += deltaTime
		if group.SpawnTimer >= group.Group.SpawnDelay {
			s.spawnEnemy(group)
			group.Remaining--
			group.SpawnTimer = 0
		}
	}
}

func (s *WaveSystem) spawnEnemy(group *component.SpawnGroup) {
	def, ok := defs.EnemyLibrary[group.Group.EnemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", group.Group.EnemyID)
		return
	}

	lane := group.Group.Lane
	if lane < 0 {
		lane = group.NextLane % s.network.NumLanes()
		group.NextLane++
	} else {
		lane = lane % s.network.NumLanes()
	}

	id := s.ecs.NewEntity()
	start := s.network.Lane(lane).PositionAt(0)
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: group.Group.Speed}
	s.ecs.Progress[id] = &component.PathProgress{Lane: lane, Progress: 0}
	s.ecs.Healths[id] = &component.Health{Value: group.Group.BaseHealth, Max: group.Group.BaseHealth}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:       group.Group.EnemyID,
		Reward:      group.Group.Reward,
		Resistances: def.Resistances,
	}

	s.game.RegisterEnemySpawn()
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
