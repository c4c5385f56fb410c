// internal/app/game.go
package app

import (
	"fmt"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanepath"
)

// Game wires the ECS and the per-tick systems together and exposes the
// command surface. The whole simulation is single-threaded and tick-driven:
// one Update(dt) pass per frame, all work synchronous within a tick, entity
// disposal deferred to the tick boundary.
type Game struct {
	ECS             *entity.ECS
	Network         *lanepath.Network
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	levelManager       *LevelManager
	waveSystem         *system.WaveSystem
	laneSwitchSystem   *system.LaneSwitchSystem
	movementSystem     *system.MovementSystem
	combatSystem       *system.CombatSystem
	statusEffectSystem *system.StatusEffectSystem

	over bool
}

// NewGame builds a game for the given level. Definitions must already be
// loaded (defs.LoadAll). Seed 0 means time-based randomness.
func NewGame(levelID string, seed int64) (*Game, error) {
	level, ok := defs.LevelLibrary[levelID]
	if !ok {
		return nil, ErrUnknownLevel
	}

	laneWaypoints := make([][]lanepath.Point, 0, len(level.Lanes))
	for _, lane := range level.Lanes {
		points := make([]lanepath.Point, 0, len(lane))
		for _, wp := range lane {
			points = append(points, lanepath.Point{X: wp.X, Y: wp.Y})
		}
		laneWaypoints = append(laneWaypoints, points)
	}
	network, err := lanepath.NewNetwork(laneWaypoints)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", levelID, err)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Network:         network,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(seed),
		levelManager:    NewLevelManager(dispatcher),
	}
	g.statusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.laneSwitchSystem = system.NewLaneSwitchSystem(ecs, network)
	g.movementSystem = system.NewMovementSystem(ecs, network)
	g.combatSystem = system.NewCombatSystem(ecs, dispatcher, g.Rng)
	g.waveSystem = system.NewWaveSystem(ecs, network, dispatcher, g.levelManager)

	if err := g.levelManager.StartLevel(levelID); err != nil {
		return nil, err
	}
	g.startCurrentWave()
	return g, nil
}

// StartLevel resets the economy and wave counters and clears all enemies.
func (g *Game) StartLevel(levelID string) error {
	if err := g.levelManager.StartLevel(levelID); err != nil {
		return err
	}
	for _, id := range g.ECS.SortedEnemyIDs() {
		g.ECS.RemoveEntity(id)
	}
	g.over = false
	g.startCurrentWave()
	return nil
}

func (g *Game) startCurrentWave() {
	index := g.levelManager.WaveIndex()
	g.waveSystem.StartWave(index, g.levelManager.CurrentWave())
}

// Update runs one simulation tick. Order: spawn new enemies, lane AI, enemy
// movement, tower combat, then disposal and wave bookkeeping at the boundary.
// All lane decisions read the snapshot taken at the start of the tick.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.ECS.GameTime += deltaTime

	snapshot := system.TakeSnapshot(g.ECS, g.Network)

	g.waveSystem.Update(deltaTime)
	g.statusEffectSystem.Update(deltaTime)
	g.laneSwitchSystem.Update(deltaTime, snapshot)
	g.movementSystem.Update(deltaTime, snapshot)
	g.combatSystem.Update(deltaTime)

	g.sweepDisposed()

	if g.levelManager.AdvanceWaveIfNeeded() {
		g.startCurrentWave()
	}
	if g.levelManager.GameOver() {
		g.over = true
	}
}

// sweepDisposed removes dead and arrived enemies at the tick boundary so no
// system ever mutates the collection it is iterating.
func (g *Game) sweepDisposed() {
	for _, id := range g.ECS.SortedEnemyIDs() {
		enemy := g.ECS.Enemies[id]
		health := g.ECS.Healths[id]

		switch {
		case health != nil && health.Value <= 0:
			g.levelManager.RegisterEnemyDefeat(enemy.Reward)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{
				EnemyID: id,
				Kind:    enemy.DefID,
				Reward:  enemy.Reward,
			}})
			g.ECS.RemoveEntity(id)
		case enemy.ReachedEnd:
			// A breach still counts toward wave completion, with zero reward.
			g.levelManager.DamagePlayer(config.DamagePerBreach)
			g.levelManager.RegisterEnemyDefeat(0)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: id})
			g.ECS.RemoveEntity(id)
		}
	}
}

// Credits returns the current credit balance.
func (g *Game) Credits() int { return g.levelManager.Credits() }

// Health returns the remaining player health.
func (g *Game) Health() int { return g.levelManager.Health() }

// WaveIndex returns the 1-based current wave number.
func (g *Game) WaveIndex() int { return g.levelManager.WaveIndex() }

// IsOver reports whether the player has lost.
func (g *Game) IsOver() bool { return g.over }

// LevelManager exposes the economy orchestrator, mainly for tests.
func (g *Game) LevelManager() *LevelManager { return g.levelManager }
