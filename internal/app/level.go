// internal/app/level.go
package app

import (
	"math"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
)

// LevelManager owns the level economy and wave bookkeeping. It is the only
// mutator of credits and player health, both clamped at zero.
type LevelManager struct {
	dispatcher *event.Dispatcher

	level       defs.LevelDefinition
	maxAuthored int // highest authored wave index

	credits   int
	health    int
	waveIndex int // 1-based
	spawned   int
	defeated  int
	gameOver  bool
}

func NewLevelManager(dispatcher *event.Dispatcher) *LevelManager {
	return &LevelManager{dispatcher: dispatcher}
}

// StartLevel resets credits, health, wave index and progress counters from
// the level definition.
func (lm *LevelManager) StartLevel(id string) error {
	level, ok := defs.LevelLibrary[id]
	if !ok {
		return ErrUnknownLevel
	}
	lm.level = level
	lm.maxAuthored = 0
	for _, group := range level.Waves {
		if group.WaveIndex > lm.maxAuthored {
			lm.maxAuthored = group.WaveIndex
		}
	}
	lm.credits = level.StartingCredits
	lm.health = level.StartingHealth
	lm.waveIndex = 1
	lm.spawned = 0
	lm.defeated = 0
	lm.gameOver = false
	lm.dispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: id})
	return nil
}

func (lm *LevelManager) Credits() int   { return lm.credits }
func (lm *LevelManager) Health() int    { return lm.health }
func (lm *LevelManager) WaveIndex() int { return lm.waveIndex }
func (lm *LevelManager) GameOver() bool { return lm.gameOver }

// WaveProgress returns the spawned and defeated counters of the current wave.
func (lm *LevelManager) WaveProgress() (spawned, defeated int) {
	return lm.spawned, lm.defeated
}

// CurrentWave returns the wave groups for the current wave index.
func (lm *LevelManager) CurrentWave() []defs.WaveGroup {
	return lm.WaveGroups(lm.waveIndex)
}

// WaveGroups looks up the authored groups for a 1-based wave index. Past the
// authored range it synthesizes a wave from the last authored one: running
// out of content is never an error, the generator always produces a valid
// next wave.
func (lm *LevelManager) WaveGroups(index int) []defs.WaveGroup {
	var groups []defs.WaveGroup
	if index <= lm.maxAuthored {
		for _, group := range lm.level.Waves {
			if group.WaveIndex == index {
				groups = append(groups, group)
			}
		}
		return groups
	}

	k := float64(index - lm.maxAuthored)
	for _, group := range lm.level.Waves {
		if group.WaveIndex != lm.maxAuthored {
			continue
		}
		scaled := group
		scaled.WaveIndex = index
		scaled.BaseHealth = math.Round(group.BaseHealth * (1 + config.WaveHealthScaling*k))
		scaled.Count = int(math.Round(float64(group.Count) * (1 + config.WaveCountScaling*k)))
		scaled.Reward = int(math.Round(float64(group.Reward) * (1 + config.WaveRewardScaling*k)))
		scaled.Speed = group.Speed + config.WaveSpeedScaling*k
		groups = append(groups, scaled)
	}
	return groups
}

// TotalEnemiesInWave sums the counts of every group of the wave.
func (lm *LevelManager) TotalEnemiesInWave(index int) int {
	total := 0
	for _, group := range lm.WaveGroups(index) {
		total += group.Count
	}
	return total
}

// RegisterEnemySpawn counts one spawned enemy of the current wave.
func (lm *LevelManager) RegisterEnemySpawn() {
	lm.spawned++
}

// RegisterEnemyDefeat counts one defeated enemy and credits the reward.
// Both kills and base breaches end an enemy's life and advance the wave;
// a breach simply carries a zero reward.
func (lm *LevelManager) RegisterEnemyDefeat(reward int) {
	lm.defeated++
	lm.GainCredits(reward)
}

// AdvanceWaveIfNeeded moves to the next wave only when the defeated count has
// reached the wave total; spawned alone never advances a wave.
func (lm *LevelManager) AdvanceWaveIfNeeded() bool {
	if lm.defeated < lm.TotalEnemiesInWave(lm.waveIndex) {
		return false
	}
	lm.waveIndex++
	lm.spawned = 0
	lm.defeated = 0
	lm.dispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveData{Index: lm.waveIndex}})
	return true
}

// SpendCredits deducts the amount if affordable and reports success.
func (lm *LevelManager) SpendCredits(amount int) bool {
	if amount > lm.credits {
		return false
	}
	lm.credits -= amount
	return true
}

// GainCredits adds to the balance; negative results are clamped at zero.
func (lm *LevelManager) GainCredits(amount int) {
	lm.credits += amount
	if lm.credits < 0 {
		lm.credits = 0
	}
}

// DamagePlayer reduces player health, clamped at zero. Reaching zero ends
// the game.
func (lm *LevelManager) DamagePlayer(amount int) {
	if lm.gameOver {
		return
	}
	lm.health -= amount
	if lm.health <= 0 {
		lm.health = 0
		lm.gameOver = true
		lm.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}
