// internal/event/types.go
package event

import "go-lane-defense/internal/types"

const (
	LevelStarted     EventType = "LevelStarted"
	WaveStarted      EventType = "WaveStarted"
	WaveAdvanced     EventType = "WaveAdvanced" // волна завершена, переход к следующей
	TowerPlaced      EventType = "TowerPlaced"  // башня построена
	TowerSold        EventType = "TowerSold"
	TowerFired       EventType = "TowerFired"
	TowerLeveledUp   EventType = "TowerLeveledUp"
	SkillUnlocked    EventType = "SkillUnlocked"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyDamaged     EventType = "EnemyDamaged"
	EnemyDestroyed   EventType = "EnemyDestroyed" // враг уничтожен башней
	EnemyReachedBase EventType = "EnemyReachedBase"
	GameOver         EventType = "GameOver"
)

// TowerFiredData accompanies TowerFired.
type TowerFiredData struct {
	TowerID  types.EntityID
	Kind     string
	TargetID types.EntityID
}

// TowerLeveledUpData accompanies TowerLeveledUp.
type TowerLeveledUpData struct {
	TowerID types.EntityID
	Level   int
}

// SkillUnlockedData accompanies SkillUnlocked.
type SkillUnlockedData struct {
	TowerID types.EntityID
	SkillID string
}

// EnemyDamagedData accompanies EnemyDamaged.
type EnemyDamagedData struct {
	EnemyID types.EntityID
	Kind    string
	Damage  float64
}

// EnemyDestroyedData accompanies EnemyDestroyed.
type EnemyDestroyedData struct {
	EnemyID types.EntityID
	Kind    string
	Reward  int
}

// WaveData accompanies WaveStarted and WaveAdvanced.
type WaveData struct {
	Index int
}
