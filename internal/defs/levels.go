// internal/defs/levels.go
package defs

// Waypoint is one point of a lane path, in world coordinates.
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WaveGroup is one enemy-kind batch within a wave.
// Health, reward and speed default from the enemy definition when omitted.
type WaveGroup struct {
	WaveIndex  int     `yaml:"wave"` // 1-based
	EnemyID    string  `yaml:"enemy"`
	Count      int     `yaml:"count"`
	BaseHealth float64 `yaml:"health"`
	Reward     int     `yaml:"reward"`
	Speed      float64 `yaml:"speed"`
	Lane       int     `yaml:"lane"`        // -1: rotate over all lanes
	SpawnDelay float64 `yaml:"spawn_delay"` // seconds between spawns
}

// LevelDefinition describes one playable level: lanes, economy and waves.
type LevelDefinition struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	StartingCredits int          `yaml:"starting_credits"`
	StartingHealth  int          `yaml:"starting_health"`
	Lanes           [][]Waypoint `yaml:"lanes"`
	Waves           []WaveGroup  `yaml:"waves"`
}

// LevelLibrary is the library of all level definitions, mapped by their ID.
var LevelLibrary map[string]LevelDefinition
