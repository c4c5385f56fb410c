// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAll loads every definition file from the given data directory.
func LoadAll(dir string) error {
	if err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.yaml")); err != nil {
		return err
	}
	if err := LoadTowerDefinitions(filepath.Join(dir, "towers.yaml")); err != nil {
		return err
	}
	if err := LoadSkillDefinitions(filepath.Join(dir, "skills.yaml")); err != nil {
		return err
	}
	if err := LoadLevelDefinitions(filepath.Join(dir, "levels.yaml")); err != nil {
		return err
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		if def.Resistances == nil {
			def.Resistances = map[DamageType]float64{}
		}
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		if def.Combat.Mode == "" {
			def.Combat.Mode = AttackInstant
		}
		TowerLibrary[def.ID] = def
	}

	log.Printf("Loaded %d tower definitions", len(TowerLibrary))
	return nil
}

// LoadSkillDefinitions reads the skill tree file and populates the SkillLibrary.
func LoadSkillDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read skill definitions file: %w", err)
	}

	var nodes []SkillNode
	if err := yaml.Unmarshal(file, &nodes); err != nil {
		return fmt.Errorf("failed to unmarshal skill definitions: %w", err)
	}

	lib := make(map[string]SkillNode)
	for _, node := range nodes {
		lib[node.ID] = node
	}
	if err := validateSkillGraph(lib); err != nil {
		return fmt.Errorf("invalid skill graph: %w", err)
	}
	SkillLibrary = lib

	log.Printf("Loaded %d skill nodes", len(SkillLibrary))
	return nil
}

// validateSkillGraph checks prerequisite edges: every edge must point to an
// existing node of the same branch and the previous tier.
func validateSkillGraph(lib map[string]SkillNode) error {
	for id, node := range lib {
		if node.Tier == 1 {
			if node.Requires != "" {
				return fmt.Errorf("tier 1 skill %s must not have a prerequisite", id)
			}
			continue
		}
		req, ok := lib[node.Requires]
		if !ok {
			return fmt.Errorf("skill %s requires unknown node %q", id, node.Requires)
		}
		if req.Branch != node.Branch {
			return fmt.Errorf("skill %s requires node of another branch", id)
		}
		if req.Tier != node.Tier-1 {
			return fmt.Errorf("skill %s (tier %d) must require a tier %d node", id, node.Tier, node.Tier-1)
		}
	}
	return nil
}

// LoadLevelDefinitions reads the level file and populates the LevelLibrary.
// Wave groups missing health, reward or speed inherit them from the enemy
// definition, so authored content only states overrides.
func LoadLevelDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levels []LevelDefinition
	if err := yaml.Unmarshal(file, &levels); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	LevelLibrary = make(map[string]LevelDefinition)
	for _, level := range levels {
		if len(level.Lanes) < 2 {
			return fmt.Errorf("level %s needs at least 2 lanes, got %d", level.ID, len(level.Lanes))
		}
		for i := range level.Waves {
			group := &level.Waves[i]
			enemyDef, ok := EnemyLibrary[group.EnemyID]
			if !ok {
				return fmt.Errorf("level %s wave %d references unknown enemy %q", level.ID, group.WaveIndex, group.EnemyID)
			}
			if group.BaseHealth == 0 {
				group.BaseHealth = enemyDef.Health
			}
			if group.Reward == 0 {
				group.Reward = enemyDef.Reward
			}
			if group.Speed == 0 {
				group.Speed = enemyDef.Speed
			}
		}
		LevelLibrary[level.ID] = level
	}

	log.Printf("Loaded %d level definitions", len(LevelLibrary))
	return nil
}
