package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func writeValidDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, "enemies.yaml", `
- id: ENEMY_GRUNT
  name: Grunt
  health: 10
  speed: 1.2
  reward: 5
  resistances:
    LASER: 0.8
`)
	writeDataFile(t, dir, "towers.yaml", `
- id: TOWER_RAIL
  name: Railgun
  cost: 50
  upgrade_cost_base: 40
  combat:
    damage: 12
    fire_rate: 0.8
    range: 3.5
    damage_type: KINETIC
  level6_ability: PIERCING_SHOT
  level7_ability: EMP_SLOW
`)
	writeDataFile(t, dir, "skills.yaml", `
- id: SKILL_FOCUS_FIRE
  branch: offense
  tier: 1
  cost: 1
  effect: { stat: damage, multiplier: 1.15 }
- id: SKILL_OVERCHARGE
  branch: offense
  tier: 2
  cost: 1
  requires: SKILL_FOCUS_FIRE
  effect: { stat: damage, multiplier: 1.25 }
`)
	writeDataFile(t, dir, "levels.yaml", `
- id: level_1
  name: First Contact
  starting_credits: 120
  starting_health: 20
  lanes:
    - [{x: 0, y: 0}, {x: 20, y: 0}]
    - [{x: 0, y: 2}, {x: 20, y: 2}]
  waves:
    - wave: 1
      enemy: ENEMY_GRUNT
      count: 5
      lane: -1
      spawn_delay: 0.8
`)
	return dir
}

func TestLoadAllPopulatesLibraries(t *testing.T) {
	dir := writeValidDataDir(t)
	if err := LoadAll(dir); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	grunt, ok := EnemyLibrary["ENEMY_GRUNT"]
	if !ok {
		t.Fatal("ENEMY_GRUNT missing from the library")
	}
	if grunt.Resistances[DamageLaser] != 0.8 {
		t.Errorf("Expected laser resistance 0.8, got %f", grunt.Resistances[DamageLaser])
	}

	rail, ok := TowerLibrary["TOWER_RAIL"]
	if !ok {
		t.Fatal("TOWER_RAIL missing from the library")
	}
	if rail.Combat.Mode != AttackInstant {
		t.Errorf("Expected the mode to default to INSTANT, got %s", rail.Combat.Mode)
	}
	if rail.Level6Ability != AbilityPiercingShot {
		t.Errorf("Expected PIERCING_SHOT, got %s", rail.Level6Ability)
	}

	if len(SkillLibrary) != 2 {
		t.Errorf("Expected 2 skill nodes, got %d", len(SkillLibrary))
	}

	level, ok := LevelLibrary["level_1"]
	if !ok {
		t.Fatal("level_1 missing from the library")
	}
	group := level.Waves[0]
	// Omitted wave fields inherit the enemy definition.
	if group.BaseHealth != 10 || group.Reward != 5 || group.Speed != 1.2 {
		t.Errorf("Expected inherited stats 10/5/1.2, got %f/%d/%f",
			group.BaseHealth, group.Reward, group.Speed)
	}
}

func TestLoadAllFailsOnMissingDir(t *testing.T) {
	if err := LoadAll(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected an error for a missing data directory")
	}
}

func TestSkillGraphValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "tier 1 with prerequisite",
			yaml: `
- id: SKILL_A
  branch: offense
  tier: 1
  cost: 1
  requires: SKILL_B
  effect: { stat: damage, multiplier: 1.1 }
- id: SKILL_B
  branch: offense
  tier: 1
  cost: 1
  effect: { stat: damage, multiplier: 1.1 }
`,
			wantErr: "must not have a prerequisite",
		},
		{
			name: "unknown prerequisite",
			yaml: `
- id: SKILL_A
  branch: offense
  tier: 2
  cost: 1
  requires: SKILL_GHOST
  effect: { stat: damage, multiplier: 1.1 }
`,
			wantErr: "unknown node",
		},
		{
			name: "cross-branch prerequisite",
			yaml: `
- id: SKILL_A
  branch: offense
  tier: 1
  cost: 1
  effect: { stat: damage, multiplier: 1.1 }
- id: SKILL_B
  branch: control
  tier: 2
  cost: 1
  requires: SKILL_A
  effect: { stat: fire_rate, multiplier: 1.1 }
`,
			wantErr: "another branch",
		},
		{
			name: "tier gap",
			yaml: `
- id: SKILL_A
  branch: offense
  tier: 1
  cost: 1
  effect: { stat: damage, multiplier: 1.1 }
- id: SKILL_B
  branch: offense
  tier: 3
  cost: 1
  requires: SKILL_A
  effect: { stat: damage, multiplier: 1.1 }
`,
			wantErr: "must require a tier 2 node",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeDataFile(t, t.TempDir(), "skills.yaml", c.yaml)
			err := LoadSkillDefinitions(path)
			if err == nil {
				t.Fatal("Expected a validation error, got nil")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("Expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLevelValidation(t *testing.T) {
	dir := writeValidDataDir(t)
	if err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.yaml")); err != nil {
		t.Fatalf("LoadEnemyDefinitions failed: %v", err)
	}

	single := writeDataFile(t, t.TempDir(), "levels.yaml", `
- id: level_bad
  starting_credits: 100
  starting_health: 20
  lanes:
    - [{x: 0, y: 0}, {x: 20, y: 0}]
  waves: []
`)
	if err := LoadLevelDefinitions(single); err == nil {
		t.Error("Expected an error for a single-lane level")
	}

	ghost := writeDataFile(t, t.TempDir(), "levels.yaml", `
- id: level_bad
  starting_credits: 100
  starting_health: 20
  lanes:
    - [{x: 0, y: 0}, {x: 20, y: 0}]
    - [{x: 0, y: 2}, {x: 20, y: 2}]
  waves:
    - wave: 1
      enemy: ENEMY_GHOST
      count: 3
`)
	if err := LoadLevelDefinitions(ghost); err == nil {
		t.Error("Expected an error for an unknown enemy reference")
	}
}
