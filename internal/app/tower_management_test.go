package app

import (
	"math"
	"testing"

	"go-lane-defense/internal/defs"
	"go-lane-defense/pkg/lanepath"
)

// setupAppDefs seeds the definition libraries in code so the tests do not
// depend on the asset files.
func setupAppDefs() {
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{
		"ENEMY_GRUNT": {
			ID: "ENEMY_GRUNT", Name: "Grunt",
			Health: 10, Speed: 1.2, Reward: 5,
			Resistances: map[defs.DamageType]float64{defs.DamageLaser: 0.8},
		},
	}
	defs.TowerLibrary = map[string]defs.TowerDefinition{
		"TOWER_RAIL": {
			ID: "TOWER_RAIL", Name: "Rail",
			Cost: 50, UpgradeCostBase: 40,
			Combat: defs.CombatStats{
				Damage: 12, FireRate: 0.8, Range: 3.5,
				DamageType: defs.DamageKinetic, Mode: defs.AttackInstant,
			},
			Level6Ability: defs.AbilityPiercingShot,
			Level7Ability: defs.AbilityEMPSlow,
		},
	}
	defs.SkillLibrary = map[string]defs.SkillNode{
		"SKILL_FOCUS_FIRE": {
			ID: "SKILL_FOCUS_FIRE", Branch: defs.BranchOffense, Tier: 1, Cost: 1,
			Effect: defs.SkillEffect{Stat: defs.StatDamage, Multiplier: 1.15},
		},
		"SKILL_OVERCHARGE": {
			ID: "SKILL_OVERCHARGE", Branch: defs.BranchOffense, Tier: 2, Cost: 1,
			Requires: "SKILL_FOCUS_FIRE",
			Effect:   defs.SkillEffect{Stat: defs.StatDamage, Multiplier: 1.25},
		},
		"SKILL_RAPID_CYCLE": {
			ID: "SKILL_RAPID_CYCLE", Branch: defs.BranchControl, Tier: 1, Cost: 1,
			Effect: defs.SkillEffect{Stat: defs.StatFireRate, Multiplier: 1.15},
		},
	}
	lanes := [][]defs.Waypoint{
		{{X: 0, Y: 0}, {X: 20, Y: 0}},
		{{X: 0, Y: 2}, {X: 20, Y: 2}},
	}
	waves := []defs.WaveGroup{
		{WaveIndex: 1, EnemyID: "ENEMY_GRUNT", Count: 5, BaseHealth: 10, Reward: 5, Speed: 1.2, Lane: -1, SpawnDelay: 0.8},
	}
	defs.LevelLibrary = map[string]defs.LevelDefinition{
		"lvl_eco": {
			ID: "lvl_eco", StartingCredits: 120, StartingHealth: 20,
			Lanes: lanes, Waves: waves,
		},
		"lvl_rich": {
			ID: "lvl_rich", StartingCredits: 100000, StartingHealth: 20,
			Lanes: lanes, Waves: waves,
		},
	}
}

func newTestGame(t *testing.T, levelID string) *Game {
	t.Helper()
	setupAppDefs()
	g, err := NewGame(levelID, 1)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func TestPlaceTowerSpendsCredits(t *testing.T) {
	g := newTestGame(t, "lvl_eco")

	if _, err := g.PlaceTower("TOWER_BOGUS", lanepath.Point{X: 5, Y: 1}); err != ErrUnknownTower {
		t.Errorf("Expected ErrUnknownTower, got %v", err)
	}
	if g.Credits() != 120 {
		t.Errorf("Failed placement must not spend credits, got %d", g.Credits())
	}

	id, err := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("PlaceTower failed: %v", err)
	}
	if g.Credits() != 70 {
		t.Errorf("Expected 70 credits after placing, got %d", g.Credits())
	}
	tower := g.ECS.Towers[id]
	if tower.Level != 1 || tower.Damage != 12 || tower.Invested != 50 {
		t.Errorf("Unexpected fresh tower state: level %d damage %f invested %d",
			tower.Level, tower.Damage, tower.Invested)
	}

	if _, err := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 8, Y: 1}); err != nil {
		t.Fatalf("Second placement failed: %v", err)
	}
	if _, err := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 11, Y: 1}); err != ErrInsufficientCredits {
		t.Errorf("Expected ErrInsufficientCredits with 20 credits left, got %v", err)
	}
}

func TestUpgradeCostCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 64},
		{2, 88},
		{3, 112},
		{4, 136},
		{5, 200}, // gate: base * 5
		{6, 320}, // gate: base * 8
	}
	for _, c := range cases {
		if got := UpgradeCost(40, c.level); got != c.want {
			t.Errorf("UpgradeCost(40, %d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestUpgradeRecomputesDerivedStats(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, err := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("PlaceTower failed: %v", err)
	}

	if err := g.RequestUpgrade(id); err != nil {
		t.Fatalf("RequestUpgrade failed: %v", err)
	}
	tower := g.ECS.Towers[id]
	if tower.Level != 2 {
		t.Fatalf("Expected level 2, got %d", tower.Level)
	}
	if math.Abs(tower.Damage-15.6) > 1e-9 {
		t.Errorf("Expected damage 15.6 at level 2, got %f", tower.Damage)
	}
	if math.Abs(tower.Range-3.92) > 1e-9 {
		t.Errorf("Expected range 3.92 at level 2, got %f", tower.Range)
	}
	if math.Abs(tower.FireRate-0.944) > 1e-9 {
		t.Errorf("Expected fire rate 0.944 at level 2, got %f", tower.FireRate)
	}
	if tower.SkillPoints != 1 {
		t.Errorf("Expected 1 skill point, got %d", tower.SkillPoints)
	}
	if tower.Invested != 50+64 {
		t.Errorf("Expected 114 invested, got %d", tower.Invested)
	}
}

func TestUpgradeGrantsMajorAbilities(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, _ := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	tower := g.ECS.Towers[id]

	for tower.Level < 5 {
		if err := g.RequestUpgrade(id); err != nil {
			t.Fatalf("Upgrade to %d failed: %v", tower.Level+1, err)
		}
	}
	if tower.HasAbility(defs.AbilityPiercingShot) {
		t.Error("Level 5 tower must not have the level-6 ability yet")
	}

	if err := g.RequestUpgrade(id); err != nil {
		t.Fatalf("Upgrade to 6 failed: %v", err)
	}
	if !tower.HasAbility(defs.AbilityPiercingShot) {
		t.Error("Expected PIERCING_SHOT at level 6")
	}
	if tower.HasAbility(defs.AbilityEMPSlow) {
		t.Error("Level 6 tower must not have the level-7 ability yet")
	}

	if err := g.RequestUpgrade(id); err != nil {
		t.Fatalf("Upgrade to 7 failed: %v", err)
	}
	if !tower.HasAbility(defs.AbilityEMPSlow) {
		t.Error("Expected EMP_SLOW at level 7")
	}
	if tower.SkillPoints != 6 {
		t.Errorf("Expected 6 skill points at level 7, got %d", tower.SkillPoints)
	}

	if err := g.RequestUpgrade(id); err != ErrMaxLevel {
		t.Errorf("Expected ErrMaxLevel past level 7, got %v", err)
	}
}

func TestSkillBranchExclusivity(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, _ := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	g.RequestUpgrade(id)

	if err := g.ChooseSkillBranch(id, "sorcery"); err != ErrInvalidBranch {
		t.Errorf("Expected ErrInvalidBranch, got %v", err)
	}
	if err := g.ChooseSkillBranch(id, defs.BranchOffense); err != nil {
		t.Fatalf("ChooseSkillBranch failed: %v", err)
	}
	if err := g.ChooseSkillBranch(id, defs.BranchControl); err != ErrBranchAlreadyChosen {
		t.Errorf("Expected ErrBranchAlreadyChosen, got %v", err)
	}
	if err := g.UnlockSkill(id, "SKILL_RAPID_CYCLE"); err != ErrWrongBranch {
		t.Errorf("Expected ErrWrongBranch for a control node, got %v", err)
	}
}

func TestUnlockSkillValidation(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, _ := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	tower := g.ECS.Towers[id]

	if err := g.UnlockSkill(id, "SKILL_NONSENSE"); err != ErrUnknownSkill {
		t.Errorf("Expected ErrUnknownSkill, got %v", err)
	}
	if err := g.UnlockSkill(id, "SKILL_FOCUS_FIRE"); err != ErrInsufficientSkillPoints {
		t.Errorf("Expected ErrInsufficientSkillPoints with 0 points, got %v", err)
	}

	g.RequestUpgrade(id) // 1 point
	if err := g.UnlockSkill(id, "SKILL_OVERCHARGE"); err != ErrMissingPrerequisite {
		t.Errorf("Expected ErrMissingPrerequisite for tier 2 first, got %v", err)
	}

	if err := g.UnlockSkill(id, "SKILL_FOCUS_FIRE"); err != nil {
		t.Fatalf("UnlockSkill failed: %v", err)
	}
	if !tower.SkillBranch.Chosen || tower.SkillBranch.Branch != defs.BranchOffense {
		t.Error("First unlock must commit the tower to the node's branch")
	}
	if tower.SkillPoints != 0 {
		t.Errorf("Expected the point to be spent, got %d", tower.SkillPoints)
	}
	if err := g.UnlockSkill(id, "SKILL_FOCUS_FIRE"); err != ErrSkillAlreadyUnlocked {
		t.Errorf("Expected ErrSkillAlreadyUnlocked, got %v", err)
	}
}

// Interleaving level-ups and skill purchases is order-dependent: a level-up
// rebuilds the stats from the base curve, dropping earlier skill multipliers,
// while a skill multiplies whatever the stat currently is.
func TestLevelUpAfterSkillDropsItsMultiplier(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, _ := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	tower := g.ECS.Towers[id]

	g.RequestUpgrade(id) // level 2: damage 15.6
	if err := g.UnlockSkill(id, "SKILL_FOCUS_FIRE"); err != nil {
		t.Fatalf("UnlockSkill failed: %v", err)
	}
	if math.Abs(tower.Damage-17.94) > 1e-9 {
		t.Fatalf("Expected damage 17.94 after the skill, got %f", tower.Damage)
	}

	g.RequestUpgrade(id) // level 3 recomputes from base: 12 * 1.6
	if math.Abs(tower.Damage-19.2) > 1e-9 {
		t.Errorf("Expected damage 19.2 after the level-up, got %f", tower.Damage)
	}
}

func TestSellTowerRefundsInvestedFraction(t *testing.T) {
	g := newTestGame(t, "lvl_rich")
	id, _ := g.PlaceTower("TOWER_RAIL", lanepath.Point{X: 5, Y: 1})
	g.RequestUpgrade(id) // invested 114

	before := g.Credits()
	if err := g.SellTower(id); err != nil {
		t.Fatalf("SellTower failed: %v", err)
	}
	if got := g.Credits(); got != before+68 { // round(114 * 0.6)
		t.Errorf("Expected refund 68, got %d", got-before)
	}
	if _, ok := g.ECS.Towers[id]; ok {
		t.Error("Sold tower must be removed")
	}
	if err := g.SellTower(id); err != ErrUnknownEntity {
		t.Errorf("Expected ErrUnknownEntity for a sold tower, got %v", err)
	}
}
