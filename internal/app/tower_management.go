// internal/app/tower_management.go
package app

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanepath"
)

// PlaceTower builds a tower of the given kind at the given world position.
func (g *Game) PlaceTower(kind string, pos lanepath.Point) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[kind]
	if !ok {
		return 0, ErrUnknownTower
	}
	if !g.levelManager.SpendCredits(def.Cost) {
		return 0, ErrInsufficientCredits
	}

	id := g.ECS.NewEntity()
	tower := &component.Tower{
		DefID:     kind,
		Level:     1,
		Unlocked:  make(map[string]bool),
		Abilities: make(map[defs.MajorAbility]bool),
		Invested:  def.Cost,
	}
	recomputeStats(tower, &def)
	g.ECS.Towers[id] = tower
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Combats[id] = &component.Combat{}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// RequestUpgrade raises the tower one level, granting a skill point and,
// at levels 6 and 7, the kind-specific major ability.
func (g *Game) RequestUpgrade(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownEntity
	}
	if tower.Level >= config.MaxTowerLevel {
		return ErrMaxLevel
	}
	def := defs.TowerLibrary[tower.DefID]

	cost := UpgradeCost(def.UpgradeCostBase, tower.Level)
	if !g.levelManager.SpendCredits(cost) {
		return ErrInsufficientCredits
	}

	tower.Level++
	tower.Invested += cost
	// Every level gained from level 2 onward grants a skill point.
	tower.SkillPoints += config.SkillPointsPerLevel
	// Derived stats are recomputed from the base curve. Skill multipliers
	// bought earlier are NOT reapplied: stats are order-dependent across
	// interleaved level-ups and skill purchases.
	recomputeStats(tower, &def)

	if tower.Level >= config.MajorAbilityFirstLevel && def.Level6Ability != "" {
		tower.Abilities[def.Level6Ability] = true
	}
	if tower.Level >= config.MaxTowerLevel && def.Level7Ability != "" {
		tower.Abilities[def.Level7Ability] = true
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerLeveledUp, Data: event.TowerLeveledUpData{
		TowerID: id,
		Level:   tower.Level,
	}})
	return nil
}

// ChooseSkillBranch commits the tower to one of the three branches.
// The choice is exclusive and permanent.
func (g *Game) ChooseSkillBranch(id types.EntityID, branch defs.SkillBranch) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownEntity
	}
	switch branch {
	case defs.BranchOffense, defs.BranchControl, defs.BranchUtility:
	default:
		return ErrInvalidBranch
	}
	if tower.SkillBranch.Chosen {
		return ErrBranchAlreadyChosen
	}
	tower.SkillBranch = component.SkillBranchChoice{Chosen: true, Branch: branch}
	return nil
}

// UnlockSkill unlocks a skill node, consuming its cost in points and applying
// its effect to the tower's current stats. A tower with no branch yet commits
// to the node's branch with its first skill choice.
func (g *Game) UnlockSkill(id types.EntityID, skillID string) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownEntity
	}
	node, ok := defs.SkillLibrary[skillID]
	if !ok {
		return ErrUnknownSkill
	}
	if tower.SkillBranch.Chosen && tower.SkillBranch.Branch != node.Branch {
		return ErrWrongBranch
	}
	if tower.Unlocked[skillID] {
		return ErrSkillAlreadyUnlocked
	}
	if node.Requires != "" && !tower.Unlocked[node.Requires] {
		return ErrMissingPrerequisite
	}
	if tower.SkillPoints < node.Cost {
		return ErrInsufficientSkillPoints
	}

	if !tower.SkillBranch.Chosen {
		tower.SkillBranch = component.SkillBranchChoice{Chosen: true, Branch: node.Branch}
	}
	tower.SkillPoints -= node.Cost
	tower.Unlocked[skillID] = true
	applySkillEffect(tower, node.Effect)

	g.EventDispatcher.Dispatch(event.Event{Type: event.SkillUnlocked, Data: event.SkillUnlockedData{
		TowerID: id,
		SkillID: skillID,
	}})
	return nil
}

// SellTower removes a tower, refunding a fraction of everything invested.
func (g *Game) SellTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownEntity
	}
	refund := int(math.Round(float64(tower.Invested) * config.SellRefundFactor))
	g.levelManager.GainCredits(refund)
	g.ECS.RemoveEntity(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return nil
}

// UpgradeCost is the credit cost of upgrading FROM the given level.
// Levels 1-4 follow the linear curve; the 5->6 and 6->7 steps are deliberate
// gate costs, not a continuation of the formula.
func UpgradeCost(base float64, level int) int {
	switch {
	case level >= 6:
		return int(math.Round(base * config.UpgradeCostLevel7Factor))
	case level == 5:
		return int(math.Round(base * config.UpgradeCostLevel6Factor))
	default:
		return int(math.Round(base * (1 + config.UpgradeCostGrowth*float64(level))))
	}
}

// recomputeStats derives the tower's combat stats from the definition's base
// values and the linear per-level growth curves.
func recomputeStats(tower *component.Tower, def *defs.TowerDefinition) {
	levels := float64(tower.Level - 1)
	tower.Damage = def.Combat.Damage * (1 + config.DamageGrowthPerLevel*levels)
	tower.Range = def.Combat.Range * (1 + config.RangeGrowthPerLevel*levels)
	tower.FireRate = def.Combat.FireRate * (1 + config.FireRateGrowthPerLevel*levels)
}

// applySkillEffect multiplies the tower's CURRENT stat, not its unmodified base.
func applySkillEffect(tower *component.Tower, effect defs.SkillEffect) {
	switch effect.Stat {
	case defs.StatDamage:
		tower.Damage *= effect.Multiplier
	case defs.StatRange:
		tower.Range *= effect.Multiplier
	case defs.StatFireRate:
		tower.FireRate *= effect.Multiplier
	}
}
