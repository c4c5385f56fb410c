// internal/system/combat.go
package system

import (
	"log"
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// CombatSystem управляет атакой башен: выбор цели, перезарядка, выстрелы.
//
// Targeting is sticky: a tower keeps its current target while it stays alive
// and in range; otherwise it picks the in-range enemy with the highest
// progress (least distance to the base), lower entity ID breaking ties.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{ecs: ecs, dispatcher: dispatcher, rng: rng}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		combat, hasCombat := s.ecs.Combats[id]
		if !hasCombat {
			continue
		}
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: no tower definition for ID %s", tower.DefID)
			continue
		}

		combat.Firing = false
		combat.TargetID = s.selectTarget(id, tower, combat.TargetID)

		switch def.Combat.Mode {
		case defs.AttackBeam:
			s.updateBeam(deltaTime, id, tower, combat, &def)
		default:
			if combat.FireCooldown > 0 {
				combat.FireCooldown -= deltaTime
			}
			if combat.FireCooldown <= 0 && combat.TargetID != 0 {
				s.fire(id, tower, combat, &def)
				combat.FireCooldown = 1.0 / tower.FireRate
			}
		}
	}
}

// selectTarget keeps the current target while it is still a valid kill,
// otherwise re-scans live enemies within range.
func (s *CombatSystem) selectTarget(towerID types.EntityID, tower *component.Tower, current types.EntityID) types.EntityID {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return 0
	}
	if current != 0 && s.targetable(current) && s.inRange(towerPos, current, tower.Range) {
		return current
	}

	var best types.EntityID
	bestProgress := -1.0
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if !s.targetable(enemyID) || !s.inRange(towerPos, enemyID, tower.Range) {
			continue
		}
		prog := s.ecs.Progress[enemyID]
		if prog.Progress > bestProgress {
			bestProgress = prog.Progress
			best = enemyID
		}
	}
	return best
}

func (s *CombatSystem) targetable(id types.EntityID) bool {
	enemy, isEnemy := s.ecs.Enemies[id]
	health, hasHealth := s.ecs.Healths[id]
	return isEnemy && hasHealth && health.Value > 0 && !enemy.ReachedEnd
}

func (s *CombatSystem) inRange(towerPos *component.Position, enemyID types.EntityID, rangeRadius float64) bool {
	enemyPos, ok := s.ecs.Positions[enemyID]
	if !ok {
		return false
	}
	dx := enemyPos.X - towerPos.X
	dy := enemyPos.Y - towerPos.Y
	return math.Sqrt(dx*dx+dy*dy) <= rangeRadius
}

// fire resolves one discrete shot (INSTANT or AREA mode) including the
// major abilities granted at levels 6 and 7.
func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, combat *component.Combat, def *defs.TowerDefinition) {
	targetID := combat.TargetID
	shots := 1
	if tower.HasAbility(defs.AbilityDoublePulse) {
		shots = config.DoublePulseShots
	}

	for shot := 0; shot < shots; shot++ {
		if !s.targetable(targetID) {
			break
		}
		switch def.Combat.Mode {
		case defs.AttackArea:
			s.applyAreaDamage(targetID, tower.Damage, def.Combat.DamageType, def.Combat.SplashRadius)
		default:
			ApplyDamage(s.ecs, s.dispatcher, targetID, tower.Damage, def.Combat.DamageType)
		}
	}

	if tower.HasAbility(defs.AbilityPiercingShot) {
		s.applyPiercing(targetID, tower.Damage, def.Combat.DamageType)
	}
	if tower.HasAbility(defs.AbilityEMPSlow) {
		ApplySlow(s.ecs, targetID, config.EMPSlowAmount, config.EMPSlowDuration)
	}
	if tower.HasAbility(defs.AbilityNovaBurst) {
		s.applyNova(towerID, tower, def.Combat.DamageType)
	}

	combat.Firing = true
	s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.TowerFiredData{
		TowerID:  towerID,
		Kind:     tower.DefID,
		TargetID: targetID,
	}})
}

// updateBeam накапливает дробный урон и применяет его целыми частями,
// сохраняя остаток. Каждая порция может критовать.
func (s *CombatSystem) updateBeam(deltaTime float64, towerID types.EntityID, tower *component.Tower, combat *component.Combat, def *defs.TowerDefinition) {
	if combat.TargetID == 0 {
		return
	}
	combat.BeamAccumulator += tower.Damage * tower.FireRate * deltaTime
	chunk := math.Floor(combat.BeamAccumulator)
	if chunk < 1 {
		return
	}
	combat.BeamAccumulator -= chunk

	damage := chunk
	if s.rng.Chance(config.BeamCritChance) {
		damage *= config.BeamCritMultiplier
	}
	ApplyDamage(s.ecs, s.dispatcher, combat.TargetID, damage, def.Combat.DamageType)

	if tower.HasAbility(defs.AbilityTripleBeam) {
		s.applyExtraBeams(towerID, tower, combat.TargetID, damage, def.Combat.DamageType, config.TripleBeamTargets-1, 1.0)
	} else if tower.HasAbility(defs.AbilityChainHit) {
		s.applyExtraBeams(towerID, tower, combat.TargetID, damage, def.Combat.DamageType, 1, config.ChainHitFactor)
	}

	combat.Firing = true
	s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.TowerFiredData{
		TowerID:  towerID,
		Kind:     tower.DefID,
		TargetID: combat.TargetID,
	}})
}

// applyExtraBeams hits up to n additional in-range enemies, in targeting
// order, with a fraction of the beam chunk.
func (s *CombatSystem) applyExtraBeams(towerID types.EntityID, tower *component.Tower, primary types.EntityID, damage float64, dtype defs.DamageType, n int, factor float64) {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return
	}
	type candidate struct {
		id       types.EntityID
		progress float64
	}
	var candidates []candidate
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if enemyID == primary || !s.targetable(enemyID) || !s.inRange(towerPos, enemyID, tower.Range) {
			continue
		}
		candidates = append(candidates, candidate{id: enemyID, progress: s.ecs.Progress[enemyID].Progress})
	}
	// Same ordering as target acquisition: furthest along first.
	for i := 0; i < len(candidates)-1; i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].progress > candidates[i].progress {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}
	for i := 0; i < n && i < len(candidates); i++ {
		ApplyDamage(s.ecs, s.dispatcher, candidates[i].id, damage*factor, dtype)
	}
}

// applyAreaDamage damages every enemy within the splash radius of the target,
// the target included.
func (s *CombatSystem) applyAreaDamage(targetID types.EntityID, damage float64, dtype defs.DamageType, radius float64) {
	targetPos, ok := s.ecs.Positions[targetID]
	if !ok {
		return
	}
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if !s.targetable(enemyID) {
			continue
		}
		if enemyID == targetID || s.inRange(targetPos, enemyID, radius) {
			ApplyDamage(s.ecs, s.dispatcher, enemyID, damage, dtype)
		}
	}
}

// applyPiercing damages same-lane enemies clustered around the target.
func (s *CombatSystem) applyPiercing(targetID types.EntityID, damage float64, dtype defs.DamageType) {
	targetProg, ok := s.ecs.Progress[targetID]
	if !ok {
		return
	}
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if enemyID == targetID || !s.targetable(enemyID) {
			continue
		}
		prog := s.ecs.Progress[enemyID]
		if prog.Lane != targetProg.Lane {
			continue
		}
		gap := prog.Progress - targetProg.Progress
		if gap < 0 {
			gap = -gap
		}
		if gap <= config.PiercingWindow {
			ApplyDamage(s.ecs, s.dispatcher, enemyID, damage, dtype)
		}
	}
}

// applyNova damages every enemy within the tower's own range.
func (s *CombatSystem) applyNova(towerID types.EntityID, tower *component.Tower, dtype defs.DamageType) {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return
	}
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if !s.targetable(enemyID) || !s.inRange(towerPos, enemyID, tower.Range) {
			continue
		}
		ApplyDamage(s.ecs, s.dispatcher, enemyID, tower.Damage*config.NovaDamageFactor, dtype)
	}
}
