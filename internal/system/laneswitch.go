// internal/system/laneswitch.go
package system

import (
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/pkg/lanepath"
)

// LaneSwitchSystem is the decentralized traffic-avoidance AI. Every enemy
// senses only its local neighbors from the start-of-tick snapshot; there is
// no coordinator and no locking. Thrashing is prevented purely through
// cooldowns and the stability bias of the scoring function.
type LaneSwitchSystem struct {
	ecs     *entity.ECS
	network *lanepath.Network
}

func NewLaneSwitchSystem(ecs *entity.ECS, network *lanepath.Network) *LaneSwitchSystem {
	return &LaneSwitchSystem{ecs: ecs, network: network}
}

func (s *LaneSwitchSystem) Update(deltaTime float64, snapshot []EnemySnapshot) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		prog, hasProg := s.ecs.Progress[id]
		if !hasProg || enemy.ReachedEnd {
			continue
		}

		// Активный переход продолжается независимо от кулдауна.
		if tr, ok := s.ecs.LaneTransitions[id]; ok {
			if s.executeStep(tr) {
				prog.Lane = tr.ToLane
				delete(s.ecs.LaneTransitions, id)
				cooldown := config.SwitchCooldown
				if tr.Fallback {
					cooldown *= config.FallbackCooldownMultiplier
				}
				enemy.LaneChangeCooldown = cooldown
			}
			continue
		}

		if enemy.LaneChangeCooldown > 0 {
			enemy.LaneChangeCooldown -= deltaTime
			continue
		}

		var self *EnemySnapshot
		for i := range snapshot {
			if snapshot[i].ID == id {
				self = &snapshot[i]
				break
			}
		}
		if self == nil {
			continue
		}

		target, fallback, ok := EvaluateLaneSwitch(self, snapshot, s.network.NumLanes())
		if !ok {
			// Blocked with no safe alternative: the enemy stays put and
			// relies on the proximity slowdown instead.
			continue
		}
		s.ecs.LaneTransitions[id] = &component.LaneTransition{
			FromLane: self.Lane,
			ToLane:   target,
			Fallback: fallback,
		}
	}
}

// executeStep advances a transition by one fixed per-tick increment and
// reports completion. The lateral interpolation itself happens wherever the
// world position is computed (WorldPosition), keyed off T.
func (s *LaneSwitchSystem) executeStep(tr *component.LaneTransition) bool {
	tr.T += config.TransitionSpeed
	return tr.T >= 1.0
}

// EvaluateLaneSwitch decides whether the enemy should change lanes and where.
// It returns the target lane, whether the choice was a fallback (not the
// first-ranked safe candidate), and whether any switch should happen at all.
func EvaluateLaneSwitch(self *EnemySnapshot, all []EnemySnapshot, numLanes int) (int, bool, bool) {
	if numLanes < 2 {
		return 0, false, false
	}
	others := 0
	for i := range all {
		if all[i].ID != self.ID {
			others++
		}
	}
	if others == 0 {
		return 0, false, false
	}

	if !isBlocked(self, all) {
		return 0, false, false
	}

	// Score every other lane by weighted local traffic and rank ascending;
	// ties break toward the lower lane index for determinism.
	type laneScore struct {
		lane  int
		score float64
	}
	scores := make([]laneScore, 0, numLanes-1)
	for lane := 0; lane < numLanes; lane++ {
		if lane == self.Lane {
			continue
		}
		scores = append(scores, laneScore{lane: lane, score: trafficScore(self, all, lane)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score < scores[j].score
		}
		return scores[i].lane < scores[j].lane
	})

	for rank, candidate := range scores {
		if hasClearance(self, all, candidate.lane) {
			return candidate.lane, rank > 0, true
		}
	}
	return 0, false, false
}

// isBlocked reports whether a same-lane enemy ahead is close enough, both in
// progress and in world distance, and not meaningfully faster.
func isBlocked(self *EnemySnapshot, all []EnemySnapshot) bool {
	for i := range all {
		other := &all[i]
		if other.ID == self.ID || other.Lane != self.Lane {
			continue
		}
		gap := other.Progress - self.Progress
		if gap <= 0 || gap >= config.BlockDetectionRange {
			continue
		}
		if lanepath.Dist(self.Pos, other.Pos) >= config.LookAheadDistance {
			continue
		}
		if other.Speed > self.Speed*config.SpeedThreshold {
			continue // the blocker is pulling away on its own
		}
		return true
	}
	return false
}

// trafficScore weighs the occupancy of a lane: enemies ahead within the
// progress window count double those behind or out of window.
func trafficScore(self *EnemySnapshot, all []EnemySnapshot, lane int) float64 {
	score := 0.0
	for i := range all {
		other := &all[i]
		if other.ID == self.ID || other.Lane != lane {
			continue
		}
		gap := other.Progress - self.Progress
		if gap > 0 && gap <= config.TrafficScoreWindow {
			score += config.TrafficAheadWeight
		} else {
			score += config.TrafficOtherWeight
		}
	}
	return score
}

// hasClearance rejects a candidate lane when any enemy already in it is
// within MinLaneClearance progress of the evaluator, in either direction —
// swapping into an imminent collision is worse than staying blocked.
func hasClearance(self *EnemySnapshot, all []EnemySnapshot, lane int) bool {
	for i := range all {
		other := &all[i]
		if other.ID == self.ID || other.Lane != lane {
			continue
		}
		gap := other.Progress - self.Progress
		if gap < 0 {
			gap = -gap
		}
		if gap < config.MinLaneClearance {
			return false
		}
	}
	return true
}
