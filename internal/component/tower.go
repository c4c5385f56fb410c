// internal/component/tower.go
package component

import "go-lane-defense/internal/defs"

// Tower holds the mutable progression state of a placed tower.
// Damage, Range and FireRate are the derived stats: recomputed from the
// definition's base on every level-up, then multiplied in place by skill
// effects as they are unlocked.
type Tower struct {
	DefID    string // ID из towers.yaml
	Level    int    // 1..7
	Damage   float64
	Range    float64
	FireRate float64

	SkillBranch SkillBranchChoice
	SkillPoints int
	Unlocked    map[string]bool // unlocked skill node IDs
	Abilities   map[defs.MajorAbility]bool

	Invested int // credits spent on this tower, for sell refunds
}

// SkillBranchChoice records the one-time branch commitment.
type SkillBranchChoice struct {
	Chosen bool
	Branch defs.SkillBranch
}

// HasAbility reports whether a major ability has been granted.
func (t *Tower) HasAbility(a defs.MajorAbility) bool {
	if a == "" {
		return false
	}
	return t.Abilities[a]
}
