// internal/defs/skills.go
package defs

// SkillBranch is one of three exclusive upgrade paths per tower.
type SkillBranch string

const (
	BranchOffense SkillBranch = "offense"
	BranchControl SkillBranch = "control"
	BranchUtility SkillBranch = "utility"
)

// SkillStat names the derived tower stat a skill effect multiplies.
type SkillStat string

const (
	StatDamage   SkillStat = "damage"
	StatRange    SkillStat = "range"
	StatFireRate SkillStat = "fire_rate"
)

// SkillEffect is a multiplicative modifier to a tower's current stat.
type SkillEffect struct {
	Stat       SkillStat `yaml:"stat"`
	Multiplier float64   `yaml:"multiplier"`
}

// SkillNode is one node of the skill forest: 3 branches x 3 tiers,
// each tier gated on the previous one in the same branch.
type SkillNode struct {
	ID       string      `yaml:"id"`
	Branch   SkillBranch `yaml:"branch"`
	Tier     int         `yaml:"tier"`
	Cost     int         `yaml:"cost"`
	Requires string      `yaml:"requires"` // empty for tier 1
	Effect   SkillEffect `yaml:"effect"`
}

// SkillLibrary is the library of all skill nodes, mapped by their ID.
var SkillLibrary map[string]SkillNode
