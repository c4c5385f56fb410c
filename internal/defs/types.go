// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamageKinetic DamageType = "KINETIC"
	DamageLaser   DamageType = "LASER"
	DamagePulse   DamageType = "PULSE"
)

// AttackMode defines how a tower delivers its damage.
type AttackMode string

const (
	// AttackInstant applies the full damage value once per shot.
	AttackInstant AttackMode = "INSTANT"
	// AttackBeam accumulates fractional damage continuously and applies
	// it in whole-number chunks.
	AttackBeam AttackMode = "BEAM"
	// AttackArea applies the shot to every enemy around the target.
	AttackArea AttackMode = "AREA"
)
