// internal/config/config.go
package config

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Lane switching AI.
	BlockDetectionRange        = 0.15 // progress gap that counts as "blocked"
	LookAheadDistance          = 1.5  // world units
	SpeedThreshold             = 1.15 // blocker is ignored if this much faster
	MinLaneClearance           = 0.2  // progress gap required in the target lane
	TrafficScoreWindow         = 0.30 // progress window for lane scoring
	TrafficAheadWeight         = 2.0
	TrafficOtherWeight         = 1.0
	TransitionSpeed            = 0.08 // per tick, ~12 ticks per transition
	SwitchCooldown             = 1.0  // seconds
	FallbackCooldownMultiplier = 2.0

	// Proximity slowdown (independent of the lane AI).
	MinSafeDistance  = 0.4 // world units, below this speed drops to MinSpeedFactor
	SlowdownDistance = 0.8 // world units, above this no slowdown
	MinSpeedFactor   = 0.1

	// Combat.
	BeamCritChance     = 0.15
	BeamCritMultiplier = 1.5
	DamageFlashDuration = 0.12

	// Major ability tuning.
	PiercingWindow   = 0.08 // progress window around the target for piercing shots
	EMPSlowAmount    = 0.5
	EMPSlowDuration  = 1.5
	ChainHitFactor   = 0.5
	TripleBeamTargets = 3
	DoublePulseShots = 2
	NovaDamageFactor = 0.5

	// Tower progression.
	MaxTowerLevel           = 7
	DamageGrowthPerLevel    = 0.3
	RangeGrowthPerLevel     = 0.12
	FireRateGrowthPerLevel  = 0.18
	UpgradeCostGrowth       = 0.6
	UpgradeCostLevel6Factor = 5.0 // gate cost 5->6, deliberately off the linear curve
	UpgradeCostLevel7Factor = 8.0 // gate cost 6->7
	MajorAbilityFirstLevel  = 6
	SkillPointsPerLevel     = 1
	SellRefundFactor        = 0.6

	// Economy.
	DamagePerBreach = 1 // player health lost per enemy reaching the base

	// Infinite wave scaling, per wave past the last authored one.
	WaveHealthScaling = 0.35
	WaveCountScaling  = 0.15
	WaveRewardScaling = 0.25
	WaveSpeedScaling  = 0.05
)
