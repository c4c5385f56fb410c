// internal/app/errors.go
package app

import "errors"

// Rejected commands report a reason and leave state unchanged.
var (
	ErrUnknownLevel            = errors.New("unknown level id")
	ErrUnknownTower            = errors.New("unknown tower kind")
	ErrUnknownEntity           = errors.New("no such tower")
	ErrUnknownSkill            = errors.New("unknown skill id")
	ErrInsufficientCredits     = errors.New("insufficient credits")
	ErrMaxLevel                = errors.New("tower is already at max level")
	ErrInvalidBranch           = errors.New("invalid skill branch")
	ErrBranchAlreadyChosen     = errors.New("skill branch already chosen")
	ErrWrongBranch             = errors.New("skill belongs to another branch")
	ErrSkillAlreadyUnlocked    = errors.New("skill already unlocked")
	ErrMissingPrerequisite     = errors.New("skill prerequisite not unlocked")
	ErrInsufficientSkillPoints = errors.New("insufficient skill points")
)
