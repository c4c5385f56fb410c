// internal/system/status_effect.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.SlowEffects {
		effect.Remaining -= deltaTime
		if effect.Remaining <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}

	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}

// ApplySlow применяет замедление к врагу. Замедления обновляются, а не
// складываются: берётся максимум силы и максимум оставшейся длительности.
func ApplySlow(ecs *entity.ECS, id types.EntityID, amount, duration float64) {
	if _, isEnemy := ecs.Enemies[id]; !isEnemy {
		return
	}
	if effect, ok := ecs.SlowEffects[id]; ok {
		if amount > effect.Amount {
			effect.Amount = amount
		}
		if duration > effect.Remaining {
			effect.Remaining = duration
		}
		return
	}
	ecs.SlowEffects[id] = &component.SlowEffect{Amount: amount, Remaining: duration}
}
