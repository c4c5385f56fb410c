// internal/system/damage.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

// ResolveDamage maps raw damage to final damage: raw is divided by the
// target's resistance for the damage type (missing resistance counts as 1.0,
// >1 reduces damage, <1 amplifies it), then multiplied by the active
// modifiers.
func ResolveDamage(raw float64, dtype defs.DamageType, resistances map[defs.DamageType]float64, modifiers ...float64) float64 {
	resistance := 1.0
	if r, ok := resistances[dtype]; ok && r > 0 {
		resistance = r
	}
	final := raw / resistance
	for _, m := range modifiers {
		final *= m
	}
	return final
}

// ApplyDamage наносит урон врагу с учётом его сопротивлений.
// Если враг уже уничтожен или дошёл до базы в этом тике, урон молча
// пропускается — так разрешается гонка «враг умирает, пока вторая башня
// целится в него».
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, raw float64, dtype defs.DamageType, modifiers ...float64) bool {
	health, hasHealth := ecs.Healths[id]
	enemy, isEnemy := ecs.Enemies[id]
	if !hasHealth || !isEnemy {
		return false
	}
	if health.Value <= 0 || enemy.ReachedEnd {
		return false
	}

	final := ResolveDamage(raw, dtype, enemy.Resistances, modifiers...)
	health.Value -= final
	if health.Value < 0 {
		health.Value = 0
	}

	ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    0,
		Duration: config.DamageFlashDuration,
	}

	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.EnemyDamagedData{
			EnemyID: id,
			Kind:    enemy.DefID,
			Damage:  final,
		}})
	}
	return true
}
