// internal/component/combat.go
package component

import "go-lane-defense/internal/types"

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	FireCooldown    float64        // время до следующего выстрела (INSTANT/AREA)
	BeamAccumulator float64        // дробный накопитель урона (BEAM)
	TargetID        types.EntityID // 0 — цели нет
	Firing          bool           // башня стреляла в этом тике (для рендера)
}
