package systems

import (
	"math"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
)

// Target - найденная цель: ID, позиция и что это за сущность.
type Target struct {
	ID   types.EntityID
	Kind enums.EntityKind
	Pos  domain.Position
	Dist float64
}

// Found - есть ли цель.
func (t Target) Found() bool {
	return !t.ID.IsNil()
}

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target Target
	Valid  bool
	Reason string // Причина, если Valid == false (для debug-логов)
}

// NearestEnemyChampion ищет ближайшего живого чемпиона противника в радиусе.
func NearestEnemyChampion(snap *domain.Snapshot, team domain.Team, from domain.Position, radius float64) Target {
	best := Target{Dist: math.Inf(1)}
	for i := range snap.Champions {
		c := &snap.Champions[i]
		if c.Team == team || !c.CanAct() {
			continue
		}
		if d := from.DistanceTo(c.Pos); d <= radius && d < best.Dist {
			best = Target{ID: c.ID, Kind: enums.EntityKindChampion, Pos: c.Pos, Dist: d}
		}
	}
	return best
}

// NearestEnemyMinion ищет ближайшего активного миньона противника в радиусе.
func NearestEnemyMinion(snap *domain.Snapshot, team domain.Team, from domain.Position, radius, clock float64) Target {
	best := Target{Dist: math.Inf(1)}
	for i := range snap.Minions {
		m := &snap.Minions[i]
		if m.Team == team || !m.IsActive(clock) {
			continue
		}
		if d := from.DistanceTo(m.Pos); d <= radius && d < best.Dist {
			best = Target{ID: m.ID, Kind: enums.EntityKindMinion, Pos: m.Pos, Dist: d}
		}
	}
	return best
}

// NearestEnemyStructure - ближайшее живое вражеское строение в радиусе.
// onlyVulnerable отсеивает строения, закрытые цепочкой.
func NearestEnemyStructure(snap *domain.Snapshot, team domain.Team, from domain.Position, radius float64, onlyVulnerable bool) *domain.Structure {
	var best *domain.Structure
	bestDist := math.Inf(1)
	for i := range snap.Structures {
		s := &snap.Structures[i]
		if s.Team == team || !s.Alive {
			continue
		}
		if onlyVulnerable && !IsVulnerable(s, snap.Structures) {
			continue
		}
		if d := from.DistanceTo(s.Pos); d <= radius && d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// AlliesNear считает живых чемпионов команды в радиусе от точки.
// Второе значение - сколько из них в клатч-режиме.
func AlliesNear(snap *domain.Snapshot, team domain.Team, at domain.Position, radius float64) (allies, clutching int) {
	for i := range snap.Champions {
		c := &snap.Champions[i]
		if c.Team != team || !c.CanAct() {
			continue
		}
		if c.Pos.DistanceTo(at) <= radius {
			allies++
			if c.IsClutching {
				clutching++
			}
		}
	}
	return allies, clutching
}

// ValidateUnitTarget проверяет, что подвижная цель по-прежнему
// существует в снимке, жива и в пределах rangeLimit.
func ValidateUnitTarget(snap *domain.Snapshot, from domain.Position, id types.EntityID, rangeLimit, clock float64) ValidationResult {
	switch id.Kind() {
	case enums.EntityKindChampion:
		c := snap.FindChampion(id)
		if c == nil || c.IsDead {
			return ValidationResult{Reason: "target is gone"}
		}
		d := from.DistanceTo(c.Pos)
		if d > rangeLimit {
			return ValidationResult{Reason: "target out of range"}
		}
		return ValidationResult{Valid: true, Target: Target{ID: id, Kind: enums.EntityKindChampion, Pos: c.Pos, Dist: d}}

	case enums.EntityKindMinion:
		m := snap.FindMinion(id)
		if m == nil || !m.IsActive(clock) {
			return ValidationResult{Reason: "target is gone"}
		}
		d := from.DistanceTo(m.Pos)
		if d > rangeLimit {
			return ValidationResult{Reason: "target out of range"}
		}
		return ValidationResult{Valid: true, Target: Target{ID: id, Kind: enums.EntityKindMinion, Pos: m.Pos, Dist: d}}
	}
	return ValidationResult{Reason: "not a unit"}
}
