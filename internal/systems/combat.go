package systems

import (
	"math"

	"rift-server/internal/core/types"
	"rift-server/internal/domain"
	"rift-server/pkg/utils"
)

// --- Общие множители ---

// TimeScale - множитель урона по минуте матча. Чем дольше матч,
// тем быстрее рушатся строения и тем смертельнее бои у объектов.
// После 30-й минуты растет линейно.
func TimeScale(minute float64) float64 {
	switch {
	case minute >= 30:
		return 2.0 + domain.TimeScaleSlope*(minute-30)
	case minute >= 20:
		return 1.4
	case minute >= 10:
		return 1.15
	}
	return 1.0
}

// PowerMultiplier усиливает урон стороны с перевесом по силе составов.
// При равенстве сил множитель ровно 1 для обеих сторон.
func PowerMultiplier(team domain.Team, o domain.MatchOutcome) float64 {
	favored, ok := o.Favored()
	if !ok || team != favored {
		return 1
	}
	bonus := math.Min(math.Abs(o.PowerDiff)/domain.PowerDiffDivisor, domain.PowerBonusCap)
	return 1 + bonus
}

// LaneSkew - перекос урона на стадии линий по разнице навыка лайнинга.
// Действует только в дуэли одинаковых ролей.
func LaneSkew(atk, def *domain.Champion, minute float64) float64 {
	if minute >= domain.LaningPhaseEnd || atk.Role != def.Role {
		return 1
	}
	skew := 1 + float64(atk.Skills.Lane-def.Skills.Lane)/100
	return math.Max(domain.LaneSkewMin, math.Min(domain.LaneSkewMax, skew))
}

// EscalationMultiplier - нарастающий урон по строениям после 25-й минуты.
func EscalationMultiplier(minute float64) float64 {
	if minute <= domain.StructureEscalationMinute {
		return 1
	}
	return 1 + domain.StructureEscalationRate*(minute-domain.StructureEscalationMinute)
}

// StructureEscalation - эскалация для конкретной стороны. Победитель по
// резолверу получает ее целиком, проигравший - обратную величину: его
// давление на строения к концу матча слабеет.
func StructureEscalation(team domain.Team, o domain.MatchOutcome, minute float64) float64 {
	e := EscalationMultiplier(minute)
	if team != o.SupposedWinner() {
		return 1 / e
	}
	return e
}

// buffMultiplier - бафф с лагеря, стаки драконов и Древний дракон.
func buffMultiplier(c *domain.Champion, snap *domain.Snapshot) float64 {
	m := 1.0
	if snap.Clock < c.BuffUntil {
		m *= domain.BuffDamage
	}
	if c.Team <= domain.TeamRed {
		m *= 1 + domain.DragonStackDamage*float64(snap.Dragon.Stacks[c.Team])
		if snap.Buffs[c.Team].HasElder(snap.Clock) {
			m *= domain.ElderBuffDamage
		}
	}
	return m
}

// baronMultiplier - Барон усиливает давление на миньонов и строения.
func baronMultiplier(c *domain.Champion, snap *domain.Snapshot) float64 {
	if c.Team <= domain.TeamRed && snap.Buffs[c.Team].HasBaron(snap.Clock) {
		return domain.BaronBuffDamage
	}
	return 1
}

// --- Формулы урона ---

// ChampionVsChampion - урон удара чемпиона по чемпиону.
// Время матча сюда не входит: оно ускоряет только давление на карту.
func ChampionVsChampion(atk, def *domain.Champion, snap *domain.Snapshot, o domain.MatchOutcome, rng utils.Rng) float64 {
	dmg := atk.Damage * utils.Jitter(rng, domain.JitterSpread)
	dmg *= LaneSkew(atk, def, snap.Clock)
	dmg *= PowerMultiplier(atk.Team, o)
	dmg *= buffMultiplier(atk, snap)

	if atk.IsClutching {
		dmg *= domain.ClutchDamage
	}
	if utils.Chance(rng, float64(atk.Skills.Mechanics)/domain.CritDivisor) {
		dmg *= domain.CritDamage
	}
	if utils.Chance(rng, float64(def.Skills.Mechanics)/domain.DodgeDivisor) {
		dmg *= domain.DodgeDamage
	}
	return dmg
}

// ChampionVsMinion - урон чемпиона по миньону.
func ChampionVsMinion(atk *domain.Champion, snap *domain.Snapshot, rng utils.Rng) float64 {
	dmg := atk.Damage * utils.Jitter(rng, domain.JitterSpread)
	dmg *= TimeScale(snap.Clock)
	dmg *= buffMultiplier(atk, snap)
	dmg *= baronMultiplier(atk, snap)
	return dmg
}

// ChampionVsStructure - урон чемпиона по строению:
// 0.6 * урон * (1 + лайнинг/200) * время * эскалация стороны * клатч * победитель * сила.
func ChampionVsStructure(atk *domain.Champion, snap *domain.Snapshot, o domain.MatchOutcome, rng utils.Rng) float64 {
	dmg := 0.6 * atk.Damage * (1 + float64(atk.Skills.Lane)/200)
	dmg *= utils.Jitter(rng, domain.JitterSpread)
	dmg *= TimeScale(snap.Clock)
	dmg *= StructureEscalation(atk.Team, o, snap.Clock)
	dmg *= PowerMultiplier(atk.Team, o)
	dmg *= baronMultiplier(atk, snap)

	if atk.IsClutching {
		dmg *= domain.ClutchStructure
	}
	if atk.Team == o.SupposedWinner() {
		dmg *= domain.WinnerStructure
	}
	return dmg
}

// ChampionVsCamp - урон по лесному лагерю.
func ChampionVsCamp(atk *domain.Champion, snap *domain.Snapshot, rng utils.Rng) float64 {
	dmg := atk.Damage * utils.Jitter(rng, domain.JitterSpread)
	dmg *= TimeScale(snap.Clock)
	dmg *= buffMultiplier(atk, snap)
	return dmg
}

// MinionVsUnit - удар миньона по миньону или чемпиону. После стадии
// линий миньоны победителя по резолверу выигрывают столкновения волн.
func MinionVsUnit(m *domain.Minion, clock float64, o domain.MatchOutcome, rng utils.Rng) float64 {
	dmg := m.Damage * utils.Jitter(rng, domain.JitterSpread) * TimeScale(clock)
	if clock >= domain.LaningPhaseEnd && m.Team == o.SupposedWinner() {
		dmg *= domain.WinnerMinions
	}
	return dmg
}

// MinionVsStructure - удар миньона по строению.
func MinionVsStructure(m *domain.Minion, clock float64, o domain.MatchOutcome, rng utils.Rng) float64 {
	return m.Damage * utils.Jitter(rng, domain.JitterSpread) * TimeScale(clock) * StructureEscalation(m.Team, o, clock)
}

// TurretVsMinion - башня сносит заметную долю здоровья обычного миньона.
// Супер-миньон держит во столько же раз больше выстрелов, во сколько
// он крепче.
func TurretVsMinion(m *domain.Minion) float64 {
	hp := m.MaxHP
	if m.Super {
		hp /= domain.SuperMinionHP
	}
	return hp * 0.3
}

// --- Буфер урона по подвижным юнитам ---

// PendingDamage - суммарный урон по цели за тик и кто его нанес.
type PendingDamage struct {
	Total float64
	// Attackers - уникальные атакующие в порядке первого удара.
	Attackers []types.EntityID
}

// DamageBuffer копит урон по чемпионам и миньонам в течение тика.
// Применяется одним проходом в конце тика, поэтому порядок обработки
// юнитов не влияет на то, кто успел ударить.
type DamageBuffer struct {
	order []types.EntityID
	hits  map[types.EntityID]*PendingDamage
}

func NewDamageBuffer() *DamageBuffer {
	return &DamageBuffer{hits: make(map[types.EntityID]*PendingDamage)}
}

// Add записывает удар attacker по target.
func (b *DamageBuffer) Add(target, attacker types.EntityID, amount float64) {
	if target.IsNil() || amount <= 0 || math.IsNaN(amount) {
		return
	}
	p, ok := b.hits[target]
	if !ok {
		p = &PendingDamage{}
		b.hits[target] = p
		b.order = append(b.order, target)
	}
	p.Total += amount
	for _, a := range p.Attackers {
		if a == attacker {
			return
		}
	}
	p.Attackers = append(p.Attackers, attacker)
}

// For возвращает накопленный урон по цели или nil.
func (b *DamageBuffer) For(target types.EntityID) *PendingDamage {
	return b.hits[target]
}

// Len - число целей с уроном.
func (b *DamageBuffer) Len() int {
	return len(b.order)
}

// Each обходит цели в порядке первого попадания.
func (b *DamageBuffer) Each(fn func(target types.EntityID, p *PendingDamage)) {
	for _, id := range b.order {
		fn(id, b.hits[id])
	}
}
