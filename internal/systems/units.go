package systems

import (
	"fmt"
	"math"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
	"rift-server/pkg/logger"
	"rift-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// TickContext - все, что нужно системам в пределах одного тика.
//
// Prev - снимок начала тика, только чтение: по нему выбираются цели
// для чемпионов и миньонов. Next - строящийся снимок: строения и
// лагеря в нем меняются сразу, урон по подвижным юнитам копится в Buf.
type TickContext struct {
	Prev *domain.Snapshot
	Next *domain.Snapshot
	Buf  *DamageBuffer

	Outcome     domain.MatchOutcome
	TickMinutes float64
	Rng         utils.Rng
	Log         *domain.EventLog
}

// StepTurrets - каждая живая башня бьет ближайшую цель в радиусе:
// сначала миньонов, потом чемпионов.
func (t *TickContext) StepTurrets() {
	clock := t.Next.Clock
	for i := range t.Next.Structures {
		s := &t.Next.Structures[i]
		if !s.Alive || !s.Tier.IsTurret() {
			continue
		}

		if m := NearestEnemyMinion(t.Prev, s.Team, s.Pos, domain.TurretRange, clock); m.Found() {
			if target := t.Prev.FindMinion(m.ID); target != nil {
				t.Buf.Add(m.ID, s.ID, TurretVsMinion(target))
			}
			continue
		}
		if c := NearestEnemyChampion(t.Prev, s.Team, s.Pos, domain.TurretRange); c.Found() {
			t.Buf.Add(c.ID, s.ID, domain.TurretDamage(clock))
		}
	}
}

// StepMinions - миньоны бьют ближайших врагов, затем уязвимые строения,
// иначе идут по маршруту линии.
func (t *TickContext) StepMinions() {
	clock := t.Next.Clock
	for i := range t.Next.Minions {
		m := &t.Next.Minions[i]
		if !m.IsActive(clock) {
			continue
		}

		target := NearestEnemyMinion(t.Prev, m.Team, m.Pos, domain.MinionAggro, clock)
		if !target.Found() {
			target = NearestEnemyChampion(t.Prev, m.Team, m.Pos, domain.MinionAggro)
		}
		if target.Found() {
			m.TargetID = target.ID
			if target.Dist <= domain.AttackRange {
				t.Buf.Add(target.ID, m.ID, MinionVsUnit(m, clock, t.Outcome, t.Rng))
			} else {
				m.Pos = m.Pos.StepToward(target.Pos, domain.MinionSpeed, domain.AttackRange*0.8)
			}
			continue
		}

		if s := NearestEnemyStructure(t.Next, m.Team, m.Pos, domain.MinionAggro, true); s != nil {
			m.TargetID = s.ID
			if m.Pos.DistanceTo(s.Pos) <= domain.AttackRange {
				DamageStructure(t.Next, s, MinionVsStructure(m, clock, t.Outcome, t.Rng), m.Team, m.ID, t.Log)
			} else {
				m.Pos = m.Pos.StepToward(s.Pos, domain.MinionSpeed, domain.AttackRange*0.8)
			}
			continue
		}

		m.TargetID = types.NilEntityID
		AdvanceMinion(m, LanePath(t.Next, m.Team, m.Lane))
	}
}

// StepChampions - респавн, лечение на фонтане, клатч, выбор действия,
// шаг и атака. В конце - броски захвата объектов.
func (t *TickContext) StepChampions() {
	for i := range t.Next.Champions {
		c := &t.Next.Champions[i]
		if !c.CanAct() {
			if RespawnChampion(c, t.Next, t.TickMinutes) {
				logger.Log.WithFields(logrus.Fields{
					"component": "behavior_system",
					"champion":  c.Name,
					"minute":    t.Next.Clock,
				}).Debug("Champion respawned.")
			}
			continue
		}

		if c.Pos.DistanceTo(t.Next.Base(c.Team)) <= domain.BaseRadius {
			c.Heal(c.MaxHP * domain.FountainHealRatio)
			c.Stamina += domain.FountainStaminaGen
		}

		c.IsClutching = RollClutch(c, t.Prev, t.Rng)
		d := SelectAction(c, t.Prev, t.Rng)
		c.Action = d.Action
		c.Dest = d.Dest
		c.TargetID = d.TargetID

		stop := 1.0
		switch {
		case d.Action == enums.ActionFlee:
			stop = 0
		case !d.TargetID.IsNil():
			stop = domain.AttackRange * 0.8
		}
		MoveChampion(c, stop)

		if t.engage(c, d) {
			c.Stamina -= domain.StaminaFightCost
		} else {
			c.Stamina += domain.StaminaRegen
		}
		c.Stamina = math.Max(0, math.Min(domain.MaxStamina, c.Stamina))
	}

	ContestObjectives(t.Next, t.Rng, t.Log)
}

// engage - атака выбранной цели, если она в радиусе. Без цели чемпион
// бьет уязвимое вражеское строение рядом. Возвращает true, если был удар.
func (t *TickContext) engage(c *domain.Champion, d Decision) bool {
	next := t.Next
	switch d.TargetID.Kind() {
	case enums.EntityKindChampion:
		v := ValidateUnitTarget(t.Prev, c.Pos, d.TargetID, domain.AttackRange, next.Clock)
		if !v.Valid {
			break
		}
		def := t.Prev.FindChampion(d.TargetID)
		t.Buf.Add(d.TargetID, c.ID, ChampionVsChampion(c, def, next, t.Outcome, t.Rng))
		return true

	case enums.EntityKindMinion:
		v := ValidateUnitTarget(t.Prev, c.Pos, d.TargetID, domain.AttackRange, next.Clock)
		if !v.Valid {
			break
		}
		t.Buf.Add(d.TargetID, c.ID, ChampionVsMinion(c, next, t.Rng))
		return true

	case enums.EntityKindStructure:
		s := next.FindStructure(d.TargetID)
		if !CanDamageStructure(next, s, c.Team) || c.Pos.DistanceTo(s.Pos) > domain.AttackRange {
			break
		}
		DamageStructure(next, s, ChampionVsStructure(c, next, t.Outcome, t.Rng), c.Team, c.ID, t.Log)
		return true

	case enums.EntityKindCamp:
		camp := next.FindCamp(d.TargetID)
		if camp == nil || !camp.Alive || c.Pos.DistanceTo(camp.Pos) > domain.AttackRange {
			break
		}
		if back := DamageCamp(next, camp, c, ChampionVsCamp(c, next, t.Rng), t.Log); back > 0 {
			t.Buf.Add(c.ID, camp.ID, back)
		}
		return true
	}

	if d.Action == enums.ActionFlee {
		return false
	}
	if s := NearestEnemyStructure(next, c.Team, c.Pos, domain.AttackRange, true); CanDamageStructure(next, s, c.Team) {
		DamageStructure(next, s, ChampionVsStructure(c, next, t.Outcome, t.Rng), c.Team, c.ID, t.Log)
		return true
	}
	return false
}

// ApplyDamage применяет накопленный урон к чемпионам и миньонам
// следующего снимка. Убийство засчитывается первому чемпиону,
// ударившему цель в этом тике; остальные чемпионы получают ассисты.
// Погибшие миньоны удаляются из снимка.
func (t *TickContext) ApplyDamage() {
	next := t.Next
	t.Buf.Each(func(target types.EntityID, p *PendingDamage) {
		switch target.Kind() {
		case enums.EntityKindChampion:
			c := next.FindChampion(target)
			if c == nil || c.IsDead {
				return
			}
			if c.TakeDamage(p.Total) {
				t.killChampion(c, p)
			}

		case enums.EntityKindMinion:
			m := next.FindMinion(target)
			if m == nil {
				return
			}
			if m.TakeDamage(p.Total) {
				if killer := firstChampion(next, p.Attackers); killer != nil {
					killer.Contribution += domain.ScoreFarm
				}
			}
		}
	})

	alive := next.Minions[:0]
	for _, m := range next.Minions {
		if m.HP > 0 {
			alive = append(alive, m)
		}
	}
	next.Minions = alive
}

func (t *TickContext) killChampion(victim *domain.Champion, p *PendingDamage) {
	next := t.Next
	victim.IsDead = true
	victim.RespawnTimer = RespawnDuration(next.Clock)
	victim.Deaths++
	victim.Action = enums.ActionDead
	victim.TargetID = types.NilEntityID
	victim.IsClutching = false

	var killer *domain.Champion
	champs := 0
	for _, id := range p.Attackers {
		if id.Kind() != enums.EntityKindChampion {
			continue
		}
		champs++
		a := next.FindChampion(id)
		if a == nil {
			continue
		}
		if killer == nil {
			killer = a
			continue
		}
		a.Assists++
		a.Contribution += domain.ScoreAssist
	}

	ev := domain.Event{
		Minute:   next.Clock,
		Type:     domain.EventKill,
		Team:     victim.Team.Opponent(),
		TargetID: victim.ID,
	}
	if killer != nil {
		killer.Kills++
		killer.Contribution += domain.ScoreKill
		next.Kills[killer.Team]++
		ev.ActorID = killer.ID
		ev.Solo = champs == 1
		ev.Text = fmt.Sprintf("%s убивает %s.", killer.Name, victim.Name)
		if ev.Solo {
			ev.Text = fmt.Sprintf("%s в одиночку убивает %s!", killer.Name, victim.Name)
		}
	} else {
		if len(p.Attackers) > 0 {
			ev.ActorID = p.Attackers[0]
		}
		ev.Text = fmt.Sprintf("%s погибает (казнь).", victim.Name)
	}
	t.Log.Add(ev)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"victim":    victim.Name,
		"killer":    ev.ActorID,
		"solo":      ev.Solo,
		"respawn":   victim.RespawnTimer,
		"minute":    next.Clock,
	}).Debug("Champion killed.")
}

// firstChampion - первый чемпион среди атакующих или nil.
func firstChampion(snap *domain.Snapshot, attackers []types.EntityID) *domain.Champion {
	for _, id := range attackers {
		if id.Kind() == enums.EntityKindChampion {
			return snap.FindChampion(id)
		}
	}
	return nil
}
