package systems

import (
	"math"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
	"rift-server/pkg/logger"
	"rift-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Decision - что чемпион делает в этом тике: состояние, куда идет
// и кого бьет (если цель есть).
type Decision struct {
	Action   enums.ActionState
	Dest     domain.Position
	TargetID types.EntityID
}

// SelectAction решает, что делать чемпиону, по снимку начала тика.
//
// Приоритет: отступление > бой (чемпион, строение в радиусе атаки,
// миньон) > защита базы > Барон > Дракон > лес/ганк (лесник) >
// давление на строения.
//
// c - копия чемпиона в следующем снимке: функция может обновить его
// намерение ганка (GankLane/GankUntil).
func SelectAction(c *domain.Champion, prev *domain.Snapshot, rng utils.Rng) Decision {
	clock := prev.Clock
	base := prev.Base(c.Team)
	contesting := NearLiveObjective(prev, c.Pos, domain.ClutchRadius) != nil
	siegePos, sieged := UnderSiege(prev, c.Team)

	// 1. Отступление. Клатч-режим отключает его.
	if !c.IsClutching {
		threshold := domain.FleeRatio
		if contesting {
			threshold = domain.FleeRatioContesting
		}
		if c.Ratio() < threshold {
			return Decision{Action: enums.ActionFlee, Dest: base}
		}
		// На фонтане долечиваемся, если базу не осаждают.
		atBase := c.Pos.DistanceTo(base) <= domain.BaseRadius
		if atBase && c.Ratio() < domain.RecoverUntilRatio && !sieged {
			return Decision{Action: enums.ActionFlee, Dest: base}
		}
	}

	// 2. Бой. Вражеский чемпион рядом важнее всего; открытое строение
	// в радиусе атаки важнее миньонов, которые его прикрывают.
	if t := NearestEnemyChampion(prev, c.Team, c.Pos, domain.FightRange); t.Found() {
		return Decision{Action: enums.ActionFight, Dest: t.Pos, TargetID: t.ID}
	}
	if s := NearestEnemyStructure(prev, c.Team, c.Pos, domain.AttackRange, true); s != nil {
		return Decision{Action: enums.ActionPush, Dest: s.Pos, TargetID: s.ID}
	}
	if t := NearestEnemyMinion(prev, c.Team, c.Pos, domain.FightRange, clock); t.Found() {
		return Decision{Action: enums.ActionFight, Dest: t.Pos, TargetID: t.ID}
	}

	// 3. Защита базы.
	if sieged && !c.IsClutching && !contesting {
		return Decision{Action: enums.ActionDefend, Dest: siegePos}
	}

	// 4. Эпические объекты: Барон важнее Дракона.
	for _, obj := range prev.Objectives() {
		if !obj.Alive {
			continue
		}
		allies, _ := AlliesNear(prev, c.Team, obj.Pos, domain.ObjectiveRally)
		if allies >= obj.AlliesRequired() && c.Pos.DistanceTo(obj.Pos) <= domain.ObjectiveRally {
			action := enums.ActionDragon
			if obj.Kind == domain.ObjectiveBaron {
				action = enums.ActionBaron
			}
			return Decision{Action: action, Dest: obj.Pos}
		}
	}

	// 5. Лесник: ганк или фарм лагерей.
	if c.Role == domain.RoleJungle {
		if d, ok := junglerDecision(c, prev, rng); ok {
			return d
		}
	}

	// 6. Давление на строения.
	if s := PushTarget(c, prev); s != nil {
		return Decision{Action: enums.ActionPush, Dest: s.Pos, TargetID: s.ID}
	}

	// Ломать нечего (так бывает только в конце матча) - стоим у фонтана.
	return Decision{Action: enums.ActionPush, Dest: base}
}

// junglerDecision - ганк по активному намерению или новому броску,
// иначе ближайший живой лагерь (свой или речной).
func junglerDecision(c *domain.Champion, prev *domain.Snapshot, rng utils.Rng) (Decision, bool) {
	clock := prev.Clock

	if clock >= c.GankUntil && clock >= domain.GankFromMinute && utils.Chance(rng, domain.GankChance) {
		c.GankLane = domain.Lanes[rng.Intn(len(domain.Lanes))]
		c.GankUntil = clock + domain.GankDuration

		logger.Log.WithFields(logrus.Fields{
			"component": "behavior_system",
			"champion":  c.Name,
			"lane":      c.GankLane.String(),
			"minute":    clock,
		}).Debug("Jungler starts a gank.")
	}
	if clock < c.GankUntil {
		return Decision{Action: enums.ActionGank, Dest: LaneFront(prev, c.Team, c.GankLane)}, true
	}

	var best *domain.JungleCamp
	bestDist := math.Inf(1)
	for i := range prev.Camps {
		camp := &prev.Camps[i]
		if !camp.Alive || (camp.Owner != c.Team && camp.Owner != domain.TeamNeutral) {
			continue
		}
		if d := c.Pos.DistanceTo(camp.Pos); d < bestDist {
			best, bestDist = camp, d
		}
	}
	if best == nil {
		return Decision{}, false
	}
	return Decision{Action: enums.ActionFarm, Dest: best.Pos, TargetID: best.ID}, true
}

// PushTarget выбирает строение для давления.
//
// На стадии линий лайнер давит первое уязвимое строение своей линии.
// Позже (или если линия уже зачищена) выбирается уязвимое строение
// с наименьшей долей здоровья; при равенстве - на линии, где у врага
// осталось меньше строений; дальше - ближайшее.
func PushTarget(c *domain.Champion, snap *domain.Snapshot) *domain.Structure {
	enemy := c.Team.Opponent()

	if snap.Clock < domain.LaningPhaseEnd && c.Role != domain.RoleJungle {
		lane := c.Role.HomeLane()
		var best *domain.Structure
		for i := range snap.Structures {
			s := &snap.Structures[i]
			if s.Team != enemy || s.Lane != lane || !IsVulnerable(s, snap.Structures) {
				continue
			}
			if best == nil || s.Tier < best.Tier {
				best = s
			}
		}
		if best != nil {
			return best
		}
	}

	var best *domain.Structure
	bestRatio, bestLeft, bestDist := math.Inf(1), math.MaxInt, math.Inf(1)
	for i := range snap.Structures {
		s := &snap.Structures[i]
		if s.Team != enemy || !IsVulnerable(s, snap.Structures) {
			continue
		}
		ratio := s.Ratio()
		left := RemainingInLane(snap.Structures, enemy, s.Lane)
		dist := c.Pos.DistanceTo(s.Pos)

		switch {
		case ratio < bestRatio-1e-9:
		case math.Abs(ratio-bestRatio) <= 1e-9 && left < bestLeft:
		case math.Abs(ratio-bestRatio) <= 1e-9 && left == bestLeft && dist < bestDist:
		default:
			continue
		}
		best, bestRatio, bestLeft, bestDist = s, ratio, left, dist
	}
	return best
}

// UnderSiege - есть ли вражеский чемпион или миньон в SiegeRadius от
// нексуса команды. Возвращает позицию ближайшего к нексусу врага.
func UnderSiege(snap *domain.Snapshot, team domain.Team) (domain.Position, bool) {
	nexus := snap.Nexus(team)
	if nexus == nil || !nexus.Alive {
		return domain.Position{}, false
	}
	t := NearestEnemyChampion(snap, team, nexus.Pos, domain.SiegeRadius)
	if m := NearestEnemyMinion(snap, team, nexus.Pos, domain.SiegeRadius, snap.Clock); m.Found() && (!t.Found() || m.Dist < t.Dist) {
		t = m
	}
	return t.Pos, t.Found()
}

// NearLiveObjective - живой эпический объект в радиусе или nil.
func NearLiveObjective(snap *domain.Snapshot, at domain.Position, radius float64) *domain.Objective {
	for _, obj := range snap.Objectives() {
		if obj.Alive && at.DistanceTo(obj.Pos) <= radius {
			return obj
		}
	}
	return nil
}

// RollClutch - бросок клатч-режима на тик. Доступен игрокам с рейтингом
// выше порога рядом с живым объектом или при осаде (своей или чужой базы).
func RollClutch(c *domain.Champion, snap *domain.Snapshot, rng utils.Rng) bool {
	rating := c.Skills.ClutchRating()
	if rating <= domain.ClutchStatFloor {
		return false
	}

	critical := NearLiveObjective(snap, c.Pos, domain.ClutchRadius) != nil
	if !critical {
		_, critical = UnderSiege(snap, c.Team)
	}
	if !critical {
		if n := snap.Nexus(c.Team.Opponent()); n != nil && n.Alive && c.Pos.DistanceTo(n.Pos) <= domain.SiegeRadius {
			critical = true
		}
	}
	if !critical {
		return false
	}
	return utils.Chance(rng, (rating-domain.ClutchStatFloor)/100)
}

// LaneFront - середина между первыми живыми строениями сторон на линии.
// Туда лесник идет ганкать.
func LaneFront(snap *domain.Snapshot, team domain.Team, lane domain.Lane) domain.Position {
	own := frontStructure(snap, team, lane)
	enemy := frontStructure(snap, team.Opponent(), lane)
	return domain.Position{X: (own.X + enemy.X) / 2, Y: (own.Y + enemy.Y) / 2}
}

// frontStructure - позиция живого строения линии с наименьшим ярусом,
// либо нексус, если линия снесена.
func frontStructure(snap *domain.Snapshot, team domain.Team, lane domain.Lane) domain.Position {
	var best *domain.Structure
	for i := range snap.Structures {
		s := &snap.Structures[i]
		if s.Team != team || s.Lane != lane || !s.Alive {
			continue
		}
		if best == nil || s.Tier < best.Tier {
			best = s
		}
	}
	if best != nil {
		return best.Pos
	}
	if n := snap.Nexus(team); n != nil {
		return n.Pos
	}
	return snap.Base(team)
}
