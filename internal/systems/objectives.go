package systems

import (
	"fmt"
	"math"

	"rift-server/internal/domain"
	"rift-server/pkg/logger"
	"rift-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// CaptureChance - шанс команды захватить объект в этом тике.
// Ниже требуемого числа союзников в радиусе захвата шанс ровно 0.
func CaptureChance(snap *domain.Snapshot, obj *domain.Objective, team domain.Team) float64 {
	if !obj.Alive {
		return 0
	}
	allies, clutching := AlliesNear(snap, team, obj.Pos, domain.CaptureRadius)
	if allies < obj.AlliesRequired() {
		return 0
	}
	return math.Min(1, obj.BaseCaptureChance()+float64(clutching)*domain.ClutchCaptureBonus)
}

// ContestObjectives бросает захват каждого живого объекта.
// Если претендуют обе команды, первой бросает та, у кого больше
// союзников в радиусе; при равенстве порядок случайный.
func ContestObjectives(snap *domain.Snapshot, rng utils.Rng, log *domain.EventLog) {
	for _, obj := range snap.Objectives() {
		if !obj.Alive || snap.Finished {
			continue
		}

		order := domain.Teams
		blue, _ := AlliesNear(snap, domain.TeamBlue, obj.Pos, domain.CaptureRadius)
		red, _ := AlliesNear(snap, domain.TeamRed, obj.Pos, domain.CaptureRadius)
		if red > blue || (red == blue && rng.Intn(2) == 1) {
			order = [2]domain.Team{domain.TeamRed, domain.TeamBlue}
		}

		for _, team := range order {
			p := CaptureChance(snap, obj, team)
			if p > 0 && utils.Chance(rng, p) {
				Capture(snap, obj, team, log)
				break
			}
		}
	}
}

// Capture отдает объект команде: таймер респавна, бафф и очки вклада.
// Стаки драконов не превышают MaxDragonStacks; после четвертого
// следующие появления - Древний дракон.
func Capture(snap *domain.Snapshot, obj *domain.Objective, team domain.Team, log *domain.EventLog) {
	obj.Alive = false
	obj.NextSpawnTime = snap.Clock + obj.Cooldown()

	for i := range snap.Champions {
		c := &snap.Champions[i]
		if c.Team == team && c.CanAct() && c.Pos.DistanceTo(obj.Pos) <= domain.CaptureRadius {
			c.Contribution += domain.ScoreObjective
		}
	}

	ev := domain.Event{Minute: snap.Clock, Team: team}
	switch {
	case obj.Kind == domain.ObjectiveBaron:
		snap.Buffs[team].BaronUntil = snap.Clock + domain.BaronBuffDuration
		ev.Type = domain.EventBaronCaptured
		ev.Text = fmt.Sprintf("Команда %s убивает Барона Нашора.", team)

	case obj.IsElder:
		snap.Buffs[team].ElderUntil = snap.Clock + domain.ElderBuffDuration
		ev.Type = domain.EventElderCaptured
		ev.Text = fmt.Sprintf("Команда %s забирает Древнего дракона.", team)

	default:
		if obj.Stacks[team] < domain.MaxDragonStacks {
			obj.Stacks[team]++
		}
		if obj.Stacks[team] >= domain.MaxDragonStacks {
			obj.NextIsElder = true
		}
		ev.Type = domain.EventDragonCaptured
		ev.Text = fmt.Sprintf("Команда %s забирает дракона (%d).", team, obj.Stacks[team])
	}
	obj.IsElder = false
	log.Add(ev)

	logger.Log.WithFields(logrus.Fields{
		"component": "objective_system",
		"objective": obj.Kind.String(),
		"team":      team.String(),
		"stacks":    obj.Stacks[team],
		"minute":    snap.Clock,
	}).Info("Objective captured.")
}

// DamageCamp - удар по лесному лагерю. Зачищенный лагерь уходит на
// респавн; атакующий получает очки, а за бафф - усиление.
// Возвращает ответный урон лагеря (0, если лагерь пал или его нет).
func DamageCamp(snap *domain.Snapshot, camp *domain.JungleCamp, c *domain.Champion, amount float64, log *domain.EventLog) float64 {
	if camp == nil || !camp.Alive {
		return 0
	}
	if !camp.TakeDamage(amount) {
		return domain.CampDamage(snap.Clock)
	}

	camp.Alive = false
	camp.RespawnTime = snap.Clock + camp.RespawnDelay()
	c.Contribution += domain.ScoreCamp
	if camp.Kind == domain.CampBuff {
		c.BuffUntil = snap.Clock + domain.BuffDuration
	}

	log.Add(domain.Event{
		Minute:   snap.Clock,
		Type:     domain.EventCampCleared,
		Team:     c.Team,
		ActorID:  c.ID,
		TargetID: camp.ID,
		Text:     fmt.Sprintf("%s зачищает лагерь (%s).", c.Name, camp.Kind),
	})
	return 0
}
