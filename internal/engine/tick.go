package engine

import (
	"rift-server/internal/domain"
	"rift-server/internal/systems"
	"rift-server/pkg/utils"
)

// Env - параметры матча, постоянные на всех тиках.
type Env struct {
	Outcome     domain.MatchOutcome
	TickMinutes float64

	// SuddenDeathMinute <= 0 выключает добивание базы проигравшего.
	SuddenDeathMinute float64
}

// Advance строит снимок следующего тика. prev не меняется.
//
// Порядок фаз:
//
//	a) респавн лесных лагерей
//	b) волны миньонов
//	c) появление Дракона и Барона, пересчет уязвимости строений
//	d) башни и миньоны
//	e) чемпионы (действие, движение, атака), захват объектов, урон по юнитам
//	f) добивание базы в затянувшемся матче и проверка победы
//
// После окончания матча Advance возвращает копию без изменений.
func Advance(prev *domain.Snapshot, env Env, rng utils.Rng) (*domain.Snapshot, []domain.Event) {
	next := prev.Clone()
	if prev.Finished {
		return next, nil
	}

	log := &domain.EventLog{}
	next.Tick = prev.Tick + 1
	next.Clock = float64(next.Tick) * env.TickMinutes

	// a)
	systems.RespawnCamps(next)

	// b)
	systems.SpawnWaves(next, env.Outcome)

	// c)
	systems.SpawnObjectives(next, log)
	systems.RefreshVulnerability(next.Structures)

	tick := &systems.TickContext{
		Prev:        prev,
		Next:        next,
		Buf:         systems.NewDamageBuffer(),
		Outcome:     env.Outcome,
		TickMinutes: env.TickMinutes,
		Rng:         rng,
		Log:         log,
	}

	// d)
	tick.StepTurrets()
	tick.StepMinions()

	// e)
	tick.StepChampions()
	tick.ApplyDamage()

	// f)
	systems.SuddenDeath(next, env.Outcome, env.SuddenDeathMinute, log)
	systems.RefreshVulnerability(next.Structures)
	systems.CheckWin(next)

	return next, log.Events
}
