package systems

import (
	"fmt"

	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
	"rift-server/internal/domain"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// timeEps гасит накопленную ошибку float при сравнении минут.
const timeEps = 1e-9

// reached - наступила ли минута t.
func reached(clock, t float64) bool {
	return clock+timeEps >= t
}

// RespawnDuration - время до возрождения чемпиона, погибшего на минуте minute.
func RespawnDuration(minute float64) float64 {
	switch {
	case minute < 15:
		return 0.5
	case minute < 25:
		return 1.0
	case minute < 35:
		return 1.5
	}
	return 2.0
}

// RespawnCamps возвращает в игру лагеря, чей таймер истек.
func RespawnCamps(snap *domain.Snapshot) int {
	n := 0
	for i := range snap.Camps {
		c := &snap.Camps[i]
		if c.Alive || !reached(snap.Clock, c.RespawnTime) {
			continue
		}
		c.Alive = true
		c.Health = domain.NewHealth(domain.CampMaxHP(c.Kind, snap.Clock))
		n++
	}
	return n
}

// SpawnWaves выпускает волны миньонов, если пришло время.
// Каждая линия каждой команды получает WaveSize миньонов с шагом
// WaveStagger по времени выхода. Линия, где у команды уже MaxLaneMinions
// обычных миньонов, волну пропускает. С SuperMinionMinute стороне
// победителя по резолверу к каждой волне добавляется супер-миньон.
// Возвращает число созданных миньонов.
func SpawnWaves(snap *domain.Snapshot, outcome domain.MatchOutcome) int {
	spawned := 0
	winner := outcome.SupposedWinner()
	for reached(snap.Clock, snap.NextWaveTime) {
		at := snap.NextWaveTime
		for _, team := range domain.Teams {
			for _, lane := range domain.Lanes {
				path := LanePath(snap, team, lane)
				start := snap.Nexus(team)
				origin := snap.Base(team)
				if start != nil {
					origin = start.Pos
				}
				origin = origin.StepToward(path[0], 3, 0)

				if team == winner && reached(at, domain.SuperMinionMinute) {
					spawnMinion(snap, team, lane, origin, at, true)
					spawned++
				}
				if LaneMinions(snap, team, lane) >= domain.MaxLaneMinions {
					continue
				}
				for k := 0; k < domain.WaveSize; k++ {
					spawnMinion(snap, team, lane, origin, at+float64(k)*domain.WaveStagger, false)
					spawned++
				}
			}
		}
		snap.Waves++
		snap.NextWaveTime = at + domain.WaveInterval
	}
	return spawned
}

func spawnMinion(snap *domain.Snapshot, team domain.Team, lane domain.Lane, at domain.Position, spawnAt float64, super bool) {
	hp, dmg := domain.MinionMaxHP(spawnAt), domain.MinionDamage(spawnAt)
	if super {
		hp *= domain.SuperMinionHP
		dmg *= domain.SuperMinionDamage
	}
	snap.Minions = append(snap.Minions, domain.Minion{
		ID:        types.PackEntityID(enums.EntityKindMinion, uint8(team), snap.NextMinionIndex),
		Team:      team,
		Lane:      lane,
		Pos:       at,
		Health:    domain.NewHealth(hp),
		Damage:    dmg,
		SpawnTime: spawnAt,
		Super:     super,
	})
	snap.NextMinionIndex++
}

// LaneMinions - сколько живых обычных миньонов команды числится на линии,
// включая еще не вышедших.
func LaneMinions(snap *domain.Snapshot, team domain.Team, lane domain.Lane) int {
	n := 0
	for i := range snap.Minions {
		m := &snap.Minions[i]
		if m.Team == team && m.Lane == lane && m.HP > 0 && !m.Super {
			n++
		}
	}
	return n
}

// SpawnObjectives оживляет Дракона и Барона по таймерам.
func SpawnObjectives(snap *domain.Snapshot, log *domain.EventLog) {
	for _, obj := range snap.Objectives() {
		if obj.Alive || !reached(snap.Clock, obj.NextSpawnTime) {
			continue
		}
		obj.Alive = true

		ev := domain.Event{Minute: snap.Clock, Team: domain.TeamNeutral}
		switch {
		case obj.Kind == domain.ObjectiveBaron:
			ev.Type = domain.EventBaronSpawned
			ev.Text = "Барон Нашор появился в своем логове."
		case obj.NextIsElder:
			obj.IsElder = true
			ev.Type = domain.EventElderSpawned
			ev.Text = "Появился Древний дракон."
		default:
			obj.IsElder = false
			ev.Type = domain.EventDragonSpawned
			ev.Text = fmt.Sprintf("Дракон появился (%.1f мин).", snap.Clock)
		}
		log.Add(ev)

		logger.Log.WithFields(logrus.Fields{
			"component": "spawn_system",
			"objective": obj.Kind.String(),
			"elder":     obj.IsElder,
			"minute":    snap.Clock,
		}).Debug("Objective spawned.")
	}
}

// RespawnChampion отсчитывает таймеры погибших. Возрожденный чемпион
// появляется на фонтане с полным здоровьем и стаминой.
// Возвращает true, если чемпион возродился в этот тик.
func RespawnChampion(c *domain.Champion, snap *domain.Snapshot, tickMinutes float64) bool {
	if !c.IsDead {
		return false
	}
	c.RespawnTimer -= tickMinutes
	if c.RespawnTimer > timeEps {
		c.Action = enums.ActionDead
		return false
	}

	c.IsDead = false
	c.RespawnTimer = 0
	c.Health.Restore()
	c.Stamina = domain.MaxStamina
	c.Pos = snap.Base(c.Team)
	c.Dest = c.Pos
	c.Action = enums.ActionUnknown
	c.TargetID = types.NilEntityID
	c.IsClutching = false
	return true
}
