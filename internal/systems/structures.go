package systems

import (
	"fmt"

	"rift-server/internal/core/types"
	"rift-server/internal/domain"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// IsVulnerable решает, можно ли сейчас бить строение.
//
// Цепочка: outer -> inner -> inhib-turret -> inhibitor внутри линии;
// башни нексуса открываются, когда пал хотя бы один ингибитор;
// нексус открывается, когда пали все башни нексуса.
// Строения не восстанавливаются, поэтому достаточно проверить
// ближайшего предшественника.
func IsVulnerable(s *domain.Structure, all []domain.Structure) bool {
	if !s.Alive {
		return false
	}

	switch s.Tier {
	case domain.TierOuter:
		return true

	case domain.TierInner, domain.TierInhibTurret, domain.TierInhibitor:
		prev := s.Tier - 1
		for i := range all {
			o := &all[i]
			if o.Team == s.Team && o.Lane == s.Lane && o.Tier == prev {
				return !o.Alive
			}
		}
		// В шаблоне нет предшественника - цепочка пуста.
		return true

	case domain.TierNexusTurret:
		for i := range all {
			o := &all[i]
			if o.Team == s.Team && o.Tier == domain.TierInhibitor && !o.Alive {
				return true
			}
		}
		return false

	case domain.TierNexus:
		for i := range all {
			o := &all[i]
			if o.Team == s.Team && o.Tier == domain.TierNexusTurret && o.Alive {
				return false
			}
		}
		return true
	}

	return false
}

// RefreshVulnerability пересчитывает флаг Vulnerable у всех строений.
// Вызывается в начале тика; урон все равно перепроверяет цепочку в момент удара.
func RefreshVulnerability(structures []domain.Structure) {
	for i := range structures {
		structures[i].Vulnerable = IsVulnerable(&structures[i], structures)
	}
}

// CanDamageStructure - можно ли атакующей стороне сейчас бить строение:
// матч идет, строение чужое, живое и открыто цепочкой.
func CanDamageStructure(snap *domain.Snapshot, s *domain.Structure, attacker domain.Team) bool {
	return s != nil && !snap.Finished && s.Alive && s.Team != attacker && IsVulnerable(s, snap.Structures)
}

// DamageStructure наносит урон строению из общего буфера тика.
// Возвращает true, если строение разрушено этим ударом.
// Урон по неуязвимому, мертвому или своему строению игнорируется,
// как и любой урон после окончания матча.
func DamageStructure(snap *domain.Snapshot, s *domain.Structure, amount float64, attacker domain.Team, attackerID types.EntityID, log *domain.EventLog) bool {
	if s == nil || snap.Finished || !s.Alive || s.Team == attacker {
		return false
	}

	if !IsVulnerable(s, snap.Structures) {
		logger.Log.WithFields(logrus.Fields{
			"component":    "structure_system",
			"structure_id": s.ID,
			"tier":         s.Tier.String(),
		}).Debug("Hit ignored: structure is not vulnerable.")
		return false
	}

	s.LastHitTime = snap.Clock
	if !s.TakeDamage(amount) {
		return false
	}

	s.Alive = false
	s.Vulnerable = false

	log.Add(domain.Event{
		Minute:   snap.Clock,
		Type:     domain.EventStructureDestroyed,
		Team:     attacker,
		ActorID:  attackerID,
		TargetID: s.ID,
		Text:     fmt.Sprintf("Команда %s разрушает %s (%s) команды %s.", attacker, s.Tier, s.Lane, s.Team),
	})

	// Очки вклада получает только чемпион.
	if c := snap.FindChampion(attackerID); c != nil {
		c.Contribution += domain.ScoreStructure
	}

	if s.Tier == domain.TierNexus {
		snap.Finished = true
		snap.Winner = attacker
		snap.FinishedAt = snap.Clock
		log.Add(domain.Event{
			Minute:   snap.Clock,
			Type:     domain.EventNexusDestroyed,
			Team:     attacker,
			ActorID:  attackerID,
			TargetID: s.ID,
			Text:     fmt.Sprintf("Нексус команды %s пал. Победа команды %s!", s.Team, attacker),
		})

		logger.Log.WithFields(logrus.Fields{
			"component": "structure_system",
			"winner":    attacker.String(),
			"minute":    snap.Clock,
		}).Info("Nexus destroyed.")
	}

	return true
}

// CheckWin возвращает победителя, если нексус уже уничтожен.
func CheckWin(snap *domain.Snapshot) (domain.Team, bool) {
	if snap.Finished {
		return snap.Winner, true
	}
	for _, t := range domain.Teams {
		if n := snap.Nexus(t); n != nil && !n.Alive {
			snap.Finished = true
			snap.Winner = t.Opponent()
			snap.FinishedAt = snap.Clock
			return snap.Winner, true
		}
	}
	return domain.TeamBlue, false
}

// SuddenDeath - запасной финал затянувшегося матча: с минуты from
// каждое уязвимое строение стороны, которая по результату резолвера
// проигрывает, теряет долю прочности каждый тик. Обычно матч к этому
// времени уже решен боями. from <= 0 выключает добивание.
func SuddenDeath(snap *domain.Snapshot, outcome domain.MatchOutcome, from float64, log *domain.EventLog) {
	if from <= 0 || snap.Finished || !reached(snap.Clock, from) {
		return
	}

	winner := outcome.SupposedWinner()
	loser := winner.Opponent()

	if !snap.SuddenDeath {
		snap.SuddenDeath = true
		log.Add(domain.Event{
			Minute: snap.Clock,
			Type:   domain.EventSuddenDeath,
			Team:   winner,
			Text:   "Матч затянулся: базы начинают рушиться.",
		})
	}

	for i := range snap.Structures {
		s := &snap.Structures[i]
		if s.Team != loser || !s.Alive {
			continue
		}
		DamageStructure(snap, s, s.MaxHP*domain.SuddenDeathDrain, winner, types.NilEntityID, log)
		if snap.Finished {
			return
		}
	}
}

// RemainingInLane - сколько живых строений осталось у команды на линии.
func RemainingInLane(structures []domain.Structure, team domain.Team, lane domain.Lane) int {
	n := 0
	for i := range structures {
		s := &structures[i]
		if s.Team == team && s.Lane == lane && s.Alive {
			n++
		}
	}
	return n
}
