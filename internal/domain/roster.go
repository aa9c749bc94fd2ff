package domain

import (
	"math"
	"time"
)

// PlayerStats - снимок игрока из состава на момент матча.
type PlayerStats struct {
	Name   string `json:"name"`
	Skills Skills `json:"skills"`
}

// Roster - состав команды: роль -> игрок. Пустой слот допустим.
type Roster struct {
	TeamName string               `json:"teamName"`
	Players  map[Role]PlayerStats `json:"players"`
}

// Player возвращает игрока на роли или стандартного заменяющего
// с рейтингом DefaultSkillRating. Симуляция всегда идет 5 на 5.
func (r Roster) Player(role Role) PlayerStats {
	if p, ok := r.Players[role]; ok {
		return p
	}
	return PlayerStats{
		Name:   r.TeamName + " " + role.String() + " (sub)",
		Skills: DefaultSkills(),
	}
}

// TeamPower - средний рейтинг состава. Для пустого состава
// возвращает нейтральный DefaultSkillRating вместо NaN.
func TeamPower(r Roster) float64 {
	if len(r.Players) == 0 {
		return DefaultSkillRating
	}
	total := 0.0
	for _, p := range r.Players {
		total += p.Skills.Average()
	}
	avg := total / float64(len(r.Players))
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return DefaultSkillRating
	}
	return avg
}

// MatchOutcome - заранее вычисленный внешним резолвером результат.
// Симуляция не решает, кто победит: она лишь смещает бой в сторону
// этого результата.
type MatchOutcome struct {
	BlueWins bool   `json:"blueWins"`
	Score    [2]int `json:"score"`
	// PowerDiff = сила синих - сила красных.
	PowerDiff float64 `json:"powerDiff"`
}

// SupposedWinner - сторона, которая должна победить по резолверу.
func (o MatchOutcome) SupposedWinner() Team {
	if o.BlueWins {
		return TeamBlue
	}
	return TeamRed
}

// Favored - сторона с перевесом по силе. ok=false при равенстве.
func (o MatchOutcome) Favored() (Team, bool) {
	switch {
	case o.PowerDiff > 0:
		return TeamBlue, true
	case o.PowerDiff < 0:
		return TeamRed, true
	}
	return TeamBlue, false
}

// MatchSummary - агрегаты, которые переживают матч.
type MatchSummary struct {
	MatchID    string        `json:"matchId"`
	BlueTeam   string        `json:"blueTeam"`
	RedTeam    string        `json:"redTeam"`
	Winner     Team          `json:"winner"`
	Minutes    float64       `json:"minutes"`
	Kills      [2]int        `json:"kills"`
	Dragons    [2]int        `json:"dragons"`
	MVP        string        `json:"mvp"`
	MVPScore   float64       `json:"mvpScore"`
	Seed       int64         `json:"seed"`
	FinishedAt time.Time     `json:"finishedAt"`
	Duration   time.Duration `json:"duration"`
}
