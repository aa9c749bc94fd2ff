package systems

import (
	"rift-server/internal/domain"
	"rift-server/pkg/arena"
)

// corner - угол карты, через который идут две прилегающие полосы.
type corner struct {
	pos  domain.Position
	legA func(p domain.Position) bool
	legB func(p domain.Position) bool
}

var corners = []corner{
	{
		// Верхний левый: левый край (top синих) и верхний край (top красных).
		pos:  arena.TopCorner,
		legA: func(p domain.Position) bool { return p.X < domain.CornerZone && p.Y > domain.CornerZone },
		legB: func(p domain.Position) bool { return p.Y < domain.CornerZone && p.X > domain.CornerZone },
	},
	{
		// Нижний правый: нижний край (bot синих) и правый край (bot красных).
		pos: arena.BotCorner,
		legA: func(p domain.Position) bool {
			return p.Y > domain.ArenaSize-domain.CornerZone && p.X < domain.ArenaSize-domain.CornerZone
		},
		legB: func(p domain.Position) bool {
			return p.X > domain.ArenaSize-domain.CornerZone && p.Y < domain.ArenaSize-domain.CornerZone
		},
	},
}

// Route возвращает ближайшую точку маршрута к dest.
// Длинный путь между двумя полосами одного угла идет через угол,
// как ходят по боковой линии; все остальное - напрямую.
func Route(from, dest domain.Position) domain.Position {
	if from.DistanceTo(dest) < domain.LongTravel {
		return dest
	}
	for _, c := range corners {
		if (c.legA(from) && c.legB(dest)) || (c.legB(from) && c.legA(dest)) {
			return c.pos
		}
	}
	return dest
}

// LanePath - маршрут миньонов линии до вражеского нексуса.
// Боковые линии огибают свой угол, центральная идет напрямую.
func LanePath(snap *domain.Snapshot, team domain.Team, lane domain.Lane) []domain.Position {
	enemy := snap.Base(team.Opponent())
	if n := snap.Nexus(team.Opponent()); n != nil {
		enemy = n.Pos
	}

	switch lane {
	case domain.LaneTop:
		return []domain.Position{arena.TopCorner, enemy}
	case domain.LaneBot:
		return []domain.Position{arena.BotCorner, enemy}
	}
	return []domain.Position{enemy}
}

// ChampionSpeed - шаг чемпиона за тик. Макро дает до ±15%,
// усталость (стамина ниже порога) замедляет.
func ChampionSpeed(c *domain.Champion) float64 {
	speed := domain.ChampionBaseSpeed * (0.85 + 0.3*float64(c.Skills.Macro)/100)
	if c.Stamina < domain.LowStamina {
		speed *= domain.LowStaminaSlow
	}
	return speed
}

// MoveChampion делает шаг к c.Dest по маршруту. Останавливается на
// дистанции stop от конечной цели, но не от промежуточной точки.
func MoveChampion(c *domain.Champion, stop float64) {
	next := Route(c.Pos, c.Dest)
	if next != c.Dest {
		stop = 0
	}
	c.Pos = c.Pos.StepToward(next, ChampionSpeed(c), stop).Clamp()
}

// waypointReach - на каком расстоянии точка маршрута считается пройденной.
const waypointReach = 2.0

// AdvanceMinion ведет миньона по маршруту линии на один шаг.
func AdvanceMinion(m *domain.Minion, path []domain.Position) {
	if len(path) == 0 {
		return
	}
	if m.Waypoint >= len(path) {
		m.Waypoint = len(path) - 1
	}
	last := m.Waypoint == len(path)-1
	wp := path[m.Waypoint]

	if !last && m.Pos.DistanceTo(wp) <= waypointReach {
		m.Waypoint++
		wp = path[m.Waypoint]
		last = m.Waypoint == len(path)-1
	}

	stop := 0.0
	if last {
		stop = domain.AttackRange * 0.8
	}
	m.Pos = m.Pos.StepToward(wp, domain.MinionSpeed, stop).Clamp()
}
