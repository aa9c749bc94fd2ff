package engine

import (
	"rift-server/internal/domain"
	"rift-server/pkg/api"
)

// BuildFrame создает кадр для зрителей из снимка матча.
// Туман войны не нужен: зритель видит всю карту.
func BuildFrame(matchID string, snap *domain.Snapshot, logs []api.LogEntry) api.MatchFrame {
	frame := api.MatchFrame{
		Type:       api.FrameTypeUpdate,
		MatchID:    matchID,
		Tick:       snap.Tick,
		Minute:     snap.Clock,
		Champions:  make([]api.ChampionView, 0, len(snap.Champions)),
		Minions:    make([]api.UnitView, 0, len(snap.Minions)),
		Structures: make([]api.StructureView, 0, len(snap.Structures)),
		Camps:      make([]api.CampView, 0, len(snap.Camps)),
		Kills:      snap.Kills,
		Dragons:    snap.Dragon.Stacks,
		Finished:   snap.Finished,
		Logs:       logs,
	}
	if snap.Finished {
		frame.Type = api.FrameTypeFinished
		frame.Winner = snap.Winner.String()
	}

	// 1. Чемпионы
	for i := range snap.Champions {
		c := &snap.Champions[i]
		frame.Champions = append(frame.Champions, api.ChampionView{
			ID:          c.ID.String(),
			Name:        c.Name,
			Role:        c.Role.String(),
			Team:        c.Team.String(),
			Pos:         posView(c.Pos),
			HP:          c.HP,
			MaxHP:       c.MaxHP,
			Stamina:     c.Stamina,
			Action:      c.Action.String(),
			IsDead:      c.IsDead,
			RespawnIn:   c.RespawnTimer,
			IsClutching: c.IsClutching,
			Kills:       c.Kills,
			Deaths:      c.Deaths,
			Assists:     c.Assists,
		})
	}

	// 2. Миньоны: только вышедшие на карту
	for i := range snap.Minions {
		m := &snap.Minions[i]
		if !m.IsActive(snap.Clock) {
			continue
		}
		frame.Minions = append(frame.Minions, api.UnitView{
			ID:    m.ID.String(),
			Team:  m.Team.String(),
			Lane:  m.Lane.String(),
			Pos:   posView(m.Pos),
			HP:    m.HP,
			MaxHP: m.MaxHP,
			Super: m.Super,
		})
	}

	// 3. Строения (разрушенные тоже: клиент рисует руины)
	for i := range snap.Structures {
		s := &snap.Structures[i]
		frame.Structures = append(frame.Structures, api.StructureView{
			ID:         s.ID.String(),
			Team:       s.Team.String(),
			Tier:       s.Tier.String(),
			Lane:       s.Lane.String(),
			Pos:        posView(s.Pos),
			HP:         s.HP,
			MaxHP:      s.MaxHP,
			Alive:      s.Alive,
			Vulnerable: s.Vulnerable,
			LastHit:    s.LastHitTime,
		})
	}

	// 4. Лагеря
	for i := range snap.Camps {
		c := &snap.Camps[i]
		frame.Camps = append(frame.Camps, api.CampView{
			ID:    c.ID.String(),
			Kind:  c.Kind.String(),
			Owner: c.Owner.String(),
			Pos:   posView(c.Pos),
			Alive: c.Alive,
			HP:    c.HP,
			MaxHP: c.MaxHP,
		})
	}

	// 5. Эпические объекты
	for _, obj := range snap.Objectives() {
		frame.Objectives = append(frame.Objectives, api.ObjectiveView{
			Kind:      obj.Kind.String(),
			Pos:       posView(obj.Pos),
			Alive:     obj.Alive,
			IsElder:   obj.IsElder,
			NextSpawn: obj.NextSpawnTime,
		})
	}

	return frame
}

func posView(p domain.Position) api.PosView {
	return api.PosView{X: p.X, Y: p.Y}
}
