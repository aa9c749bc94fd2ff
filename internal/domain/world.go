package domain

import "rift-server/internal/core/types"

// TeamBuffs - командные усиления от эпических объектов.
type TeamBuffs struct {
	BaronUntil float64 `json:"baronUntil,omitempty"`
	ElderUntil float64 `json:"elderUntil,omitempty"`
}

// Snapshot - полное состояние матча на конец тика.
//
// Тик читает предыдущий снимок и строит следующий. Чемпионы и миньоны
// следующего тика считаются по начальному снимку; строения и лагеря
// в следующем снимке - общий изменяемый буфер, в который атакующие
// пишут урон по очереди обработки.
type Snapshot struct {
	// Tick - номер тика; Clock = Tick * длительность тика в минутах.
	Tick  int     `json:"tick"`
	Clock float64 `json:"clock"`

	Structures []Structure  `json:"structures"`
	Champions  []Champion   `json:"champions"`
	Minions    []Minion     `json:"minions"`
	Camps      []JungleCamp `json:"camps"`

	Dragon Objective `json:"dragon"`
	Baron  Objective `json:"baron"`

	// Bases - фонтаны команд: точка респавна и отступления.
	Bases [2]Position `json:"bases"`

	NextWaveTime    float64 `json:"nextWaveTime"`
	Waves           int     `json:"waves"`
	NextMinionIndex uint32  `json:"-"`

	Buffs [2]TeamBuffs `json:"buffs"`
	Kills [2]int       `json:"kills"`

	SuddenDeath bool `json:"suddenDeath,omitempty"`

	Finished   bool    `json:"finished"`
	Winner     Team    `json:"winner"`
	FinishedAt float64 `json:"finishedAt,omitempty"`
}

// Clone делает глубокую копию снимка (слайсы не разделяются).
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Structures = append([]Structure(nil), s.Structures...)
	c.Champions = append([]Champion(nil), s.Champions...)
	c.Minions = append([]Minion(nil), s.Minions...)
	c.Camps = append([]JungleCamp(nil), s.Camps...)
	return &c
}

// Base возвращает позицию фонтана команды.
func (s *Snapshot) Base(t Team) Position {
	if t > TeamRed {
		return Position{X: ArenaSize / 2, Y: ArenaSize / 2}
	}
	return s.Bases[t]
}

// Nexus возвращает нексус команды или nil.
func (s *Snapshot) Nexus(t Team) *Structure {
	for i := range s.Structures {
		if s.Structures[i].Team == t && s.Structures[i].Tier == TierNexus {
			return &s.Structures[i]
		}
	}
	return nil
}

// Objectives - оба эпических объекта, Барон первым (он приоритетнее).
func (s *Snapshot) Objectives() []*Objective {
	return []*Objective{&s.Baron, &s.Dragon}
}

// --- Поиск по ID: отсутствующая сущность - не ошибка, а nil ---

func (s *Snapshot) FindChampion(id types.EntityID) *Champion {
	for i := range s.Champions {
		if s.Champions[i].ID == id {
			return &s.Champions[i]
		}
	}
	return nil
}

func (s *Snapshot) FindMinion(id types.EntityID) *Minion {
	for i := range s.Minions {
		if s.Minions[i].ID == id {
			return &s.Minions[i]
		}
	}
	return nil
}

func (s *Snapshot) FindStructure(id types.EntityID) *Structure {
	for i := range s.Structures {
		if s.Structures[i].ID == id {
			return &s.Structures[i]
		}
	}
	return nil
}

func (s *Snapshot) FindCamp(id types.EntityID) *JungleCamp {
	for i := range s.Camps {
		if s.Camps[i].ID == id {
			return &s.Camps[i]
		}
	}
	return nil
}

// TeamChampions возвращает указатели на чемпионов одной стороны.
func (s *Snapshot) TeamChampions(t Team) []*Champion {
	res := make([]*Champion, 0, len(Roles))
	for i := range s.Champions {
		if s.Champions[i].Team == t {
			res = append(res, &s.Champions[i])
		}
	}
	return res
}

// HasBaron и HasElder - действует ли командный бафф на минуте clock.
func (b TeamBuffs) HasBaron(clock float64) bool { return clock < b.BaronUntil }
func (b TeamBuffs) HasElder(clock float64) bool { return clock < b.ElderUntil }
