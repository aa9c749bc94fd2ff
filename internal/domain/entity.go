package domain

import (
	"rift-server/internal/core/types"
	"rift-server/internal/core/types/enums"
)

// --- СУЩНОСТИ МАТЧА ---

// Structure - башня, ингибитор или нексус. Однажды разрушенное строение
// никогда не восстанавливается.
type Structure struct {
	ID   types.EntityID `json:"id"`
	Team Team           `json:"team"`
	Tier StructureTier  `json:"tier"`
	Lane Lane           `json:"lane"`
	Pos  Position       `json:"pos"`

	Alive bool `json:"alive"`
	Health

	// LastHitTime - минута последнего попадания (для подсветки на клиенте).
	LastHitTime float64 `json:"lastHitTime"`

	// Vulnerable пересчитывается каждый тик из состояния соседей по цепочке.
	Vulnerable bool `json:"vulnerable"`
}

// Champion - управляемый ИИ чемпион игрока из состава.
type Champion struct {
	ID   types.EntityID `json:"id"`
	Name string         `json:"name"`
	Role Role           `json:"role"`
	Team Team           `json:"team"`

	Pos  Position `json:"pos"`
	Dest Position `json:"dest"`

	IsDead bool `json:"isDead"`
	// RespawnTimer - сколько минут осталось до возрождения.
	RespawnTimer float64 `json:"respawnTimer"`

	Health
	Damage  float64 `json:"damage"`
	Skills  Skills  `json:"skills"`
	Stamina float64 `json:"stamina"`

	IsClutching  bool    `json:"isClutching"`
	Contribution float64 `json:"contribution"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`

	Action   enums.ActionState `json:"action"`
	TargetID types.EntityID    `json:"targetId,omitempty"`

	// BuffUntil - до какой минуты действует бафф с лесного лагеря.
	BuffUntil float64 `json:"buffUntil,omitempty"`

	// Намерение ганка лесника: линия и до какой минуты оно в силе.
	GankLane  Lane    `json:"gankLane"`
	GankUntil float64 `json:"gankUntil,omitempty"`
}

// CanAct - живой чемпион участвует в симуляции.
func (c *Champion) CanAct() bool {
	return !c.IsDead
}

// Minion - юнит волны. Неактивен, пока часы не дошли до SpawnTime.
type Minion struct {
	ID   types.EntityID `json:"id"`
	Team Team           `json:"team"`
	Lane Lane           `json:"lane"`
	Pos  Position       `json:"pos"`

	Health
	Damage    float64        `json:"damage"`
	SpawnTime float64        `json:"spawnTime"`
	TargetID  types.EntityID `json:"targetId,omitempty"`

	// Waypoint - индекс текущей точки маршрута линии.
	Waypoint int `json:"waypoint"`

	// Super - усиленный миньон поздней стадии.
	Super bool `json:"super,omitempty"`
}

// IsActive - миньон уже вышел на карту и жив.
func (m *Minion) IsActive(clock float64) bool {
	return clock >= m.SpawnTime && m.HP > 0
}

// JungleCamp - лесной лагерь. Owner=TeamNeutral для речных скаттлов.
type JungleCamp struct {
	ID    types.EntityID `json:"id"`
	Kind  CampKind       `json:"kind"`
	Owner Team           `json:"owner"`
	Pos   Position       `json:"pos"`

	Health
	Alive       bool    `json:"alive"`
	RespawnTime float64 `json:"respawnTime"`
}

// RespawnDelay - через сколько минут лагерь вернется после зачистки.
func (c *JungleCamp) RespawnDelay() float64 {
	switch c.Kind {
	case CampBuff:
		return BuffRespawn
	case CampScuttle:
		return ScuttleRespawn
	}
	return CampRespawn
}

// Objective - таймер Дракона или Барона.
type Objective struct {
	Kind          ObjectiveKind `json:"kind"`
	Pos           Position      `json:"pos"`
	Alive         bool          `json:"alive"`
	NextSpawnTime float64       `json:"nextSpawnTime"`

	// Только для Дракона.
	Stacks      [2]int `json:"stacks"`
	NextIsElder bool   `json:"nextIsElder"`
	IsElder     bool   `json:"isElder"`
}

// Cooldown - задержка до следующего появления после захвата.
func (o *Objective) Cooldown() float64 {
	if o.Kind == ObjectiveBaron {
		return BaronCooldown
	}
	return DragonCooldown
}

// AlliesRequired - сколько живых союзников нужно в радиусе захвата.
func (o *Objective) AlliesRequired() int {
	if o.Kind == ObjectiveBaron {
		return BaronAlliesRequired
	}
	return DragonAlliesRequired
}

// BaseCaptureChance - шанс захвата за тик без бонусов.
func (o *Objective) BaseCaptureChance() float64 {
	if o.Kind == ObjectiveBaron {
		return BaronCaptureChance
	}
	return DragonCaptureChance
}
