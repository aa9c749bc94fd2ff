package domain

import "strings"

// Team - сторона матча.
type Team uint8

const (
	TeamBlue Team = iota
	TeamRed
	// TeamNeutral используется только владельцем лагерей (скаттлы).
	TeamNeutral
)

// Teams - обе играющие стороны в порядке обработки.
var Teams = [2]Team{TeamBlue, TeamRed}

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	case TeamNeutral:
		return "neutral"
	}
	return "unknown"
}

// Opponent возвращает противника. Для нейтралов возвращает самих себя.
func (t Team) Opponent() Team {
	switch t {
	case TeamBlue:
		return TeamRed
	case TeamRed:
		return TeamBlue
	}
	return t
}

// Lane - линия карты. LaneBase - строения базы (нексус и его башни).
type Lane uint8

const (
	LaneTop Lane = iota
	LaneMid
	LaneBot
	LaneBase
)

// Lanes - три игровые линии.
var Lanes = [3]Lane{LaneTop, LaneMid, LaneBot}

func (l Lane) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMid:
		return "mid"
	case LaneBot:
		return "bot"
	case LaneBase:
		return "base"
	}
	return "unknown"
}

// Mirror - линия с точки зрения зеркальной стороны карты.
// Центральная симметрия меняет местами верх и низ.
func (l Lane) Mirror() Lane {
	switch l {
	case LaneTop:
		return LaneBot
	case LaneBot:
		return LaneTop
	}
	return l
}

// Role - позиция игрока в составе.
type Role uint8

const (
	RoleTop Role = iota
	RoleJungle
	RoleMid
	RoleADC
	RoleSupport
)

// Roles - все пять позиций в порядке состава.
var Roles = [5]Role{RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport}

func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleJungle:
		return "jungle"
	case RoleMid:
		return "mid"
	case RoleADC:
		return "adc"
	case RoleSupport:
		return "support"
	}
	return "unknown"
}

// ParseRole конвертирует строку из JSON ростера. ok=false для неизвестной роли.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles {
		if r.String() == s {
			return r, true
		}
	}
	return RoleTop, false
}

// HomeLane - линия, на которой роль стоит в фазе лайнинга.
// Лесник своей линии не имеет и получает LaneBase.
func (r Role) HomeLane() Lane {
	switch r {
	case RoleTop:
		return LaneTop
	case RoleMid:
		return LaneMid
	case RoleADC, RoleSupport:
		return LaneBot
	}
	return LaneBase
}

// StructureTier - ярус строения, от самого расходного к самому ценному.
type StructureTier uint8

const (
	TierOuter StructureTier = iota
	TierInner
	TierInhibTurret
	TierInhibitor
	TierNexusTurret
	TierNexus
)

func (t StructureTier) String() string {
	switch t {
	case TierOuter:
		return "outer"
	case TierInner:
		return "inner"
	case TierInhibTurret:
		return "inhib-turret"
	case TierInhibitor:
		return "inhibitor"
	case TierNexusTurret:
		return "nexus-turret"
	case TierNexus:
		return "nexus"
	}
	return "unknown"
}

// IsTurret - стреляет ли строение. Ингибиторы и нексус не атакуют.
func (t StructureTier) IsTurret() bool {
	return t == TierOuter || t == TierInner || t == TierInhibTurret || t == TierNexusTurret
}

// CampKind - тип лесного лагеря.
type CampKind uint8

const (
	CampBuff CampKind = iota
	CampRegular
	CampScuttle
)

func (k CampKind) String() string {
	switch k {
	case CampBuff:
		return "buff"
	case CampRegular:
		return "camp"
	case CampScuttle:
		return "scuttle"
	}
	return "unknown"
}

// ObjectiveKind - эпический нейтральный объект.
type ObjectiveKind uint8

const (
	ObjectiveDragon ObjectiveKind = iota
	ObjectiveBaron
)

func (k ObjectiveKind) String() string {
	if k == ObjectiveBaron {
		return "baron"
	}
	return "dragon"
}
