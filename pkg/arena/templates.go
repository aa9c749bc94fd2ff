package arena

import "rift-server/internal/domain"

// StructureTemplate - позиция строения синей стороны.
// Красная сторона строится зеркалом (см. Mirror).
type StructureTemplate struct {
	Tier domain.StructureTier
	Lane domain.Lane
	Pos  domain.Position
}

// CampTemplate - лагерь синей стороны (или нейтральный скаттл).
type CampTemplate struct {
	Kind    domain.CampKind
	Neutral bool
	Pos     domain.Position
}

// --- ГЕОМЕТРИЯ ---

// Фонтаны. Красный - зеркало синего.
var BlueBase = domain.Position{X: 4, Y: 96}

// Углы карты: общие для обеих команд точки, через которые идут боковые линии.
var (
	TopCorner = domain.Position{X: 8, Y: 8}
	BotCorner = domain.Position{X: 92, Y: 92}
)

// Позиции эпических объектов в реке.
var (
	DragonPit = domain.Position{X: 70, Y: 74}
	BaronPit  = domain.Position{X: 30, Y: 26}
)

// --- СТРОЕНИЯ СИНЕЙ СТОРОНЫ ---

// blueStructures: верхняя линия идет вдоль левого края, нижняя вдоль
// нижнего, центральная по диагонали к (50,50).
var blueStructures = []StructureTemplate{
	// Top
	{Tier: domain.TierOuter, Lane: domain.LaneTop, Pos: domain.Position{X: 8, Y: 30}},
	{Tier: domain.TierInner, Lane: domain.LaneTop, Pos: domain.Position{X: 8, Y: 52}},
	{Tier: domain.TierInhibTurret, Lane: domain.LaneTop, Pos: domain.Position{X: 7, Y: 72}},
	{Tier: domain.TierInhibitor, Lane: domain.LaneTop, Pos: domain.Position{X: 7, Y: 79}},

	// Mid
	{Tier: domain.TierOuter, Lane: domain.LaneMid, Pos: domain.Position{X: 42, Y: 58}},
	{Tier: domain.TierInner, Lane: domain.LaneMid, Pos: domain.Position{X: 33, Y: 67}},
	{Tier: domain.TierInhibTurret, Lane: domain.LaneMid, Pos: domain.Position{X: 24, Y: 76}},
	{Tier: domain.TierInhibitor, Lane: domain.LaneMid, Pos: domain.Position{X: 19, Y: 81}},

	// Bot
	{Tier: domain.TierOuter, Lane: domain.LaneBot, Pos: domain.Position{X: 70, Y: 92}},
	{Tier: domain.TierInner, Lane: domain.LaneBot, Pos: domain.Position{X: 48, Y: 92}},
	{Tier: domain.TierInhibTurret, Lane: domain.LaneBot, Pos: domain.Position{X: 28, Y: 93}},
	{Tier: domain.TierInhibitor, Lane: domain.LaneBot, Pos: domain.Position{X: 21, Y: 93}},

	// Base
	{Tier: domain.TierNexusTurret, Lane: domain.LaneBase, Pos: domain.Position{X: 11, Y: 86}},
	{Tier: domain.TierNexusTurret, Lane: domain.LaneBase, Pos: domain.Position{X: 14, Y: 89}},
	{Tier: domain.TierNexus, Lane: domain.LaneBase, Pos: domain.Position{X: 8, Y: 92}},
}

// --- ЛЕС СИНЕЙ СТОРОНЫ + РЕКА ---

var blueCamps = []CampTemplate{
	{Kind: domain.CampBuff, Pos: domain.Position{X: 24, Y: 55}},
	{Kind: domain.CampBuff, Pos: domain.Position{X: 52, Y: 78}},
	{Kind: domain.CampRegular, Pos: domain.Position{X: 20, Y: 64}},
	{Kind: domain.CampRegular, Pos: domain.Position{X: 38, Y: 74}},
	{Kind: domain.CampRegular, Pos: domain.Position{X: 60, Y: 84}},
}

// Скаттлы нейтральны и не зеркалятся: по одному в каждой половине реки.
var riverCamps = []CampTemplate{
	{Kind: domain.CampScuttle, Neutral: true, Pos: domain.Position{X: 38, Y: 34}},
	{Kind: domain.CampScuttle, Neutral: true, Pos: domain.Position{X: 62, Y: 66}},
}

// StructureTemplates возвращает шаблоны строений для команды.
// Для красных линии меняются местами: центральная симметрия переводит
// левый край карты в правый, то есть top синих в bot красных.
func StructureTemplates(team domain.Team) []StructureTemplate {
	res := make([]StructureTemplate, 0, len(blueStructures))
	for _, t := range blueStructures {
		if team == domain.TeamRed {
			t = StructureTemplate{Tier: t.Tier, Lane: t.Lane.Mirror(), Pos: t.Pos.Mirror()}
		}
		res = append(res, t)
	}
	return res
}

// CampTemplates возвращает лагеря команды (без скаттлов).
func CampTemplates(team domain.Team) []CampTemplate {
	res := make([]CampTemplate, 0, len(blueCamps))
	for _, c := range blueCamps {
		if team == domain.TeamRed {
			c.Pos = c.Pos.Mirror()
		}
		res = append(res, c)
	}
	return res
}

// RiverCamps возвращает нейтральные скаттлы.
func RiverCamps() []CampTemplate {
	return append([]CampTemplate(nil), riverCamps...)
}

// Base возвращает фонтан команды.
func Base(team domain.Team) domain.Position {
	if team == domain.TeamRed {
		return BlueBase.Mirror()
	}
	return BlueBase
}
