package domain

// Геометрия арены
const (
	ArenaSize = 100.0

	// BaseRadius - радиус фонтана: здесь чемпион лечится и восстанавливает стамину.
	BaseRadius = 10.0

	// LongTravel - с какой длины путь начинает огибать угол карты.
	LongTravel = 25.0

	// CornerZone - ширина полосы вдоль края карты, считающейся линией.
	CornerZone = 20.0
)

// Дистанции восприятия и боя
const (
	AttackRange    = 4.0
	FightRange     = 8.0
	MinionAggro    = 6.0
	TurretRange    = 7.0
	SiegeRadius    = 25.0
	ClutchRadius   = 20.0
	CaptureRadius  = 10.0
	ObjectiveRally = 40.0
)

// Скорости (единиц арены за тик)
const (
	ChampionBaseSpeed = 1.8
	MinionSpeed       = 1.2
	LowStamina        = 30.0
	LowStaminaSlow    = 0.7
)

// Стамина и лечение
const (
	MaxStamina         = 100.0
	StaminaFightCost   = 0.5
	StaminaRegen       = 0.2
	FountainStaminaGen = 5.0
	FountainHealRatio  = 0.10
	RecoverUntilRatio  = 0.90
)

// Пороги поведения
const (
	FleeRatio           = 0.25
	FleeRatioContesting = 0.15
	ClutchStatFloor     = 75.0
	ClutchDamage        = 1.3
	ClutchStructure     = 1.5
	GankChance          = 0.03
	GankFromMinute      = 3.0
	GankDuration        = 1.5
	LaningPhaseEnd      = 14.0
)

// Волны миньонов
const (
	FirstWaveMinute = 1.0
	WaveInterval    = 0.5
	WaveSize        = 3
	WaveStagger     = 0.05

	// MaxLaneMinions - сколько обычных миньонов команды может быть на
	// линии. Пока предел достигнут, очередная волна линии не выходит.
	MaxLaneMinions = 18

	// С этой минуты каждая волна стороны, которая по результату
	// резолвера побеждает, ведет супер-миньона.
	SuperMinionMinute = 20.0
	SuperMinionHP     = 4.0
	SuperMinionDamage = 5.0
)

// Лесные лагеря: первое появление и задержки респавна (в минутах)
const (
	CampFirstSpawn    = 1.5
	ScuttleFirstSpawn = 3.5
	BuffRespawn       = 5.0
	CampRespawn       = 2.5
	ScuttleRespawn    = 3.0
	BuffDuration      = 2.0
	BuffDamage        = 1.1
)

// Эпические объекты
const (
	DragonFirstSpawn = 5.0
	DragonCooldown   = 5.0
	BaronFirstSpawn  = 20.0
	BaronCooldown    = 7.0

	DragonAlliesRequired = 2
	BaronAlliesRequired  = 3

	DragonCaptureChance = 0.08
	BaronCaptureChance  = 0.05
	ClutchCaptureBonus  = 0.05

	MaxDragonStacks   = 4
	DragonStackDamage = 0.03
	BaronBuffDuration = 3.0
	BaronBuffDamage   = 1.25
	ElderBuffDuration = 2.5
	ElderBuffDamage   = 1.2
)

// Боевые формулы
const (
	DefaultSkillRating = 70

	JitterSpread = 0.15
	CritDivisor  = 400.0
	CritDamage   = 1.5
	DodgeDivisor = 500.0
	DodgeDamage  = 0.5

	LaneSkewMin = 0.75
	LaneSkewMax = 1.25

	PowerDiffDivisor = 40.0
	PowerBonusCap    = 0.4
	WinnerStructure  = 1.15
	WinnerMinions    = 1.5

	// После 30-й минуты множитель времени продолжает расти.
	TimeScaleSlope = 0.1

	StructureEscalationMinute = 25.0
	StructureEscalationRate   = 0.25

	// SuddenDeathMinute - запасной вариант на случай, если бои не
	// довели матч до конца.
	SuddenDeathMinute = 50.0
	SuddenDeathDrain  = 0.10
)

// Очки вклада (MVP)
const (
	ScoreKill      = 3.0
	ScoreAssist    = 1.0
	ScoreFarm      = 0.1
	ScoreCamp      = 0.5
	ScoreStructure = 2.0
	ScoreObjective = 1.5
)
