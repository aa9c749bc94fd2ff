package api

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений для зрителей.
const (
	FrameTypeUpdate   = "UPDATE"
	FrameTypeFinished = "FINISHED"
)

// MatchFrame это корневой объект, который сервер отправляет зрителю.
// Полный "снимок" матча на конец тика: клиент рисует карту целиком,
// никакого состояния между кадрами ему хранить не нужно.
type MatchFrame struct {
	// Type тип сообщения: "UPDATE" каждый тик, "FINISHED" один раз в конце.
	Type string `json:"type"`

	MatchID string `json:"matchId"`

	// Tick номер тика, Minute - игровое время в минутах.
	Tick   int     `json:"tick"`
	Minute float64 `json:"minute"`

	Champions  []ChampionView  `json:"champions"`
	Minions    []UnitView      `json:"minions"`
	Structures []StructureView `json:"structures"`
	Camps      []CampView      `json:"camps"`
	Objectives []ObjectiveView `json:"objectives"`

	// Счет: [синие, красные].
	Kills   [2]int `json:"kills"`
	Dragons [2]int `json:"dragons"`

	Finished bool   `json:"finished"`
	Winner   string `json:"winner,omitempty"`

	// Logs новые события, случившиеся за этот тик.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PosView - точка на арене 0..100.
type PosView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChampionView это DTO чемпиона.
type ChampionView struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Role string  `json:"role"`
	Team string  `json:"team"`
	Pos  PosView `json:"pos"`

	HP      float64 `json:"hp"`
	MaxHP   float64 `json:"maxHp"`
	Stamina float64 `json:"stamina"`

	// Action текущее состояние поведения: FLEE, FIGHT, PUSH и т.д.
	Action string `json:"action"`

	IsDead      bool    `json:"isDead"`
	RespawnIn   float64 `json:"respawnIn,omitempty"`
	IsClutching bool    `json:"isClutching,omitempty"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

// UnitView это DTO миньона.
type UnitView struct {
	ID    string  `json:"id"`
	Team  string  `json:"team"`
	Lane  string  `json:"lane"`
	Pos   PosView `json:"pos"`
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"maxHp"`
	Super bool    `json:"super,omitempty"`
}

// StructureView это DTO строения.
type StructureView struct {
	ID         string  `json:"id"`
	Team       string  `json:"team"`
	Tier       string  `json:"tier"`
	Lane       string  `json:"lane"`
	Pos        PosView `json:"pos"`
	HP         float64 `json:"hp"`
	MaxHP      float64 `json:"maxHp"`
	Alive      bool    `json:"alive"`
	Vulnerable bool    `json:"vulnerable"`
	// LastHit минута последнего попадания (для подсветки).
	LastHit float64 `json:"lastHit,omitempty"`
}

// CampView это DTO лесного лагеря.
type CampView struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Owner string  `json:"owner"`
	Pos   PosView `json:"pos"`
	Alive bool    `json:"alive"`
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"maxHp"`
}

// ObjectiveView это DTO Дракона или Барона.
type ObjectiveView struct {
	Kind      string  `json:"kind"`
	Pos       PosView `json:"pos"`
	Alive     bool    `json:"alive"`
	IsElder   bool    `json:"isElder,omitempty"`
	NextSpawn float64 `json:"nextSpawn"`
}

// LogEntry представляет одну запись в ленте событий матча.
type LogEntry struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Type   string  `json:"type"`   // KILL, STRUCTURE_DESTROYED, ...
	Minute float64 `json:"minute"` // Игровое время события
	Team   string  `json:"team,omitempty"`
	// Timestamp Unix milliseconds (реальное время рассылки).
	Timestamp int64 `json:"timestamp"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// StartMatchRequest запускает визуализацию матча.
type StartMatchRequest struct {
	Blue TeamRequest `json:"blue"`
	Red  TeamRequest `json:"red"`

	// Outcome заранее посчитанный результат матча.
	Outcome OutcomeRequest `json:"outcome"`

	// Seed зерно генератора; 0 - случайное.
	Seed int64 `json:"seed,omitempty"`

	// TickMs реальная длительность тика; 0 - по умолчанию сервера.
	TickMs int `json:"tickMs,omitempty"`
}

// TeamRequest состав команды.
type TeamRequest struct {
	Name    string          `json:"name"`
	Players []PlayerRequest `json:"players"`
}

// PlayerRequest игрок и его навыки (0..99).
type PlayerRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"` // top, jungle, mid, adc, support
	Mechanics int    `json:"mechanics"`
	Macro     int    `json:"macro"`
	Lane      int    `json:"lane"`
	Teamfight int    `json:"teamfight"`
}

// OutcomeRequest результат от внешнего резолвера.
type OutcomeRequest struct {
	BlueWins bool   `json:"blueWins"`
	Score    [2]int `json:"score"`
	// PowerDiff разница сил; если не задана, считается по составам.
	PowerDiff *float64 `json:"powerDiff,omitempty"`
}

// StartMatchResponse ответ на запуск матча.
type StartMatchResponse struct {
	MatchID string `json:"matchId"`
	Seed    int64  `json:"seed"`
}

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MatchInfo краткая информация об идущем матче (для /debug/matches).
type MatchInfo struct {
	MatchID    string  `json:"matchId"`
	Blue       string  `json:"blue"`
	Red        string  `json:"red"`
	Seed       int64   `json:"seed"`
	Minute     float64 `json:"minute"`
	Kills      [2]int  `json:"kills"`
	Finished   bool    `json:"finished"`
	Spectators int     `json:"spectators"`
}
