package enums

import "strings"

// ActionState - состояние автомата поведения чемпиона на текущем тике.
//
// Порядок приоритетов при выборе: Flee > Fight > Defend > (Baron, Dragon,
// Farm, Gank, Push). Dead выставляется движком и не выбирается автоматом.
type ActionState uint8

const (
	ActionUnknown ActionState = iota
	ActionFlee
	ActionFight
	ActionDefend
	ActionFarm
	ActionGank
	ActionPush
	ActionBaron
	ActionDragon
	ActionDead
)

var actionStateToString = map[ActionState]string{
	ActionFlee:   "FLEE",
	ActionFight:  "FIGHT",
	ActionDefend: "DEFEND",
	ActionFarm:   "FARM",
	ActionGank:   "GANK",
	ActionPush:   "PUSH",
	ActionBaron:  "BARON",
	ActionDragon: "DRAGON",
	ActionDead:   "DEAD",
}

var actionStringToState = map[string]ActionState{
	"FLEE":   ActionFlee,
	"FIGHT":  ActionFight,
	"DEFEND": ActionDefend,
	"FARM":   ActionFarm,
	"GANK":   ActionGank,
	"PUSH":   ActionPush,
	"BARON":  ActionBaron,
	"DRAGON": ActionDragon,
	"DEAD":   ActionDead,
}

func (a ActionState) String() string {
	if val, ok := actionStateToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseActionState конвертирует строку в ActionState (регистр не важен)
func ParseActionState(s string) ActionState {
	if val, ok := actionStringToState[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// IsObjective - чемпион сейчас идёт на Дракона или Барона.
func (a ActionState) IsObjective() bool {
	return a == ActionBaron || a == ActionDragon
}
