package enums

import "strings"

// EntityKind - категория сущности на карте.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindChampion
	EntityKindMinion
	EntityKindStructure
	EntityKindCamp
	EntityKindObjective
)

var entityKindToString = map[EntityKind]string{
	EntityKindChampion:  "CHAMPION",
	EntityKindMinion:    "MINION",
	EntityKindStructure: "STRUCTURE",
	EntityKindCamp:      "CAMP",
	EntityKindObjective: "OBJECTIVE",
}

var entityKindStringToKind = map[string]EntityKind{
	"CHAMPION":  EntityKindChampion,
	"MINION":    EntityKindMinion,
	"STRUCTURE": EntityKindStructure,
	"CAMP":      EntityKindCamp,
	"OBJECTIVE": EntityKindObjective,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToKind[upper]; ok {
		return val
	}
	return EntityKindUnknown
}
