package domain

import (
	"strings"

	"rift-server/internal/core/types"
)

// EventType - Внутренний числовой идентификатор события матча
type EventType uint8

const (
	EventUnknown EventType = iota
	EventKill
	EventStructureDestroyed
	EventCampCleared
	EventDragonSpawned
	EventElderSpawned
	EventBaronSpawned
	EventDragonCaptured
	EventElderCaptured
	EventBaronCaptured
	EventNexusDestroyed
	EventSuddenDeath
)

// Маппинг для конвертации JSON -> Domain
var eventStringToType = map[string]EventType{
	"KILL":                EventKill,
	"STRUCTURE_DESTROYED": EventStructureDestroyed,
	"CAMP_CLEARED":        EventCampCleared,
	"DRAGON_SPAWNED":      EventDragonSpawned,
	"ELDER_SPAWNED":       EventElderSpawned,
	"BARON_SPAWNED":       EventBaronSpawned,
	"DRAGON_CAPTURED":     EventDragonCaptured,
	"ELDER_CAPTURED":      EventElderCaptured,
	"BARON_CAPTURED":      EventBaronCaptured,
	"NEXUS_DESTROYED":     EventNexusDestroyed,
	"SUDDEN_DEATH":        EventSuddenDeath,
}

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventKill:               "KILL",
	EventStructureDestroyed: "STRUCTURE_DESTROYED",
	EventCampCleared:        "CAMP_CLEARED",
	EventDragonSpawned:      "DRAGON_SPAWNED",
	EventElderSpawned:       "ELDER_SPAWNED",
	EventBaronSpawned:       "BARON_SPAWNED",
	EventDragonCaptured:     "DRAGON_CAPTURED",
	EventElderCaptured:      "ELDER_CAPTURED",
	EventBaronCaptured:      "BARON_CAPTURED",
	EventNexusDestroyed:     "NEXUS_DESTROYED",
	EventSuddenDeath:        "SUDDEN_DEATH",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - дискретное событие матча с симуляционным временем.
type Event struct {
	Minute   float64        `json:"minute"`
	Type     EventType      `json:"type"`
	Team     Team           `json:"team"`
	ActorID  types.EntityID `json:"actorId,omitempty"`
	TargetID types.EntityID `json:"targetId,omitempty"`
	Solo     bool           `json:"solo,omitempty"`
	Text     string         `json:"text"`
}

// EventLog - события одного тика в порядке возникновения.
type EventLog struct {
	Events []Event
}

// Add дописывает событие.
func (l *EventLog) Add(e Event) {
	if l == nil {
		return
	}
	l.Events = append(l.Events, e)
}

// Count считает события заданного типа (удобно в тестах и сводке).
func (l *EventLog) Count(t EventType) int {
	n := 0
	for _, e := range l.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
