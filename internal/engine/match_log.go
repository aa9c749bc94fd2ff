package engine

import (
	"fmt"
	"time"

	"rift-server/internal/domain"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет событие в ленту матча. Вызывается под m.mu.
func (m *Match) AddLog(ev domain.Event) {
	entry := api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", m.ID, len(m.Logs)),
		Text:      ev.Text,
		Type:      ev.Type.String(),
		Minute:    ev.Minute,
		Timestamp: time.Now().UnixMilli(),
	}
	if ev.Team <= domain.TeamRed {
		entry.Team = ev.Team.String()
	}
	m.Logs = append(m.Logs, entry)

	logger.Log.WithFields(logrus.Fields{
		"match":     m.ID,
		"component": "game_log",
		"log_type":  entry.Type,
		"minute":    fmt.Sprintf("%.1f", ev.Minute),
	}).Info(ev.Text)
}

// lastLogs возвращает копию последних n записей ленты.
func (m *Match) lastLogs(n int) []api.LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n <= 0 {
		return nil
	}
	if n > len(m.Logs) {
		n = len(m.Logs)
	}
	return append([]api.LogEntry(nil), m.Logs[len(m.Logs)-n:]...)
}
