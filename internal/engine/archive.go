package engine

import (
	"rift-server/internal/infrastructure/storage"
	"rift-server/internal/version"
)

// BuildArchive собирает архив завершенного матча.
func BuildArchive(m *Match) *storage.MatchArchive {
	snap := m.State()
	summary := m.Summary()
	return &storage.MatchArchive{
		Seed:      m.Seed,
		Timestamp: summary.FinishedAt.Unix(),
		TickCount: snap.Tick,
		Meta: storage.ArchiveMeta{
			Blue:        m.Blue,
			Red:         m.Red,
			Outcome:     m.Outcome,
			TickMinutes: m.Config.TickMinutes,
			SuddenDeath: m.Config.SuddenDeathMinute,
			Balance:     version.Balance,
			Summary:     summary,
		},
		Events: m.Events(),
	}
}

// Replay прогоняет архив заново с тем же сидом и проверяет,
// что лента событий совпала. Возвращает новый матч и число расхождений.
func Replay(a *storage.MatchArchive) (*Match, int) {
	cfg := NewConfig()
	cfg.Seed = a.Seed
	if a.Meta.TickMinutes > 0 {
		cfg.TickMinutes = a.Meta.TickMinutes
	}
	if a.Meta.SuddenDeath != 0 {
		cfg.SuddenDeathMinute = a.Meta.SuddenDeath
	}

	m := NewMatch(a.Meta.Blue, a.Meta.Red, a.Meta.Outcome, cfg)
	m.Simulate()

	got := m.Events()
	mismatches := 0
	for i := 0; i < len(got) || i < len(a.Events); i++ {
		if i >= len(got) || i >= len(a.Events) {
			mismatches++
			continue
		}
		if got[i].Type != a.Events[i].Type || got[i].Minute != a.Events[i].Minute || got[i].TargetID != a.Events[i].TargetID {
			mismatches++
		}
	}
	return m, mismatches
}
