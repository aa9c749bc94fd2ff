package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"rift-server/internal/domain"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"
	"rift-server/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TickFunc вызывается после каждого тика с новым снимком и его событиями.
type TickFunc func(m *Match, snap *domain.Snapshot, events []domain.Event)

// CompleteFunc вызывается ровно один раз, когда матч завершен.
type CompleteFunc func(m *Match)

// Match - один визуализируемый матч: снимок, генератор и лента событий.
type Match struct {
	ID      string
	Blue    domain.Roster
	Red     domain.Roster
	Outcome domain.MatchOutcome
	Config  Config

	Rng  *rand.Rand // Локальный генератор
	Seed int64      // Сид, с которого начался матч

	mu     sync.RWMutex
	state  *domain.Snapshot
	events []domain.Event
	Logs   []api.LogEntry // Лента для зрителей

	startedAt  time.Time
	finishedAt time.Time

	onTick       TickFunc
	onComplete   CompleteFunc
	completeOnce sync.Once
	done         chan struct{}
}

// NewMatch готовит матч к запуску. Результат (outcome) задан заранее.
func NewMatch(blue, red domain.Roster, outcome domain.MatchOutcome, cfg Config) *Match {
	cfg = cfg.withDefaults()
	rng, seed := utils.NewRng(cfg.Seed)
	cfg.Seed = seed

	return &Match{
		ID:        uuid.NewString(),
		Blue:      blue,
		Red:       red,
		Outcome:   outcome,
		Config:    cfg,
		Rng:       rng,
		Seed:      seed,
		state:     buildInitialSnapshot(blue, red),
		Logs:      []api.LogEntry{},
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// OnTick регистрирует обработчик кадров. Вызывать до Run.
func (m *Match) OnTick(fn TickFunc) { m.onTick = fn }

// OnComplete регистрирует обработчик завершения. Вызывать до Run.
func (m *Match) OnComplete(fn CompleteFunc) { m.onComplete = fn }

// Done закрывается после завершения матча.
func (m *Match) Done() <-chan struct{} { return m.done }

// State возвращает копию текущего снимка.
func (m *Match) State() *domain.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Events возвращает копию всех событий матча.
func (m *Match) Events() []domain.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Event(nil), m.events...)
}

// Step продвигает матч на один тик.
func (m *Match) Step() (*domain.Snapshot, []domain.Event) {
	m.mu.Lock()
	next, events := Advance(m.state, m.env(), m.Rng)

	if !next.Finished && next.Clock >= m.Config.MaxMinutes {
		events = append(events, m.forceFinish(next))
	}

	m.state = next
	m.events = append(m.events, events...)
	for _, ev := range events {
		m.AddLog(ev)
	}
	m.mu.Unlock()

	if m.onTick != nil {
		m.onTick(m, next, events)
	}
	return next, events
}

func (m *Match) env() Env {
	return Env{
		Outcome:           m.Outcome,
		TickMinutes:       m.Config.TickMinutes,
		SuddenDeathMinute: m.Config.SuddenDeathMinute,
	}
}

// forceFinish - аварийное завершение по лимиту времени.
func (m *Match) forceFinish(snap *domain.Snapshot) domain.Event {
	winner := m.Outcome.SupposedWinner()
	snap.Finished = true
	snap.Winner = winner
	snap.FinishedAt = snap.Clock

	logger.Log.WithFields(logrus.Fields{
		"component": "match",
		"match_id":  m.ID,
		"minute":    snap.Clock,
	}).Warn("Match hit the time limit, forcing the result.")

	return domain.Event{
		Minute: snap.Clock,
		Type:   domain.EventNexusDestroyed,
		Team:   winner,
		Text:   "Матч остановлен по лимиту времени. Победа команды " + winner.String() + ".",
	}
}

// Run крутит матч в реальном времени, тик за тиком, пока не упадет
// нексус. После финального кадра ждет FinishDelay и завершает матч.
// Отмена ctx останавливает цикл без вызова обработчика завершения.
func (m *Match) Run(ctx context.Context) error {
	matchLogger := logger.Component("match").WithField("match_id", m.ID)
	matchLogger.WithField("seed", m.Seed).Info("Match loop started")

	ticker := time.NewTicker(m.Config.TickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			matchLogger.Warn("Match loop cancelled")
			return ctx.Err()

		case <-ticker.C:
			snap, _ := m.Step()
			if !snap.Finished {
				continue
			}

			matchLogger.WithFields(logrus.Fields{
				"winner": snap.Winner.String(),
				"minute": snap.FinishedAt,
			}).Info("Match finished")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.Config.FinishDelay):
			}
			m.complete()
			return nil
		}
	}
}

// Simulate прогоняет матч до конца без пауз (для CLI и тестов).
func (m *Match) Simulate() domain.MatchSummary {
	for {
		snap, _ := m.Step()
		if snap.Finished {
			break
		}
	}
	m.complete()
	return m.Summary()
}

func (m *Match) complete() {
	m.completeOnce.Do(func() {
		m.mu.Lock()
		m.finishedAt = time.Now()
		m.mu.Unlock()

		close(m.done)
		if m.onComplete != nil {
			m.onComplete(m)
		}
	})
}

// Summary собирает итоги матча: победитель, счет, драконы и MVP.
func (m *Match) Summary() domain.MatchSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.state
	sum := domain.MatchSummary{
		MatchID:    m.ID,
		BlueTeam:   m.Blue.TeamName,
		RedTeam:    m.Red.TeamName,
		Winner:     snap.Winner,
		Minutes:    snap.FinishedAt,
		Kills:      snap.Kills,
		Seed:       m.Seed,
		FinishedAt: m.finishedAt,
		Duration:   m.finishedAt.Sub(m.startedAt),
	}

	for _, ev := range m.events {
		if (ev.Type == domain.EventDragonCaptured || ev.Type == domain.EventElderCaptured) && ev.Team <= domain.TeamRed {
			sum.Dragons[ev.Team]++
		}
	}

	if mvp := MVP(snap); mvp != nil {
		sum.MVP = mvp.Name
		sum.MVPScore = mvp.Contribution
	}
	return sum
}

// MVP - чемпион с наибольшим вкладом. При равенстве - первый по составу.
func MVP(snap *domain.Snapshot) *domain.Champion {
	var best *domain.Champion
	for i := range snap.Champions {
		c := &snap.Champions[i]
		if best == nil || c.Contribution > best.Contribution {
			best = c
		}
	}
	return best
}
