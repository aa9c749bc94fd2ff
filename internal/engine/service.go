package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"rift-server/internal/domain"
	"rift-server/internal/infrastructure/storage"
	"rift-server/internal/network"
	"rift-server/internal/repositories/results"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrMatchNotFound - матча с таким ID нет в реестре.
var ErrMatchNotFound = errors.New("match not found")

// ServiceConfig - зависимости и параметры сервиса матчей.
type ServiceConfig struct {
	Match   Config
	Hub     *network.Broadcaster
	Results results.Repository
	// Archive необязателен: без него архивы не пишутся.
	Archive *storage.ArchiveService
	// SaveTimeout ограничивает сохранение итогов после матча.
	SaveTimeout time.Duration
}

// GameService держит реестр идущих матчей. Каждый матч крутится
// в своей горутине, сервис только связывает его с зрителями и хранилищем.
type GameService struct {
	mu      sync.RWMutex
	matches map[string]*Match

	Hub     *network.Broadcaster
	Results results.Repository
	Archive *storage.ArchiveService

	cfg         Config
	saveTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewService(cfg ServiceConfig) *GameService {
	if cfg.Hub == nil {
		cfg.Hub = network.NewBroadcaster()
	}
	if cfg.Results == nil {
		cfg.Results = results.NewInMemory()
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &GameService{
		matches:     make(map[string]*Match),
		Hub:         cfg.Hub,
		Results:     cfg.Results,
		Archive:     cfg.Archive,
		cfg:         cfg.Match.withDefaults(),
		saveTimeout: cfg.SaveTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// StartMatch проверяет запрос, регистрирует матч и запускает его цикл.
func (s *GameService) StartMatch(req api.StartMatchRequest) (*Match, error) {
	m, err := s.PrepareMatch(req)
	if err != nil {
		return nil, err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := m.Run(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Component("service").WithError(err).WithField("match_id", m.ID).Error("Match loop failed")
		}
		// Отмененный матч не проходит через complete, убираем вручную.
		if errors.Is(s.ctx.Err(), context.Canceled) {
			s.Hub.CloseMatch(m.ID)
			s.forget(m.ID)
		}
	}()
	return m, nil
}

// PrepareMatch создает и регистрирует матч, не запуская цикл.
func (s *GameService) PrepareMatch(req api.StartMatchRequest) (*Match, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	blue, red, outcome, err := FromRequest(req)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	cfg.Seed = req.Seed
	if req.TickMs > 0 {
		cfg.TickPeriod = time.Duration(req.TickMs) * time.Millisecond
	}

	m := NewMatch(blue, red, outcome, cfg)
	m.OnTick(s.publishFrame)
	m.OnComplete(s.finishMatch)

	s.mu.Lock()
	s.matches[m.ID] = m
	s.mu.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"match_id":  m.ID,
		"seed":      m.Seed,
		"blue":      blue.TeamName,
		"red":       red.TeamName,
		"blue_wins": outcome.BlueWins,
	}).Info("Match registered")

	return m, nil
}

// Get возвращает идущий матч.
func (s *GameService) Get(id string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, ErrMatchNotFound)
	}
	return m, nil
}

// List возвращает краткую информацию обо всех идущих матчах.
func (s *GameService) List() []api.MatchInfo {
	s.mu.RLock()
	list := make([]*Match, 0, len(s.matches))
	for _, m := range s.matches {
		list = append(list, m)
	}
	s.mu.RUnlock()

	out := make([]api.MatchInfo, 0, len(list))
	for _, m := range list {
		snap := m.State()
		out = append(out, api.MatchInfo{
			MatchID:    m.ID,
			Blue:       m.Blue.TeamName,
			Red:        m.Red.TeamName,
			Seed:       m.Seed,
			Minute:     snap.Clock,
			Kills:      snap.Kills,
			Finished:   snap.Finished,
			Spectators: s.Hub.MatchSubscriberCount(m.ID),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out
}

// Result возвращает сохраненные итоги матча.
func (s *GameService) Result(ctx context.Context, id string) (*domain.MatchSummary, error) {
	return s.Results.Get(ctx, id)
}

// Shutdown останавливает все матчи и ждет их горутины.
func (s *GameService) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

func (s *GameService) publishFrame(m *Match, snap *domain.Snapshot, events []domain.Event) {
	if !s.Hub.HasSubscribers(m.ID) {
		return
	}
	s.Hub.Publish(m.ID, BuildFrame(m.ID, snap, m.lastLogs(len(events))))
}

func (s *GameService) finishMatch(m *Match) {
	summary := m.Summary()
	l := logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"match_id":  m.ID,
	})

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()
	if err := s.Results.Save(ctx, summary); err != nil {
		l.WithError(err).Error("Failed to save match result")
	}

	if s.Archive != nil {
		if path, err := s.Archive.Save(BuildArchive(m)); err != nil {
			l.WithError(err).Error("Failed to write match archive")
		} else {
			l.WithField("path", path).Info("Match archived")
		}
	}

	s.Hub.CloseMatch(m.ID)
	s.forget(m.ID)

	l.WithFields(logrus.Fields{
		"winner": summary.Winner.String(),
		"minute": summary.Minutes,
		"mvp":    summary.MVP,
	}).Info("Match completed")
}

func (s *GameService) forget(id string) {
	s.mu.Lock()
	delete(s.matches, id)
	s.mu.Unlock()
}

// FromRequest переводит DTO в составы и результат резолвера.
// Если разница сил не задана, она считается по составам.
func FromRequest(req api.StartMatchRequest) (domain.Roster, domain.Roster, domain.MatchOutcome, error) {
	blue, err := rosterFromRequest(req.Blue)
	if err != nil {
		return domain.Roster{}, domain.Roster{}, domain.MatchOutcome{}, fmt.Errorf("blue: %w", err)
	}
	red, err := rosterFromRequest(req.Red)
	if err != nil {
		return domain.Roster{}, domain.Roster{}, domain.MatchOutcome{}, fmt.Errorf("red: %w", err)
	}

	outcome := domain.MatchOutcome{
		BlueWins: req.Outcome.BlueWins,
		Score:    req.Outcome.Score,
	}
	if req.Outcome.PowerDiff != nil {
		outcome.PowerDiff = *req.Outcome.PowerDiff
	} else {
		outcome.PowerDiff = domain.TeamPower(blue) - domain.TeamPower(red)
	}
	return blue, red, outcome, nil
}

func rosterFromRequest(t api.TeamRequest) (domain.Roster, error) {
	r := domain.Roster{
		TeamName: t.Name,
		Players:  make(map[domain.Role]domain.PlayerStats, len(t.Players)),
	}
	for _, p := range t.Players {
		role, ok := domain.ParseRole(p.Role)
		if !ok {
			return domain.Roster{}, fmt.Errorf("unknown role %q", p.Role)
		}
		r.Players[role] = domain.PlayerStats{
			Name: p.Name,
			Skills: domain.Skills{
				Mechanics: p.Mechanics,
				Macro:     p.Macro,
				Lane:      p.Lane,
				Teamfight: p.Teamfight,
			},
		}
	}
	return r, nil
}
