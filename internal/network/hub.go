package network

import (
	"sync"

	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Размер буфера канала зрителя. Медленный зритель теряет кадры,
// а не тормозит матч.
const subscriberBuffer = 64

// Broadcaster раздает кадры матчей подписанным зрителям.
type Broadcaster struct {
	mu sync.RWMutex
	// matchID -> subID -> канал зрителя
	matches map[string]map[string]chan api.MatchFrame
	// Завершенные матчи: новые подписки на них сразу закрыты.
	closed map[string]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		matches: make(map[string]map[string]chan api.MatchFrame),
		closed:  make(map[string]struct{}),
	}
}

// Subscribe создает канал зрителя для матча. Если матч уже закрыт
// (CloseMatch), канал возвращается закрытым, а subID пустой.
func (b *Broadcaster) Subscribe(matchID string) (string, <-chan api.MatchFrame) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, done := b.closed[matchID]; done {
		ch := make(chan api.MatchFrame)
		close(ch)
		return "", ch
	}

	subs, ok := b.matches[matchID]
	if !ok {
		subs = make(map[string]chan api.MatchFrame)
		b.matches[matchID] = subs
	}

	subID := uuid.NewString()
	ch := make(chan api.MatchFrame, subscriberBuffer)
	subs[subID] = ch
	return subID, ch
}

// Unsubscribe закрывает канал зрителя. Повторный вызов безопасен.
func (b *Broadcaster) Unsubscribe(matchID, subID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.matches[matchID]
	if !ok {
		return
	}
	if ch, ok := subs[subID]; ok {
		close(ch)
		delete(subs, subID)
	}
	if len(subs) == 0 {
		delete(b.matches, matchID)
	}
}

// Publish рассылает кадр всем зрителям матча без блокировки.
func (b *Broadcaster) Publish(matchID string, frame api.MatchFrame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for subID, ch := range b.matches[matchID] {
		select {
		case ch <- frame:
		default:
			logger.Log.WithFields(logrus.Fields{
				"component": "hub",
				"match_id":  matchID,
				"sub_id":    subID,
				"tick":      frame.Tick,
			}).Debug("Subscriber channel full, frame dropped")
		}
	}
}

// CloseMatch закрывает каналы всех зрителей матча и запрещает
// новые подписки на него.
func (b *Broadcaster) CloseMatch(matchID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.matches[matchID] {
		close(ch)
	}
	delete(b.matches, matchID)
	b.closed[matchID] = struct{}{}
}

// HasSubscribers проверяет, смотрит ли кто-нибудь матч.
func (b *Broadcaster) HasSubscribers(matchID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.matches[matchID]) > 0
}

// SubscriberCount возвращает число зрителей по всем матчам.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, subs := range b.matches {
		n += len(subs)
	}
	return n
}

// MatchSubscriberCount возвращает число зрителей матча.
func (b *Broadcaster) MatchSubscriberCount(matchID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.matches[matchID])
}
