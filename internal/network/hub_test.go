package network

import (
	"testing"

	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

func TestBroadcaster_PublishReachesOnlyThatMatch(t *testing.T) {
	b := NewBroadcaster()
	_, chA := b.Subscribe("a")
	_, chB := b.Subscribe("b")

	b.Publish("a", api.MatchFrame{MatchID: "a", Tick: 7})

	select {
	case f := <-chA:
		assert.Equal(t, 7, f.Tick)
	default:
		t.Fatal("frame was not delivered")
	}
	select {
	case <-chB:
		t.Fatal("frame leaked to another match")
	default:
	}
}

func TestBroadcaster_FullChannelDropsFrames(t *testing.T) {
	b := NewBroadcaster()
	_, ch := b.Subscribe("m")

	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("m", api.MatchFrame{Tick: i})
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestBroadcaster_UnsubscribeAndClose(t *testing.T) {
	b := NewBroadcaster()
	sub1, ch1 := b.Subscribe("m")
	_, ch2 := b.Subscribe("m")
	require.Equal(t, 2, b.SubscriberCount())

	b.Unsubscribe("m", sub1)
	b.Unsubscribe("m", sub1)
	_, open := <-ch1
	assert.False(t, open)
	assert.True(t, b.HasSubscribers("m"))

	b.CloseMatch("m")
	_, open = <-ch2
	assert.False(t, open)
	assert.False(t, b.HasSubscribers("m"))
	assert.Equal(t, 0, b.SubscriberCount())

	// После закрытия публикация - no-op.
	b.Publish("m", api.MatchFrame{})
}

// Зритель, подключившийся после конца матча, не должен висеть
// на открытом канале.
func TestBroadcaster_SubscribeAfterClose(t *testing.T) {
	b := NewBroadcaster()
	b.CloseMatch("m")

	subID, ch := b.Subscribe("m")
	assert.Empty(t, subID)

	_, open := <-ch
	assert.False(t, open)
	assert.False(t, b.HasSubscribers("m"))

	// Отписка с пустым subID безопасна.
	b.Unsubscribe("m", subID)

	// Другие матчи не затронуты.
	_, other := b.Subscribe("n")
	b.Publish("n", api.MatchFrame{Tick: 1})
	f, open := <-other
	require.True(t, open)
	assert.Equal(t, 1, f.Tick)
}
