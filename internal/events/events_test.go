package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	got []BidPlaced
	err error
}

func (r *recordingPublisher) Publish(_ context.Context, ev BidPlaced) error {
	r.got = append(r.got, ev)
	return r.err
}

func TestNewBidPlaced(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	ev := NewBidPlaced(7, "Alice", decimal.NewFromInt(25), at)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, uint(7), ev.ItemID)
	assert.Equal(t, time.UTC, ev.Timestamp.Location())
	assert.True(t, ev.Timestamp.Equal(at))
}

func TestChannelAndSubject(t *testing.T) {
	assert.Equal(t, "bid_events:42", Channel(42))
	assert.Equal(t, "bid_events.42", Subject(42))
}

func TestMulti_FansOutAndJoinsErrors(t *testing.T) {
	ok := &recordingPublisher{}
	bad := &recordingPublisher{err: errors.New("down")}
	m := Multi{ok, bad, Nop{}}

	err := m.Publish(context.Background(), NewBidPlaced(1, "A", decimal.NewFromInt(1), time.Now()))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "down")
	assert.Len(t, ok.got, 1)
	assert.Len(t, bad.got, 1)

	assert.NoError(t, Multi{}.Publish(context.Background(), BidPlaced{}))
}

func TestRedisPublisher_PublishesJSONToItemChannel(t *testing.T) {
	mr := miniredis.RunT(t)

	pub, err := NewRedisPublisher(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer pub.Close()

	// подписчик на канал лота
	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer sub.Close()
	ctx := context.Background()
	ps := sub.Subscribe(ctx, Channel(3))
	defer ps.Close()
	_, err = ps.Receive(ctx) // подтверждение подписки
	require.NoError(t, err)

	ev := NewBidPlaced(3, "Bob", decimal.RequireFromString("25.50"), time.Now())
	require.NoError(t, pub.Publish(ctx, ev))

	select {
	case msg := <-ps.Channel():
		var got BidPlaced
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, ev.EventID, got.EventID)
		assert.Equal(t, "Bob", got.Name)
		assert.True(t, got.Price.Equal(ev.Price))
		assert.NotContains(t, msg.Payload, "phone")
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestNewRedisPublisher_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisPublisher(addr, "", 0)
	assert.Error(t, err)
}

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	// порт 1 никто не слушает: подключение должно упасть сразу
	_, err := NewNATSPublisher("nats://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NATS")
}
