// Package events публикует принятые ставки во внешние каналы (best effort).
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidPlaced: событие о принятой ставке. Телефон участника наружу не уходит.
type BidPlaced struct {
	EventID   string          `json:"event_id"`
	ItemID    uint            `json:"item_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewBidPlaced заполняет EventID и Timestamp.
func NewBidPlaced(itemID uint, name string, price decimal.Decimal, at time.Time) BidPlaced {
	return BidPlaced{
		EventID:   uuid.NewString(),
		ItemID:    itemID,
		Name:      name,
		Price:     price,
		Timestamp: at.UTC(),
	}
}

// Publisher отправляет событие. Ошибка публикации не должна влиять на результат ставки.
type Publisher interface {
	Publish(ctx context.Context, ev BidPlaced) error
}

// Nop ничего не публикует.
type Nop struct{}

func (Nop) Publish(context.Context, BidPlaced) error { return nil }

// Multi рассылает событие всем издателям и объединяет ошибки.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev BidPlaced) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Channel returns the per-item channel name, e.g. "bid_events:42".
func Channel(itemID uint) string { return fmt.Sprintf("bid_events:%d", itemID) }

// Subject returns the per-item NATS subject, e.g. "bid_events.42".
func Subject(itemID uint) string { return fmt.Sprintf("bid_events.%d", itemID) }
