package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSPublisher отправляет события в NATS для архивации.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher подключается к NATS по url.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("live-auction"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, ev BidPlaced) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal bid event: %w", err)
	}
	if err := p.conn.Publish(Subject(ev.ItemID), data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

// Close сбрасывает буфер и закрывает соединение.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
