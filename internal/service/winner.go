package service

import (
	"context"
	"fmt"
	"time"

	"LiveAuction/internal/auction"
	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"
)

// WinnerMessage: победитель закрытого лота и готовый текст сообщения для него.
type WinnerMessage struct {
	ItemID      uint
	ItemName    string
	Rank        int
	Name        string
	PhoneNumber string
	Price       string
	Text        string
}

// WinnerService готовит сообщения победителям закрытых лотов.
type WinnerService struct {
	store    repo.Store
	currency string
	now      func() time.Time
}

func NewWinnerService(store repo.Store, currency string) *WinnerService {
	return &WinnerService{store: store, currency: currency, now: time.Now}
}

// WithClock подменяет источник времени (для тестов).
func (s *WinnerService) WithClock(now func() time.Time) *WinnerService {
	s.now = now
	return s
}

// Messages возвращает победителей всех закрытых лотов со ставками.
func (s *WinnerService) Messages(ctx context.Context, setting *model.AuctionSetting) ([]WinnerMessage, error) {
	items, err := s.store.Items().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	now := s.now()
	closed := make([]uint, 0, len(items))
	for i := range items {
		if auction.StatusAt(&items[i], now) == auction.StatusClosed {
			closed = append(closed, items[i].ID)
		}
	}
	bids, err := s.store.Bids().ListByItems(ctx, closed)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}

	title := "the auction"
	if setting != nil && setting.Title != "" {
		title = setting.Title
	}

	out := []WinnerMessage{}
	for i := range items {
		it := &items[i]
		history, ok := bids[it.ID]
		if !ok || len(history) == 0 {
			continue
		}
		for rank, w := range auction.Winners(it, history) {
			price := s.currency + auction.FormatPrice(w.Price)
			out = append(out, WinnerMessage{
				ItemID:      it.ID,
				ItemName:    it.Name,
				Rank:        rank + 1,
				Name:        w.Name,
				PhoneNumber: w.PhoneNumber,
				Price:       price,
				Text: fmt.Sprintf("Hi %s, congratulations! Your bid of %s won %q at %s. We'll be in touch about payment and collection.",
					w.Name, price, it.Name, title),
			})
		}
	}
	return out, nil
}
