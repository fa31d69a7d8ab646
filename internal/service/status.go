package service

import (
	"context"
	"fmt"
	"time"

	"LiveAuction/internal/auction"
	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"
)

// dtClosedLayout: формат времени закрытия в ответе опроса.
const dtClosedLayout = "02-01-2006 15:04"

// WinnerView: один из победителей для показа (без телефона).
type WinnerView struct {
	Name  string
	Price string
}

// ItemView: лот в списке для страницы ставок.
type ItemView struct {
	ID                uint
	Name              string
	Description       string
	Status            auction.Status
	BasePrice         string
	WinnersNum        int
	WinningPrice      string
	WinningName       string
	DtOpen            time.Time
	DtClosed          time.Time
	AdditionalWinners []WinnerView
}

// BiddingView: лоты, разложенные по статусам, и текущая настройка аукциона.
type BiddingView struct {
	Setting       *model.AuctionSetting
	ItemsUpcoming []ItemView
	ItemsLive     []ItemView
	ItemsClosed   []ItemView
}

// ItemUpdate: снимок лота для опроса. DtClosed/Remaining заполняются только для live.
type ItemUpdate struct {
	Status            auction.Status
	WinningPrice      string
	WinningName       string
	AdditionalWinners []WinnerView
	DtClosed          string
	Remaining         string
	RemainingSeconds  int64
}

// StatusService собирает представления только для чтения, без транзакций.
type StatusService struct {
	store repo.Store
	now   func() time.Time
}

func NewStatusService(store repo.Store) *StatusService {
	return &StatusService{store: store, now: time.Now}
}

// WithClock подменяет источник времени (для тестов).
func (s *StatusService) WithClock(now func() time.Time) *StatusService {
	s.now = now
	return s
}

func (s *StatusService) loadItems(ctx context.Context) ([]model.Item, map[uint][]model.Bid, error) {
	items, err := s.store.Items().ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list items: %w", err)
	}
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if it.WinnersNum > 1 {
			ids = append(ids, it.ID)
		}
	}
	bids, err := s.store.Bids().ListByItems(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list bids: %w", err)
	}
	return items, bids, nil
}

func winningPrice(it *model.Item) string {
	if !it.HasWinningPrice() {
		return ""
	}
	return auction.FormatPrice(it.WinningPrice.Decimal)
}

func additionalWinners(it *model.Item, bids []model.Bid) []WinnerView {
	extra := auction.AdditionalWinners(it, bids)
	out := make([]WinnerView, 0, len(extra))
	for _, w := range extra {
		out = append(out, WinnerView{Name: w.Name, Price: auction.FormatPrice(w.Price)})
	}
	return out
}

// BiddingView раскладывает лоты (по dt_closed DESC) на upcoming/live/closed.
// Настройка передаётся явно: её выбирает вызывающий.
func (s *StatusService) BiddingView(ctx context.Context, setting *model.AuctionSetting) (*BiddingView, error) {
	items, bids, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	view := &BiddingView{
		Setting:       setting,
		ItemsUpcoming: []ItemView{},
		ItemsLive:     []ItemView{},
		ItemsClosed:   []ItemView{},
	}
	for i := range items {
		it := &items[i]
		iv := ItemView{
			ID:                it.ID,
			Name:              it.Name,
			Description:       it.Description,
			Status:            auction.StatusAt(it, now),
			BasePrice:         auction.FormatPrice(it.BasePrice),
			WinnersNum:        it.WinnersNum,
			WinningPrice:      winningPrice(it),
			WinningName:       it.WinningName,
			DtOpen:            it.DtOpen,
			DtClosed:          it.DtClosed,
			AdditionalWinners: additionalWinners(it, bids[it.ID]),
		}
		switch iv.Status {
		case auction.StatusLive:
			view.ItemsLive = append(view.ItemsLive, iv)
		case auction.StatusClosed:
			view.ItemsClosed = append(view.ItemsClosed, iv)
		default:
			view.ItemsUpcoming = append(view.ItemsUpcoming, iv)
		}
	}
	return view, nil
}

// Updates возвращает снимки всех лотов, кроме ещё не открытых.
func (s *StatusService) Updates(ctx context.Context) (map[uint]ItemUpdate, error) {
	items, bids, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	res := make(map[uint]ItemUpdate, len(items))
	for i := range items {
		it := &items[i]
		st := auction.StatusAt(it, now)
		if st == auction.StatusUnopened {
			continue
		}
		u := ItemUpdate{
			Status:            st,
			WinningPrice:      winningPrice(it),
			WinningName:       it.WinningName,
			AdditionalWinners: additionalWinners(it, bids[it.ID]),
		}
		if left, ok := auction.TimeUntilClose(it, now); ok {
			u.DtClosed = it.DtClosed.Format(dtClosedLayout)
			u.Remaining = auction.FormatRemaining(now, it.DtClosed)
			u.RemainingSeconds = int64(left / time.Second)
		}
		res[it.ID] = u
	}
	return res, nil
}
