package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemInput: параметры нового лота.
type ItemInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	WinnersNum  int
	DtOpen      time.Time
	DtClosed    time.Time
}

// ItemService: администрирование лотов.
type ItemService struct {
	store repo.Store
}

func NewItemService(store repo.Store) *ItemService {
	return &ItemService{store: store}
}

func (in ItemInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case in.WinnersNum < 1:
		return fmt.Errorf("%w: winners_num must be at least 1", ErrInvalidItem)
	case in.BasePrice.IsNegative():
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidItem)
	case !fitsMoney(in.BasePrice):
		return fmt.Errorf("%w: base_price must be below 10000000000 with at most 2 decimals", ErrInvalidItem)
	case in.DtOpen.IsZero() || in.DtClosed.IsZero():
		return fmt.Errorf("%w: dt_open and dt_closed are required", ErrInvalidItem)
	case !in.DtOpen.Before(in.DtClosed):
		return fmt.Errorf("%w: dt_open must be before dt_closed", ErrInvalidItem)
	}
	return nil
}

// Create проверяет и сохраняет лот.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	it := &model.Item{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		BasePrice:   in.BasePrice,
		WinnersNum:  in.WinnersNum,
		DtOpen:      in.DtOpen.UTC(),
		DtClosed:    in.DtClosed.UTC(),
	}
	if err := s.store.Items().Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Bids возвращает полную историю ставок лота (с телефонами).
func (s *ItemService) Bids(ctx context.Context, itemID uint) ([]model.Bid, error) {
	if _, err := s.store.Items().GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.store.Bids().ListByItem(ctx, itemID)
}
