package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"LiveAuction/internal/auction"
	"LiveAuction/internal/events"
	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrorKind классифицирует отказ в ставке.
type ErrorKind string

const (
	KindInvalidPriceFormat  ErrorKind = "InvalidPriceFormat"
	KindItemNotLive         ErrorKind = "ItemNotLive"
	KindBidTooLow           ErrorKind = "BidTooLow"
	KindAlreadyWinning      ErrorKind = "AlreadyWinning"
	KindBidNotHigherThanOwn ErrorKind = "BidNotHigherThanOwn"
	KindBelowBasePrice      ErrorKind = "BelowBasePrice"
)

// BidResult: итог проверки ставки. Пустой Kind означает, что ставка принята.
type BidResult struct {
	Kind    ErrorKind
	Message string
}

// Accepted сообщает, принята ли ставка.
func (r BidResult) Accepted() bool { return r.Kind == "" }

const (
	msgInvalidPrice   = "Your bid must be a number! What are you playing at? O.o"
	msgNotYetLive     = "This item has not yet gone live. How did you even get here? :/"
	msgNoLongerLive   = "This item is no longer live. Sorry about that. :("
	msgAlreadyWinning = "You're already winning this item - no need to outbid yourself!"
)

// BidService: единственная точка приёма новых ставок.
type BidService struct {
	store    repo.Store
	pub      events.Publisher
	logger   *zap.SugaredLogger
	currency string
	now      func() time.Time
}

func NewBidService(store repo.Store, pub events.Publisher, logger *zap.SugaredLogger, currency string) *BidService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &BidService{store: store, pub: pub, logger: logger, currency: currency, now: time.Now}
}

// WithClock подменяет источник времени (для тестов).
func (s *BidService) WithClock(now func() time.Time) *BidService {
	s.now = now
	return s
}

func (s *BidService) money(d decimal.Decimal) string {
	return s.currency + auction.FormatPrice(d)
}

func reject(kind ErrorKind, msg string) BidResult {
	return BidResult{Kind: kind, Message: msg}
}

// moneyLimit: верхняя граница (не включительно) для колонки decimal(12,2).
var moneyLimit = decimal.New(1, 10)

// fitsMoney: сумма неотрицательна, укладывается в decimal(12,2) и не точнее копейки.
func fitsMoney(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThan(moneyLimit) && p.Equal(p.Truncate(2))
}

// ParsePrice разбирает цену ставки; пробелы по краям допускаются.
// Отрицательные, слишком большие и дробные мельче копейки цены отклоняются.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	p, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !fitsMoney(p) {
		return decimal.Zero, false
	}
	return p, true
}

// AddBid проверяет и, если всё в порядке, сохраняет ставку. Чтение истории, проверка
// и запись выполняются в одной транзакции с блокировкой строки лота.
// error возвращается только для ErrItemNotFound и сбоев хранилища.
func (s *BidService) AddBid(ctx context.Context, itemID uint, rawPrice, name, phoneNumber string) (BidResult, error) {
	price, ok := ParsePrice(rawPrice)
	if !ok {
		s.logger.Warnw("AddBid: invalid price", "item_id", itemID, "price", rawPrice)
		return reject(KindInvalidPriceFormat, msgInvalidPrice), nil
	}

	var (
		res BidResult
		ev  *events.BidPlaced
	)
	err := s.store.Transaction(ctx, func(tx repo.Store) error {
		it, err := tx.Items().GetByIDForUpdate(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("load item %d: %w", itemID, err)
		}

		now := s.now()
		res, err = s.validate(ctx, tx, it, price, name, phoneNumber, now)
		if err != nil || !res.Accepted() {
			return err
		}

		b := &model.Bid{ItemID: it.ID, Name: name, PhoneNumber: phoneNumber, Price: price}
		if err := tx.Bids().Create(ctx, b); err != nil {
			return fmt.Errorf("create bid: %w", err)
		}
		if !it.HasWinningPrice() || price.GreaterThan(it.WinningPrice.Decimal) {
			if err := tx.Items().UpdateWinning(ctx, it.ID, price, name, phoneNumber); err != nil {
				return fmt.Errorf("update winning bid: %w", err)
			}
		}
		placed := events.NewBidPlaced(it.ID, name, price, now)
		ev = &placed
		return nil
	})
	if err != nil {
		return BidResult{}, err
	}

	if !res.Accepted() {
		s.logger.Infow("bid rejected", "item_id", itemID, "kind", res.Kind, "price", price.String())
		return res, nil
	}

	s.logger.Infow("bid accepted", "item_id", itemID, "price", price.String(), "name", name)
	pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.pub.Publish(pubCtx, *ev); err != nil {
		s.logger.Warnw("bid event publish failed", "item_id", itemID, "error", err)
	}
	return res, nil
}

func (s *BidService) validate(ctx context.Context, tx repo.Store, it *model.Item, price decimal.Decimal, name, phoneNumber string, now time.Time) (BidResult, error) {
	switch auction.StatusAt(it, now) {
	case auction.StatusUnopened:
		return reject(KindItemNotLive, msgNotYetLive), nil
	case auction.StatusClosed:
		return reject(KindItemNotLive, msgNoLongerLive), nil
	}

	if !it.HasWinningPrice() {
		if price.LessThan(it.BasePrice) {
			return reject(KindBelowBasePrice,
				fmt.Sprintf("Your bid must be at least the base price (%s).", s.money(it.BasePrice))), nil
		}
		return BidResult{}, nil
	}

	if it.WinnersNum <= 1 {
		if price.LessThanOrEqual(it.WinningPrice.Decimal) {
			return reject(KindBidTooLow,
				fmt.Sprintf("Your bid must be higher than the current winning bid (%s).", s.money(it.WinningPrice.Decimal))), nil
		}
		if it.WinningName == name && it.WinningPhoneNumber == phoneNumber {
			return reject(KindAlreadyWinning, msgAlreadyWinning), nil
		}
		return BidResult{}, nil
	}

	history, err := tx.Bids().ListByItem(ctx, it.ID)
	if err != nil {
		return BidResult{}, fmt.Errorf("load bids for item %d: %w", it.ID, err)
	}
	lowest := auction.LowestWinningPrice(it, history)
	if price.LessThanOrEqual(lowest) {
		return reject(KindBidTooLow,
			fmt.Sprintf("Your bid must be higher than the current lowest winning bid (%s).", s.money(lowest))), nil
	}
	mine, err := tx.Bids().ListByBidder(ctx, it.ID, name, phoneNumber)
	if err != nil {
		return BidResult{}, fmt.Errorf("load own bids for item %d: %w", it.ID, err)
	}
	own := auction.HighestUserPrice(mine, name, phoneNumber)
	if price.LessThanOrEqual(own) {
		return reject(KindBidNotHigherThanOwn,
			fmt.Sprintf("Your bid must be higher than your previous bid (%s).", s.money(own))), nil
	}
	return BidResult{}, nil
}
