// Package auction derives the public state of an item from its configuration,
// its bid history and the current time. Nothing here touches storage.
package auction

import (
	"math/big"
	"sort"
	"strings"
	"time"

	"LiveAuction/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Status is the derived lifecycle stage of an item.
type Status string

const (
	StatusUnopened Status = "unopened"
	StatusLive     Status = "live"
	StatusClosed   Status = "closed"
)

// StatusAt reports the item status at now. The live window is [DtOpen, DtClosed).
func StatusAt(it *model.Item, now time.Time) Status {
	switch {
	case now.Before(it.DtOpen):
		return StatusUnopened
	case now.Before(it.DtClosed):
		return StatusLive
	default:
		return StatusClosed
	}
}

// TimeUntilClose returns the remaining live time. ok is false unless the item is live.
func TimeUntilClose(it *model.Item, now time.Time) (d time.Duration, ok bool) {
	if StatusAt(it, now) != StatusLive {
		return 0, false
	}
	return it.DtClosed.Sub(now), true
}

// Standing is one distinct bidder's best bid on an item.
type Standing struct {
	Name        string
	PhoneNumber string
	Price       decimal.Decimal
	BidID       uint // bid that set Price; earlier wins ties
}

type bidderKey struct{ name, phone string }

// RankBidders collapses the history to one standing per (name, phone) pair and
// orders them by price descending, then by the submission order of that best bid.
func RankBidders(bids []model.Bid) []Standing {
	best := make(map[bidderKey]*Standing, len(bids))
	for i := range bids {
		b := &bids[i]
		k := bidderKey{b.Name, b.PhoneNumber}
		cur, ok := best[k]
		switch {
		case !ok:
			best[k] = &Standing{Name: b.Name, PhoneNumber: b.PhoneNumber, Price: b.Price, BidID: b.ID}
		case b.Price.GreaterThan(cur.Price):
			cur.Price, cur.BidID = b.Price, b.ID
		case b.Price.Equal(cur.Price) && b.ID < cur.BidID:
			cur.BidID = b.ID
		}
	}

	out := make([]Standing, 0, len(best))
	for _, s := range best {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Price.Cmp(out[j].Price); c != 0 {
			return c > 0
		}
		return out[i].BidID < out[j].BidID
	})
	return out
}

func winnersNum(it *model.Item) int {
	if it.WinnersNum < 1 {
		return 1
	}
	return it.WinnersNum
}

// Winners returns the top WinnersNum standings (fewer if not enough bidders).
func Winners(it *model.Item, bids []model.Bid) []Standing {
	ranked := RankBidders(bids)
	if n := winnersNum(it); len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// LowestWinningPrice is the price a new bid has to beat to enter the winner set.
// Zero while fewer than WinnersNum distinct bidders exist.
func LowestWinningPrice(it *model.Item, bids []model.Bid) decimal.Decimal {
	ranked := RankBidders(bids)
	n := winnersNum(it)
	if len(ranked) < n {
		return decimal.Zero
	}
	return ranked[n-1].Price
}

// HighestUserPrice returns the best price bid by the exact (name, phone) pair, zero if none.
func HighestUserPrice(bids []model.Bid, name, phoneNumber string) decimal.Decimal {
	top := decimal.Zero
	for i := range bids {
		b := &bids[i]
		if b.Name == name && b.PhoneNumber == phoneNumber && b.Price.GreaterThan(top) {
			top = b.Price
		}
	}
	return top
}

// AdditionalWinners returns the winners ranked after the first one.
func AdditionalWinners(it *model.Item, bids []model.Bid) []Standing {
	if winnersNum(it) == 1 {
		return []Standing{}
	}
	w := Winners(it, bids)
	if len(w) <= 1 {
		return []Standing{}
	}
	return w[1:]
}

// FormatPrice renders an amount with thousands separators and two decimals.
// Формат строится по самому decimal, без перехода через float64.
func FormatPrice(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return rounded.StringFixed(2)
	}
	out := humanize.BigComma(n) + "." + frac
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatRemaining renders a live countdown, e.g. "3 hours".
func FormatRemaining(now, closeAt time.Time) string {
	return strings.TrimSpace(humanize.RelTime(now, closeAt, "", ""))
}
