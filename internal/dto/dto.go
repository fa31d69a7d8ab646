// Package dto описывает JSON-формат HTTP API аукциона.
// Пакет общий для сервера и auctionctl и не тянет за собой хранилище и роутер.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type SettingDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type WinnerDTO struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ItemDTO: лот в списке торгов. Время в RFC3339, UTC.
type ItemDTO struct {
	ID                uint        `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Status            string      `json:"status"`
	BasePrice         string      `json:"base_price"`
	WinnersNum        int         `json:"winners_num"`
	WinningPrice      string      `json:"winning_price"`
	WinningName       string      `json:"winning_name"`
	DtOpen            string      `json:"dt_open"`
	DtClosed          string      `json:"dt_closed"`
	AdditionalWinners []WinnerDTO `json:"additional_winners"`
}

type BidderDTO struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type NameInputResponse struct {
	AuctionSetting *SettingDTO `json:"auction_setting"`
}

type BiddingResponse struct {
	AuctionSetting *SettingDTO `json:"auction_setting"`
	Bidder         *BidderDTO  `json:"bidder"`
	ItemsUpcoming  []ItemDTO   `json:"items_upcoming"`
	ItemsLive      []ItemDTO   `json:"items_live"`
	ItemsClosed    []ItemDTO   `json:"items_closed"`
}

type ItemUpdateDTO struct {
	Status            string      `json:"status"`
	WinningPrice      string      `json:"winning_price"`
	WinningName       string      `json:"winning_name"`
	AdditionalWinners []WinnerDTO `json:"additional_winners"`
	DtClosed          string      `json:"dt_closed,omitempty"`
	Remaining         string      `json:"remaining,omitempty"`
	RemainingSeconds  int64       `json:"remaining_seconds,omitempty"`
}

type UpdateBidsResponse struct {
	ItemUpdates map[uint]ItemUpdateDTO `json:"item_updates"`
}

// AddBidResponse: пустая строка error означает, что ставка принята.
type AddBidResponse struct {
	Error string `json:"error"`
}

// PlaceBidRequest: цена приходит строкой или числом.
type PlaceBidRequest struct {
	Price       json.RawMessage `json:"price"`
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phone_number"`
}

type PlaceBidResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type CreateSettingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	WinnersNum  int             `json:"winners_num"`
	DtOpen      time.Time       `json:"dt_open"`
	DtClosed    time.Time       `json:"dt_closed"`
}

type CreateItemResponse struct {
	ID uint `json:"id"`
}

type BidDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Price       string `json:"price"`
	CreatedAt   string `json:"created_at"`
}

type WinnerMessageDTO struct {
	ItemID      uint   `json:"item_id"`
	ItemName    string `json:"item_name"`
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Price       string `json:"price"`
	Text        string `json:"text"`
}

type MessageGeneratorResponse struct {
	AuctionSetting *SettingDTO        `json:"auction_setting"`
	Messages       []WinnerMessageDTO `json:"messages"`
}
