package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item: лот аукциона.
type Item struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string

	BasePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	WinnersNum int             `gorm:"not null;default:1"`

	// Окно приёма ставок [DtOpen, DtClosed)
	DtOpen   time.Time `gorm:"not null"`
	DtClosed time.Time `gorm:"not null;index"`

	// Снимок лучшей ставки. Для WinnersNum > 1 показ всегда пересчитывается по истории.
	WinningPrice       decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	WinningName        string
	WinningPhoneNumber string

	Bids []Bid `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// HasWinningPrice сообщает, есть ли у лота принятая ставка.
func (it *Item) HasWinningPrice() bool {
	return it.WinningPrice.Valid && !it.WinningPrice.Decimal.IsZero()
}
