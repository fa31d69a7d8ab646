package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid: принятая ставка. Записи только добавляются, ID задаёт порядок подачи.
type Bid struct {
	ID     uint `gorm:"primaryKey"`
	ItemID uint `gorm:"not null;index"`

	Name        string          `gorm:"not null"`
	PhoneNumber string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
