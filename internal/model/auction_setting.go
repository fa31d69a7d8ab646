package model

import "time"

// AuctionSetting: глобальные настройки аукциона. Текущей считается активная запись с наименьшим ID.
type AuctionSetting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Active      bool   `gorm:"not null;default:false;index" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
