package repo

import (
	"context"
	"errors"

	"LiveAuction/internal/model"

	"gorm.io/gorm"
)

// SettingRepository: доступ к AuctionSetting.
type SettingRepository interface {
	// GetActive возвращает активную настройку с наименьшим ID; nil, если активных нет.
	GetActive(ctx context.Context) (*model.AuctionSetting, error)
	ListAll(ctx context.Context) ([]model.AuctionSetting, error)
	Create(ctx context.Context, s *model.AuctionSetting) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) GetActive(ctx context.Context) (*model.AuctionSetting, error) {
	var s model.AuctionSetting
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingRepo) ListAll(ctx context.Context) ([]model.AuctionSetting, error) {
	var list []model.AuctionSetting
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *settingRepo) Create(ctx context.Context, s *model.AuctionSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}
