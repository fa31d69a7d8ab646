package service

import (
	"context"
	"fmt"
	"strings"

	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"
)

// SettingService: выбор и ведение настроек аукциона.
type SettingService struct {
	repo repo.SettingRepository
}

func NewSettingService(r repo.SettingRepository) *SettingService {
	return &SettingService{repo: r}
}

// Active возвращает текущую настройку (активную с наименьшим ID) или nil.
func (s *SettingService) Active(ctx context.Context) (*model.AuctionSetting, error) {
	return s.repo.GetActive(ctx)
}

func (s *SettingService) List(ctx context.Context) ([]model.AuctionSetting, error) {
	return s.repo.ListAll(ctx)
}

func (s *SettingService) Create(ctx context.Context, title, description string, active bool) (*model.AuctionSetting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidSetting)
	}
	st := &model.AuctionSetting{Title: title, Description: description, Active: active}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create setting: %w", err)
	}
	return st, nil
}
