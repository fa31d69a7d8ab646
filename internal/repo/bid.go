package repo

import (
	"context"

	"LiveAuction/internal/model"

	"gorm.io/gorm"
)

// BidRepository: доступ к истории ставок. Ставки только добавляются.
type BidRepository interface {
	Create(ctx context.Context, b *model.Bid) error

	// ListByItem возвращает ставки лота в порядке подачи.
	ListByItem(ctx context.Context, itemID uint) ([]model.Bid, error)

	// ListByItems группирует ставки нескольких лотов по item_id (порядок подачи сохраняется).
	ListByItems(ctx context.Context, itemIDs []uint) (map[uint][]model.Bid, error)

	// ListByBidder возвращает ставки участника (точное совпадение имени и телефона) на лот.
	ListByBidder(ctx context.Context, itemID uint, name, phoneNumber string) ([]model.Bid, error)

	CountByItem(ctx context.Context, itemID uint) (int64, error)
}

type bidRepo struct {
	db *gorm.DB
}

// NewBidRepository создаёт реализацию репозитория для Bid.
func NewBidRepository(db *gorm.DB) BidRepository {
	return &bidRepo{db: db}
}

func (r *bidRepo) Create(ctx context.Context, b *model.Bid) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bidRepo) ListByItem(ctx context.Context, itemID uint) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("id ASC").Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *bidRepo) ListByItems(ctx context.Context, itemIDs []uint) (map[uint][]model.Bid, error) {
	res := make(map[uint][]model.Bid, len(itemIDs))
	if len(itemIDs) == 0 {
		return res, nil
	}
	var bids []model.Bid
	err := r.db.WithContext(ctx).Where("item_id IN ?", itemIDs).Order("id ASC").Find(&bids).Error
	if err != nil {
		return nil, err
	}
	for _, b := range bids {
		res[b.ItemID] = append(res[b.ItemID], b)
	}
	return res, nil
}

func (r *bidRepo) ListByBidder(ctx context.Context, itemID uint, name, phoneNumber string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND name = ? AND phone_number = ?", itemID, name, phoneNumber).
		Order("id ASC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *bidRepo) CountByItem(ctx context.Context, itemID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Bid{}).Where("item_id = ?", itemID).Count(&n).Error
	return n, err
}
