package repo

import (
	"context"

	"LiveAuction/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// ListAll возвращает все лоты, отсортированные по dt_closed DESC.
	ListAll(ctx context.Context) ([]model.Item, error)

	// GetByID возвращает лот или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id uint) (*model.Item, error)

	// GetByIDForUpdate то же, что GetByID, но блокирует строку до конца транзакции.
	GetByIDForUpdate(ctx context.Context, id uint) (*model.Item, error)

	Create(ctx context.Context, it *model.Item) error

	// UpdateWinning перезаписывает снимок лучшей ставки.
	UpdateWinning(ctx context.Context, id uint, price decimal.Decimal, name, phoneNumber string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("dt_closed DESC").Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) GetByIDForUpdate(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	// SQLite-диалект опускает FOR UPDATE, там писатели и так сериализованы
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&it, id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) UpdateWinning(ctx context.Context, id uint, price decimal.Decimal, name, phoneNumber string) error {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(map[string]any{
		"winning_price":        decimal.NewNullDecimal(price),
		"winning_name":         name,
		"winning_phone_number": phoneNumber,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
