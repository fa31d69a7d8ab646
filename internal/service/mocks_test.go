package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"LiveAuction/internal/events"
	"LiveAuction/internal/model"
	"LiveAuction/internal/repo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Моки для репозиториев
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByIDForUpdate(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) UpdateWinning(ctx context.Context, id uint, price decimal.Decimal, name, phoneNumber string) error {
	return m.Called(ctx, id, price, name, phoneNumber).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockBidRepo struct{ mock.Mock }

func (m *mockBidRepo) Create(ctx context.Context, b *model.Bid) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBidRepo) ListByItem(ctx context.Context, itemID uint) ([]model.Bid, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).([]model.Bid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBidRepo) ListByItems(ctx context.Context, itemIDs []uint) (map[uint][]model.Bid, error) {
	args := m.Called(ctx, itemIDs)
	if v, ok := args.Get(0).(map[uint][]model.Bid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBidRepo) ListByBidder(ctx context.Context, itemID uint, name, phoneNumber string) ([]model.Bid, error) {
	args := m.Called(ctx, itemID, name, phoneNumber)
	if v, ok := args.Get(0).([]model.Bid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBidRepo) CountByItem(ctx context.Context, itemID uint) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.BidRepository = (*mockBidRepo)(nil)

type mockSettingRepo struct{ mock.Mock }

func (m *mockSettingRepo) GetActive(ctx context.Context) (*model.AuctionSetting, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).(*model.AuctionSetting); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSettingRepo) ListAll(ctx context.Context) ([]model.AuctionSetting, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.AuctionSetting); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSettingRepo) Create(ctx context.Context, s *model.AuctionSetting) error {
	return m.Called(ctx, s).Error(0)
}

var _ repo.SettingRepository = (*mockSettingRepo)(nil)

// mockStore отдаёт моки репозиториев; Transaction просто вызывает fn.
type mockStore struct {
	items    *mockItemRepo
	bids     *mockBidRepo
	settings *mockSettingRepo
	txCalls  int
}

func newMockStore() *mockStore {
	return &mockStore{items: new(mockItemRepo), bids: new(mockBidRepo), settings: new(mockSettingRepo)}
}

func (s *mockStore) Items() repo.ItemRepository       { return s.items }
func (s *mockStore) Bids() repo.BidRepository         { return s.bids }
func (s *mockStore) Settings() repo.SettingRepository { return s.settings }
func (s *mockStore) Transaction(ctx context.Context, fn func(tx repo.Store) error) error {
	s.txCalls++
	return fn(s)
}

var _ repo.Store = (*mockStore)(nil)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, ev events.BidPlaced) error {
	return m.Called(ctx, ev).Error(0)
}

// newTestStore: Store поверх in-memory SQLite (modernc), своя база на тест.
func newTestStore(t *testing.T) repo.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return repo.NewStore(db)
}

// хелперы
var now0 = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now0 }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func liveItem(winners int, base string) *model.Item {
	return &model.Item{
		Name:       "lot",
		BasePrice:  dec(base),
		WinnersNum: winners,
		DtOpen:     now0.Add(-time.Hour),
		DtClosed:   now0.Add(time.Hour),
	}
}
