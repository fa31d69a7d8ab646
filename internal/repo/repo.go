package repo

import (
	"context"
	"fmt"

	"LiveAuction/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД и применяет миграции. DSN postgres выбирает драйвер postgres,
// всё остальное открывается как SQLite (modernc, без cgo).
func InitDB(dsn string, usePostgres bool) (*gorm.DB, error) {
	var dial gorm.Dialector
	if usePostgres {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if !usePostgres {
		// SQLite допускает одного писателя; одно соединение сериализует транзакции ставок
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AuctionSetting{}, &model.Item{}, &model.Bid{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Store: точка доступа ко всем репозиториям, в том числе внутри транзакции.
type Store interface {
	Items() ItemRepository
	Bids() BidRepository
	Settings() SettingRepository

	// Transaction выполняет fn в одной транзакции; ошибка из fn откатывает её.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore создаёт Store поверх gorm.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Items() ItemRepository       { return NewItemRepository(s.db) }
func (s *gormStore) Bids() BidRepository         { return NewBidRepository(s.db) }
func (s *gormStore) Settings() SettingRepository { return NewSettingRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
