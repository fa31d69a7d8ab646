package main

import (
	"LiveAuction/internal/config"
	"LiveAuction/internal/events"
	"LiveAuction/internal/handlers"
	"LiveAuction/internal/middleware"
	"LiveAuction/internal/repo"
	"LiveAuction/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.UsesPostgres())
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	pub, closePub := newPublisher(cfg, sugar)
	defer closePub()

	store := repo.NewStore(gormDB)
	h := handlers.NewHandler(handlers.Services{
		Bids:     service.NewBidService(store, pub, sugar, cfg.CurrencySymbol),
		Status:   service.NewStatusService(store),
		Settings: service.NewSettingService(store.Settings()),
		Items:    service.NewItemService(store),
		Winners:  service.NewWinnerService(store, cfg.CurrencySymbol),
	}, sugar, cfg)

	if cfg.AdminPasswordHash == "" {
		sugar.Warnw("ADMIN_PASSWORD_HASH is empty, admin routes are disabled")
	}

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Postgres", cfg.UsesPostgres(),
		"Redis", cfg.RedisAddr,
		"NATS", cfg.NATSURL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

// newPublisher собирает публикаторы событий из конфига.
// Недоступный брокер не мешает старту: ставки работают и без событий.
func newPublisher(cfg *config.Config, sugar *zap.SugaredLogger) (events.Publisher, func()) {
	var pubs events.Multi
	var closers []func()

	if cfg.RedisAddr != "" {
		rp, err := events.NewRedisPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			sugar.Warnw("redis publisher disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			pubs = append(pubs, rp)
			closers = append(closers, func() { _ = rp.Close() })
		}
	}
	if cfg.NATSURL != "" {
		np, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			sugar.Warnw("nats publisher disabled", "url", cfg.NATSURL, "error", err)
		} else {
			pubs = append(pubs, np)
			closers = append(closers, func() { _ = np.Close() })
		}
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	if len(pubs) == 0 {
		return events.Nop{}, closeAll
	}
	return pubs, closeAll
}
