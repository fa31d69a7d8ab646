package handlers

import (
	"LiveAuction/internal/config"
	"LiveAuction/internal/middleware"
	"LiveAuction/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services: всё, что нужно хендлерам от сервисного слоя.
type Services struct {
	Bids     *service.BidService
	Status   *service.StatusService
	Settings *service.SettingService
	Items    *service.ItemService
	Winners  *service.WinnerService
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc Services,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithBidder(config.AuthSecret))

	// Handlers
	biddingHandler := NewBiddingHandler(svc, logger, config)
	adminHandler := NewAdminHandler(svc, logger)

	// Bidder routes
	r.Get("/", biddingHandler.NameInput)
	r.Post("/", biddingHandler.SubmitName)
	r.Get("/bidding/", biddingHandler.Bidding)
	r.Get("/bidding/update_bids/", biddingHandler.UpdateBids)
	r.Get("/bidding/add_bid/{itemID}/{price}/{name}/{phoneNumber}/", biddingHandler.AddBid)
	r.Post("/api/items/{itemID}/bids", biddingHandler.PlaceBid)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAdmin(config.AdminLogin, config.AdminPasswordHash))
		r.Get("/api/admin/settings", adminHandler.ListSettings)
		r.Post("/api/admin/settings", adminHandler.CreateSetting)
		r.Post("/api/admin/items", adminHandler.CreateItem)
		r.Get("/api/admin/items/{itemID}/bids", adminHandler.ItemBids)
		r.Get("/message_generator/", adminHandler.MessageGenerator)
	})

	return &Handler{Router: r}
}
