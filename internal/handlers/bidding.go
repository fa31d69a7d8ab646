package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
	"LiveAuction/internal/middleware"
	"LiveAuction/internal/service"

	"go.uber.org/zap"
)

// BiddingHandler обслуживает публичную часть: ввод имени, список лотов, опрос и ставки.
type BiddingHandler struct {
	Bids     *service.BidService
	Status   *service.StatusService
	Settings *service.SettingService
	Logger   *zap.SugaredLogger
	Config   *config.Config
}

func NewBiddingHandler(svc Services, logger *zap.SugaredLogger, cfg *config.Config) *BiddingHandler {
	return &BiddingHandler{
		Bids:     svc.Bids,
		Status:   svc.Status,
		Settings: svc.Settings,
		Logger:   logger,
		Config:   cfg,
	}
}

// NameInput отдаёт контекст страницы ввода имени.
func (h *BiddingHandler) NameInput(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Settings.Active(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "NameInput", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NameInputResponse{AuctionSetting: toSettingDTO(setting)})
}

// SubmitName запоминает участника в cookie и отправляет на страницу ставок.
func (h *BiddingHandler) SubmitName(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("SubmitName: invalid form", "error", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	phone := strings.TrimSpace(r.PostFormValue("phone_number"))
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := middleware.SetBidderCookie(w, name, phone, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("SubmitName: failed to sign cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("phone_number", phone)
	http.Redirect(w, r, "/bidding/?"+q.Encode(), http.StatusFound)
}

// bidder: участник из query, иначе из cookie.
func (h *BiddingHandler) bidder(r *http.Request) *dto.BidderDTO {
	q := r.URL.Query()
	if name := q.Get("name"); name != "" {
		return &dto.BidderDTO{Name: name, PhoneNumber: q.Get("phone_number")}
	}
	if b, ok := middleware.GetBidderFromContext(r.Context()); ok {
		return &dto.BidderDTO{Name: b.Name, PhoneNumber: b.PhoneNumber}
	}
	return nil
}

// Bidding отдаёт лоты, разложенные по статусам.
func (h *BiddingHandler) Bidding(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Settings.Active(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "Bidding", err)
		return
	}
	view, err := h.Status.BiddingView(r.Context(), setting)
	if err != nil {
		writeServiceError(w, h.Logger, "Bidding", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.BiddingResponse{
		AuctionSetting: toSettingDTO(view.Setting),
		Bidder:         h.bidder(r),
		ItemsUpcoming:  toItemDTOs(view.ItemsUpcoming),
		ItemsLive:      toItemDTOs(view.ItemsLive),
		ItemsClosed:    toItemDTOs(view.ItemsClosed),
	})
}

// UpdateBids: снимок для периодического опроса со страницы.
func (h *BiddingHandler) UpdateBids(w http.ResponseWriter, r *http.Request) {
	updates, err := h.Status.Updates(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateBids", err)
		return
	}
	resp := dto.UpdateBidsResponse{ItemUpdates: make(map[uint]dto.ItemUpdateDTO, len(updates))}
	for id, u := range updates {
		resp.ItemUpdates[id] = dto.ItemUpdateDTO{
			Status:            string(u.Status),
			WinningPrice:      u.WinningPrice,
			WinningName:       u.WinningName,
			AdditionalWinners: toWinnerDTOs(u.AdditionalWinners),
			DtClosed:          u.DtClosed,
			Remaining:         u.Remaining,
			RemainingSeconds:  u.RemainingSeconds,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddBid: ставка, целиком закодированная в пути.
func (h *BiddingHandler) AddBid(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	res, err := h.Bids.AddBid(r.Context(), itemID,
		pathParam(r, "price"), pathParam(r, "name"), pathParam(r, "phoneNumber"))
	if err != nil {
		writeServiceError(w, h.Logger, "AddBid", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AddBidResponse{Error: res.Message})
}

// rawPrice принимает цену и строкой, и числом.
func rawPrice(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// PlaceBid: JSON-вариант AddBid; имя и телефон берутся из cookie, если не переданы.
func (h *BiddingHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var req dto.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("PlaceBid: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		if b, ok := middleware.GetBidderFromContext(r.Context()); ok {
			req.Name, req.PhoneNumber = b.Name, b.PhoneNumber
		}
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	res, err := h.Bids.AddBid(r.Context(), itemID, rawPrice(req.Price), req.Name, req.PhoneNumber)
	if err != nil {
		writeServiceError(w, h.Logger, "PlaceBid", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PlaceBidResponse{Error: res.Message, Kind: string(res.Kind)})
}
