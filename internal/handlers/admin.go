package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"LiveAuction/internal/dto"
	"LiveAuction/internal/service"

	"go.uber.org/zap"
)

// AdminHandler: управление настройками и лотами, история ставок, сообщения победителям.
type AdminHandler struct {
	Settings *service.SettingService
	Items    *service.ItemService
	Winners  *service.WinnerService
	Logger   *zap.SugaredLogger
}

func NewAdminHandler(svc Services, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{Settings: svc.Settings, Items: svc.Items, Winners: svc.Winners, Logger: logger}
}

func (h *AdminHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	list, err := h.Settings.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ListSettings", err)
		return
	}
	out := make([]dto.SettingDTO, 0, len(list))
	for i := range list {
		out = append(out, *toSettingDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateSetting: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	st, err := h.Settings.Create(r.Context(), req.Title, req.Description, req.Active)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateSetting", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSettingDTO(st))
}

// CreateItem создаёт лот. winners_num по умолчанию 1.
func (h *AdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateItem: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.WinnersNum == 0 {
		req.WinnersNum = 1
	}
	it, err := h.Items.Create(r.Context(), service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		WinnersNum:  req.WinnersNum,
		DtOpen:      req.DtOpen,
		DtClosed:    req.DtClosed,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "CreateItem", err)
		return
	}
	h.Logger.Infow("item created", "item_id", it.ID, "name", it.Name)
	writeJSON(w, http.StatusCreated, dto.CreateItemResponse{ID: it.ID})
}

// ItemBids: полная история ставок лота, с телефонами.
func (h *AdminHandler) ItemBids(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	bids, err := h.Items.Bids(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, h.Logger, "ItemBids", err)
		return
	}
	out := make([]dto.BidDTO, 0, len(bids))
	for _, b := range bids {
		out = append(out, dto.BidDTO{
			ID:          b.ID,
			Name:        b.Name,
			PhoneNumber: b.PhoneNumber,
			Price:       b.Price.StringFixed(2),
			CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// MessageGenerator: готовые тексты для победителей закрытых лотов.
func (h *AdminHandler) MessageGenerator(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Settings.Active(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "MessageGenerator", err)
		return
	}
	msgs, err := h.Winners.Messages(r.Context(), setting)
	if err != nil {
		writeServiceError(w, h.Logger, "MessageGenerator", err)
		return
	}
	out := make([]dto.WinnerMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.WinnerMessageDTO(m))
	}
	writeJSON(w, http.StatusOK, dto.MessageGeneratorResponse{AuctionSetting: toSettingDTO(setting), Messages: out})
}
