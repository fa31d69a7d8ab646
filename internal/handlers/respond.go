package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"LiveAuction/internal/dto"
	"LiveAuction/internal/model"
	"LiveAuction/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError маппит ошибки сервиса в HTTP; детали остаются в логе.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidItem), errors.Is(err, service.ErrInvalidSetting):
		logger.Warnw(op+": invalid input", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// pathParam возвращает раскодированный параметр маршрута.
// chi матчит по RawPath, если он есть, и только тогда значение приходит экранированным;
// иначе Path уже раскодирован и повторно его трогать нельзя.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// itemIDParam: id лота из пути; ok=false, если это не положительное целое.
func itemIDParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "itemID"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func toSettingDTO(s *model.AuctionSetting) *dto.SettingDTO {
	if s == nil {
		return nil
	}
	return &dto.SettingDTO{ID: s.ID, Title: s.Title, Description: s.Description, Active: s.Active}
}

func toWinnerDTOs(in []service.WinnerView) []dto.WinnerDTO {
	out := make([]dto.WinnerDTO, 0, len(in))
	for _, w := range in {
		out = append(out, dto.WinnerDTO{Name: w.Name, Price: w.Price})
	}
	return out
}

func toItemDTOs(in []service.ItemView) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, len(in))
	for _, it := range in {
		out = append(out, dto.ItemDTO{
			ID:                it.ID,
			Name:              it.Name,
			Description:       it.Description,
			Status:            string(it.Status),
			BasePrice:         it.BasePrice,
			WinnersNum:        it.WinnersNum,
			WinningPrice:      it.WinningPrice,
			WinningName:       it.WinningName,
			DtOpen:            it.DtOpen.UTC().Format(time.RFC3339),
			DtClosed:          it.DtClosed.UTC().Format(time.RFC3339),
			AdditionalWinners: toWinnerDTOs(it.AdditionalWinners),
		})
	}
	return out
}
