package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"LiveAuction/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *config.Config {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL, CurrencySymbol: "£", AdminLogin: "admin", AdminPassword: "pw"}
}

func TestStatus_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bidding/update_bids/", r.URL.Path)
		_, _ = w.Write([]byte(`{"item_updates":{
			"7":{"status":"closed","winning_price":"","winning_name":"","additional_winners":[]},
			"3":{"status":"live","winning_price":"1,200.00","winning_name":"Alice",
			     "additional_winners":[{"name":"Bob","price":"900.00"}],
			     "dt_closed":"01-06-2026 18:00","remaining":"2 hours","remaining_seconds":7200}}}`))
	})

	out := withStdoutCapture(t, func() {
		require.NoError(t, (statusCmd{}).Run(context.Background(), cfg, nil))
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#3")
	assert.Contains(t, lines[0], "£1,200.00 by Alice")
	assert.Contains(t, lines[0], "closes 01-06-2026 18:00 (2 hours)")
	assert.Contains(t, lines[1], "2. £900.00 by Bob")
	assert.Contains(t, lines[2], "#7")
	assert.Contains(t, lines[2], "no bids")

	assert.ErrorIs(t, (statusCmd{}).Run(context.Background(), cfg, []string{"extra"}), ErrUsage)
}

func TestStatus_Run_Errors(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	assert.Error(t, (statusCmd{}).Run(context.Background(), cfg, nil))

	cfg = newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	})
	assert.Error(t, (statusCmd{}).Run(context.Background(), cfg, nil))
}

func TestItems_Run(t *testing.T) {
	empty := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"auction_setting":null,"items_upcoming":[],"items_live":[],"items_closed":[]}`))
	})
	out := withStdoutCapture(t, func() { require.NoError(t, (itemsCmd{}).Run(context.Background(), empty, nil)) })
	assert.Contains(t, out, "Нет лотов")

	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"auction_setting":{"id":1,"title":"Spring Gala","active":true},
			"items_upcoming":[{"id":2,"name":"Dinner","base_price":"50.00","winners_num":3}],
			"items_live":[{"id":1,"name":"Vase","base_price":"10.00","winners_num":1,"winning_price":"15.00"}],
			"items_closed":[]}`))
	})
	out = withStdoutCapture(t, func() { require.NoError(t, (itemsCmd{}).Run(context.Background(), cfg, nil)) })
	assert.Contains(t, out, "Spring Gala")
	assert.Contains(t, out, "#1  Vase  base=£10.00  winners=1  winning=£15.00")
	assert.Contains(t, out, "#2  Dinner  base=£50.00  winners=3  winning=-")
	assert.Contains(t, out, "Всего: 2")
}

func TestBid_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/items/9/bids" {
			http.NotFound(w, r)
			return
		}
		require.Equal(t, "/api/items/1/bids", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["price"] == "5" {
			_, _ = w.Write([]byte(`{"error":"Your bid must be at least the base price (£10.00).","kind":"BelowBasePrice"}`))
			return
		}
		assert.Equal(t, "Alice", req["name"])
		assert.Equal(t, "555", req["phone_number"])
		_, _ = w.Write([]byte(`{"error":""}`))
	})
	ctx := context.Background()

	out := withStdoutCapture(t, func() { require.NoError(t, (bidCmd{}).Run(ctx, cfg, []string{"1", "15", "Alice", "555"})) })
	assert.Contains(t, out, "Ставка принята")

	err := (bidCmd{}).Run(ctx, cfg, []string{"1", "5", "Alice", "555"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base price")

	err = (bidCmd{}).Run(ctx, cfg, []string{"9", "5", "Alice", "555"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.Error(t, (bidCmd{}).Run(ctx, cfg, []string{"x", "5", "Alice", "555"}))
	assert.ErrorIs(t, (bidCmd{}).Run(ctx, cfg, []string{"1", "5"}), ErrUsage)
}

func TestItemAdd_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "pw" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Vase", req["name"])
		assert.Equal(t, "25.5", req["base_price"])
		assert.Equal(t, float64(2), req["winners_num"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	})
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		require.NoError(t, (itemAddCmd{}).Run(ctx, cfg, []string{"Vase", "25.5", "2026-06-01 10:00", "2026-06-01T18:00:00Z", "2"}))
	})
	assert.Contains(t, out, "id:      42")

	bad := *cfg
	bad.AdminPassword = "wrong"
	err := (itemAddCmd{}).Run(ctx, &bad, []string{"Vase", "25.5", "2026-06-01 10:00", "2026-06-01 18:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")

	assert.Error(t, (itemAddCmd{}).Run(ctx, cfg, []string{"Vase", "abc", "2026-06-01 10:00", "2026-06-01 18:00"}))
	assert.Error(t, (itemAddCmd{}).Run(ctx, cfg, []string{"Vase", "1", "tomorrow", "2026-06-01 18:00"}))
	assert.Error(t, (itemAddCmd{}).Run(ctx, cfg, []string{"Vase", "1", "2026-06-01 10:00", "2026-06-01 18:00", "0"}))
	assert.ErrorIs(t, (itemAddCmd{}).Run(ctx, cfg, []string{"Vase"}), ErrUsage)
}

func TestSettingAdd_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, true, req["active"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"title":"Spring Gala","active":true}`))
	})
	out := withStdoutCapture(t, func() {
		require.NoError(t, (settingAddCmd{}).Run(context.Background(), cfg, []string{"Spring Gala", "charity"}))
	})
	assert.Contains(t, out, `Setting #3 "Spring Gala" created`)
	assert.ErrorIs(t, (settingAddCmd{}).Run(context.Background(), cfg, nil), ErrUsage)
}

func TestBids_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/items/2/bids" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Alice","phone_number":"555","price":"12.50","created_at":"2026-06-01T10:00:00Z"}]`))
	})
	out := withStdoutCapture(t, func() { require.NoError(t, (bidsCmd{}).Run(context.Background(), cfg, []string{"1"})) })
	assert.Contains(t, out, "£12.50  Alice (555)")
	assert.Contains(t, out, "Всего: 1")

	out = withStdoutCapture(t, func() { require.NoError(t, (bidsCmd{}).Run(context.Background(), cfg, []string{"2"})) })
	assert.Contains(t, out, "Нет ставок")
}

func TestWinners_Run(t *testing.T) {
	cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/message_generator/", r.URL.Path)
		_, _ = w.Write([]byte(`{"auction_setting":null,"messages":[
			{"item_id":1,"item_name":"Vase","rank":1,"name":"Alice","phone_number":"555","price":"£20.00","text":"Hi Alice"}]}`))
	})
	out := withStdoutCapture(t, func() { require.NoError(t, (winnersCmd{}).Run(context.Background(), cfg, nil)) })
	assert.Contains(t, out, "#1 Vase, place 1: Alice <555>")
	assert.Contains(t, out, "Hi Alice")
}
