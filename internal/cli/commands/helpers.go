package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
)

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

func adminCreds(cfg *config.Config) api.Credentials {
	return api.Credentials{Login: cfg.AdminLogin, Password: cfg.AdminPassword}
}

func parseItemID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid item id %q", s)
	}
	return uint(id), nil
}

// timeLayouts: форматы времени, которые понимает item-add.
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}

func parseTime(s string) (time.Time, error) {
	for _, l := range timeLayouts {
		if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use RFC3339 or \"2006-01-02 15:04\")", s)
}
