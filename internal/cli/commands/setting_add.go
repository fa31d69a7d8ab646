package commands

import (
	"context"
	"fmt"
	"net/http"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type settingAddCmd struct{}

func (settingAddCmd) Name() string        { return "setting-add" }
func (settingAddCmd) Description() string { return "Создать активную настройку аукциона" }
func (settingAddCmd) Usage() string       { return "setting-add <title> [description]" }

func (settingAddCmd) Admin() bool { return true }

func (settingAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	req := dto.CreateSettingRequest{Title: args[0], Active: true}
	if len(args) == 2 {
		req.Description = args[1]
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/admin/settings"), req, adminCreds(cfg))
	if err != nil {
		return err
	}
	var st dto.SettingDTO
	if err := api.Decode(resp, body, http.StatusCreated, &st); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Setting #%d %q created\n", st.ID, st.Title)
	return nil
}

func init() { RegisterCmd(settingAddCmd{}) }
