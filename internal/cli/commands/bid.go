package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type bidCmd struct{}

func (bidCmd) Name() string        { return "bid" }
func (bidCmd) Description() string { return "Сделать ставку на лот" }
func (bidCmd) Usage() string       { return "bid <item-id> <price> <name> <phone>" }

func (bidCmd) Admin() bool { return false }

func (bidCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	req := map[string]string{"price": args[1], "name": args[2], "phone_number": args[3]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, fmt.Sprintf("/api/items/%d/bids", id)), req, api.Credentials{})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("item %d not found", id)
	}
	var br dto.PlaceBidResponse
	if err := api.Decode(resp, body, http.StatusOK, &br); err != nil {
		return err
	}
	if br.Error != "" {
		return errors.New(br.Error)
	}
	fmt.Fprintf(Out, "✓ Ставка принята: %s%s на лот #%d\n", cfg.CurrencySymbol, args[1], id)
	return nil
}

func init() { RegisterCmd(bidCmd{}) }
