package commands

import (
	"context"
	"fmt"
	"net/http"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type bidsCmd struct{}

func (bidsCmd) Name() string        { return "bids" }
func (bidsCmd) Description() string { return "История ставок лота с телефонами" }
func (bidsCmd) Usage() string       { return "bids <item-id>" }

func (bidsCmd) Admin() bool { return true }

func (bidsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, fmt.Sprintf("/api/admin/items/%d/bids", id)), adminCreds(cfg))
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("item %d not found", id)
	}
	var list []dto.BidDTO
	if err := api.Decode(resp, body, http.StatusOK, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет ставок")
		return nil
	}
	for _, b := range list {
		fmt.Fprintf(Out, "- %s  %s%s  %s (%s)\n", b.CreatedAt, cfg.CurrencySymbol, b.Price, b.Name, b.PhoneNumber)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(bidsCmd{}) }
