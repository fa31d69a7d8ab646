package commands

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Текущие ставки по открытым и закрытым лотам" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Admin() bool { return false }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/bidding/update_bids/"), api.Credentials{})
	if err != nil {
		return err
	}
	var ur dto.UpdateBidsResponse
	if err := api.Decode(resp, body, http.StatusOK, &ur); err != nil {
		return err
	}
	if len(ur.ItemUpdates) == 0 {
		fmt.Fprintln(Out, "Нет открытых лотов")
		return nil
	}

	ids := make([]uint, 0, len(ur.ItemUpdates))
	for id := range ur.ItemUpdates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		u := ur.ItemUpdates[id]
		line := fmt.Sprintf("#%d  %-6s", id, u.Status)
		if u.WinningPrice != "" {
			line += fmt.Sprintf("  %s%s by %s", cfg.CurrencySymbol, u.WinningPrice, u.WinningName)
		} else {
			line += "  no bids"
		}
		if u.Remaining != "" {
			line += fmt.Sprintf("  closes %s (%s)", u.DtClosed, u.Remaining)
		}
		fmt.Fprintln(Out, line)
		for i, w := range u.AdditionalWinners {
			fmt.Fprintf(Out, "      %d. %s%s by %s\n", i+2, cfg.CurrencySymbol, w.Price, w.Name)
		}
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
