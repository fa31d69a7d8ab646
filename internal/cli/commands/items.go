package commands

import (
	"context"
	"fmt"
	"net/http"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все лоты по статусам"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Admin() bool { return false }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/bidding/"), api.Credentials{})
	if err != nil {
		return err
	}
	var br dto.BiddingResponse
	if err := api.Decode(resp, body, http.StatusOK, &br); err != nil {
		return err
	}
	if br.AuctionSetting != nil {
		fmt.Fprintf(Out, "%s\n\n", br.AuctionSetting.Title)
	}

	total := 0
	for _, sec := range []struct {
		title string
		items []dto.ItemDTO
	}{
		{"Live", br.ItemsLive},
		{"Upcoming", br.ItemsUpcoming},
		{"Closed", br.ItemsClosed},
	} {
		if len(sec.items) == 0 {
			continue
		}
		fmt.Fprintf(Out, "%s:\n", sec.title)
		for _, it := range sec.items {
			price := "-"
			if it.WinningPrice != "" {
				price = cfg.CurrencySymbol + it.WinningPrice
			}
			fmt.Fprintf(Out, "- #%d  %s  base=%s%s  winners=%d  winning=%s\n",
				it.ID, it.Name, cfg.CurrencySymbol, it.BasePrice, it.WinnersNum, price)
		}
		total += len(sec.items)
	}
	if total == 0 {
		fmt.Fprintln(Out, "Нет лотов")
		return nil
	}
	fmt.Fprintf(Out, "Всего: %d\n", total)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
