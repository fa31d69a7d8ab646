package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"

	"github.com/shopspring/decimal"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить лот"
}
func (itemAddCmd) Usage() string {
	return "item-add <name> <base-price> <open> <close> [winners]"
}

func (itemAddCmd) Admin() bool { return true }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return ErrUsage
	}
	base, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid base price %q", args[1])
	}
	open, err := parseTime(args[2])
	if err != nil {
		return err
	}
	closeAt, err := parseTime(args[3])
	if err != nil {
		return err
	}
	winners := 1
	if len(args) == 5 {
		if winners, err = strconv.Atoi(args[4]); err != nil || winners < 1 {
			return fmt.Errorf("invalid winners count %q", args[4])
		}
	}

	req := dto.CreateItemRequest{
		Name:       args[0],
		BasePrice:  base,
		WinnersNum: winners,
		DtOpen:     open,
		DtClosed:   closeAt,
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/admin/items"), req, adminCreds(cfg))
	if err != nil {
		return err
	}
	var created dto.CreateItemResponse
	if err := api.Decode(resp, body, http.StatusCreated, &created); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:      %d\n", created.ID)
	fmt.Fprintf(Out, "  name:    %s\n", args[0])
	fmt.Fprintf(Out, "  winners: %d\n", winners)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
