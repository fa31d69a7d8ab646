package commands

import (
	"context"
	"fmt"
	"net/http"

	"LiveAuction/internal/cli/api"
	"LiveAuction/internal/config"
	"LiveAuction/internal/dto"
)

type winnersCmd struct{}

func (winnersCmd) Name() string        { return "winners" }
func (winnersCmd) Description() string { return "Сообщения победителям закрытых лотов" }
func (winnersCmd) Usage() string       { return "winners" }

func (winnersCmd) Admin() bool { return true }

func (winnersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/message_generator/"), adminCreds(cfg))
	if err != nil {
		return err
	}
	var mr dto.MessageGeneratorResponse
	if err := api.Decode(resp, body, http.StatusOK, &mr); err != nil {
		return err
	}
	if len(mr.Messages) == 0 {
		fmt.Fprintln(Out, "Победителей пока нет")
		return nil
	}
	for _, m := range mr.Messages {
		fmt.Fprintf(Out, "#%d %s, place %d: %s <%s>\n", m.ItemID, m.ItemName, m.Rank, m.Name, m.PhoneNumber)
		fmt.Fprintf(Out, "  %s\n", m.Text)
	}
	return nil
}

func init() { RegisterCmd(winnersCmd{}) }
