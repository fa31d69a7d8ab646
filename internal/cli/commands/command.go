package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"LiveAuction/internal/config"
)

// ErrUsage: неверные аргументы, Dispatch покажет usage команды.
var ErrUsage = errors.New("usage")

// Command: подкоманда auctionctl.
type Command interface {
	// Name: имя, которое набирает пользователь, например "bid".
	Name() string
	Description() string
	// Usage: строка вида "bid <item-id> <price> <name> <phone>" без имени программы.
	Usage() string
	// Admin: команда ходит в /api/admin и требует учётных данных администратора.
	Admin() bool
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out: куда CLI пишет вывод; в тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterCmd регистрирует команду; вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List: все команды по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку: сначала команды участника, затем админские.
func FormatGlobalUsage() string {
	var bidder, admin []string
	for _, c := range List() {
		line := fmt.Sprintf("  %-52s %s", c.Usage(), c.Description())
		if c.Admin() {
			admin = append(admin, line)
		} else {
			bidder = append(bidder, line)
		}
	}

	lines := []string{
		"LiveAuction CLI",
		"",
		"Usage:",
		"  auctionctl [flags] <command> [args]",
		"",
		"Commands:",
	}
	lines = append(lines, bidder...)
	if len(admin) > 0 {
		lines = append(lines, "", "Admin commands (--admin-login, --admin-password):")
		lines = append(lines, admin...)
	}
	lines = append(lines, "", "Run 'auctionctl help <command>' for command usage, 'auctionctl -h' for flags.")
	return strings.Join(lines, "\n") + "\n"
}
