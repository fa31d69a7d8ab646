package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"LiveAuction/internal/config"
)

// Коды завершения auctionctl.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// isHelpArg: -h, --help или help.
func isHelpArg(a string) bool {
	switch a {
	case "-h", "--help", "help":
		return true
	}
	return false
}

// Dispatch запускает команду по первому аргументу и возвращает код завершения.
// Глобальные флаги к этому моменту уже разобраны config.NewConfig.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if isHelpArg(name) {
		return printHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	rest := args[1:]
	// auctionctl bid --help
	if len(rest) > 0 && (rest[0] == "-h" || rest[0] == "--help") {
		printCommandUsage(c)
		return ExitOK
	}

	err := c.Run(ctx, cfg, rest)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		printCommandUsage(c)
		return ExitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}

// printHelp: auctionctl help [command]
func printHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	if c, ok := Get(strings.ToLower(args[0])); ok {
		printCommandUsage(c)
		return ExitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}

func printCommandUsage(c Command) {
	fmt.Fprintf(Out, "Usage: auctionctl %s\n", c.Usage())
	if d := c.Description(); d != "" {
		fmt.Fprintf(Out, "  %s\n", d)
	}
	if c.Admin() {
		fmt.Fprintln(Out, "  требует --admin-login и --admin-password")
	}
}
