package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"LiveAuction/internal/cli/commands"
	"LiveAuction/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// auctionctl -h: список команд и флаги
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprint(out, commands.FormatGlobalUsage())
		fmt.Fprintln(out, "\nFlags:")
		flag.PrintDefaults()
	}

	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("auctionctl %s (built %s)\n", version, buildDate)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if code := commands.Dispatch(ctx, cfg, flag.Args()); code != commands.ExitOK {
		os.Exit(code)
	}
}
