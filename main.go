package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"w3u-navigator/internal/cache"
	"w3u-navigator/internal/config"
	"w3u-navigator/internal/fetch"
	"w3u-navigator/internal/loader"
	"w3u-navigator/internal/navigate"
	"w3u-navigator/internal/player"
	"w3u-navigator/internal/runtime"
	"w3u-navigator/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.ParseCfg()
	if err != nil {
		ui.PrintError(err.Error())
		return 1
	}
	if cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableColors()
	}

	store := cache.New(cfg.CacheDir)
	if args.CacheInfo {
		return printCacheInfo(store)
	}

	nav := navigate.New(loader.New(store, fetch.New()), player.New(cfg.Player), os.Stdin, os.Stdout)
	nav.Pause = runtime.Pause
	nav.ClearScreen = term.IsTerminal(int(os.Stdout.Fd()))

	if err := nav.Run(context.Background(), cfg.StartURL); err != nil {
		ui.PrintError(fmt.Sprintf("Error fetching %s: %v", cfg.StartURL, err))
		return 1
	}
	return 0
}

func printCacheInfo(store *cache.Store) int {
	slots, err := store.List()
	if err != nil {
		ui.PrintError(err.Error())
		return 1
	}
	if len(slots) == 0 {
		ui.PrintInfo("cache is empty")
		return 0
	}
	var total uint64
	for _, slot := range slots {
		fmt.Printf("  %s%s%s %s (%s)\n", ui.ColorCyan, ui.BulletArrow, ui.ColorReset,
			slot.Name, humanize.Bytes(uint64(slot.Size)))
		total += uint64(slot.Size)
	}
	ui.PrintInfo(fmt.Sprintf("%d cached documents, %s total", len(slots), humanize.Bytes(total)))
	return 0
}
