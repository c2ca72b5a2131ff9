package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityline/cityline/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	themeName := flag.String("theme", "", "color theme name (optional)")
	tickMillis := flag.Int("tick", 0, "render interval in milliseconds (optional, defaults to 100ms)")
	trace := flag.Bool("trace", false, "enable trace logging to the log file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ThemeName:  *themeName,
		Trace:      *trace,
	}
	if tick := *tickMillis; tick > 0 {
		opts.TickEvery = time.Duration(tick) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cityline: %v\n", err)
		return 1
	}
	return 0
}
