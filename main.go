package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ciscolive-kodi/artgen/internal/app"
	"github.com/ciscolive-kodi/artgen/internal/config"
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(name string, args []string) int {
	cfg, err := config.Load(name, args)
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file, for unattended runs from packaging scripts.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NewConsoleLogger(os.Stdout, os.Getenv("NO_COLOR") == "")
	if cfg.Debug {
		f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			fileLogger := app.NewFileLogger(f)
			fileLogger.Infof("main", "debug logging enabled")
			logger = app.MultiLogger{logger, fileLogger}
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg.OutputDir)
	a.Logger = logger
	a.FontPath = cfg.FontPath
	a.QRPayload = cfg.QRPayload
	a.Preview = cfg.Preview
	a.Framebuffer = cfg.Framebuffer

	paths, err := a.Run(ctx)
	if err != nil {
		logger.Errorf("main", "generation failed: %v", err)
		return 1
	}

	fmt.Println()
	logger.Infof("main", "all assets created successfully")
	for _, p := range paths {
		fmt.Println("  -", p)
	}
	return 0
}
