package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/solarsystem/pkg/app"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 环境变量提供默认值，命令行参数覆盖
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	verbose := flag.Bool("verbose", envCfg.Verbose, "Enable verbose logging")
	configPath := flag.String("config", envCfg.ConfigPath, "Scene config file (embedded path or disk path)")
	width := flag.Int("width", envCfg.Width, "Initial window width")
	height := flag.Int("height", envCfg.Height, "Initial window height")
	seed := flag.Int64("seed", envCfg.Seed, "Random seed for initial planet phases (0 = time based)")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameApp, err := app.NewApp(ctx, app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Width:      *width,
		Height:     *height,
		Seed:       *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] %v", err)
	}
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
