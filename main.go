package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/spheresmash/pkg/app"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "外部配置文件（YAML），为空时使用内置配置")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Sphere Smash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] Warning: close: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
