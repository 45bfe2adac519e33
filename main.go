package main

import (
	"flag"
	"log"

	"github.com/gonewx/flownav/pkg/app"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "导航栏配置文件路径（默认使用内置配置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.Preferences().GetPreferences().Fullscreen)

	// 窗口关闭时 Update 返回 ebiten.Termination，RunGame 正常返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
