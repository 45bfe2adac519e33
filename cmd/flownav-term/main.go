// flownav-term 在终端中运行波浪导航栏
//
// 用法:
//
//	flownav-term [-config data/navbar.yaml] [-rows 4] [-nosound] [-log flownav-term.log]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/app"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/termhost"
)

var (
	configPath = flag.String("config", app.DefaultConfigPath, "导航栏配置文件路径，不存在时使用内置菜单")
	rows       = flag.Int("rows", 4, "导航栏占用的终端行数")
	noSound    = flag.Bool("nosound", false, "禁用提示音")
	logPath    = flag.String("log", "", "日志文件路径（终端被界面占用，默认不输出日志）")
)

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	file, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	prefs := app.OpenPreferences(app.DefaultAppName)
	entries := navigation.EntriesFromConfig(file.Menu)
	var opts []navigation.Option
	for i, e := range entries {
		if e.ID == prefs.GetPreferences().LastEntryID {
			opts = append(opts, navigation.WithInitialIndex(i))
		}
	}

	bar, err := navigation.New(entries, termhost.FitConfig(file.NavBar, *rows), anim.NewWallClock(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "导航栏初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// 崩溃时先恢复终端，再打印堆栈
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "flownav-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	var tones *termhost.ToneManager
	if !*noSound {
		tones = termhost.NewToneManager()
		// 音频不可用不影响运行
		if err := tones.Initialize(); err != nil {
			log.Printf("[Term] Audio initialization failed: %v", err)
		}
	}

	termhost.NewHost(screen, bar, prefs, tones).Run()

	screen.Fini()
	if tones != nil {
		tones.Cleanup()
	}
	if err := prefs.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "偏好保存失败: %v\n", err)
	}
}

func setupLog(path string) error {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

// loadConfig 读取配置文件；文件不存在时退回内置菜单
func loadConfig(path string) (*config.NavBarFile, error) {
	file, err := config.LoadNavBarConfig(path)
	if err == nil {
		log.Printf("[Config] 加载导航栏配置: %s", path)
		return file, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	log.Printf("[Config] %s not found, using built-in menu", path)
	return &config.NavBarFile{NavBar: config.DefaultNavBarConfig(), Menu: config.DefaultMenu()}, nil
}
