// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/embedded"
	"github.com/gonewx/flownav/pkg/game"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/scenes"
	"github.com/gonewx/flownav/pkg/systems"
	"github.com/gonewx/flownav/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入的默认导航栏配置
const DefaultConfigPath = "data/navbar.yaml"

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "flownav"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 导航栏配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// AppName gdata 存储名，为空则使用 DefaultAppName
	AppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	bar          *navigation.NavBar
	prefs        *game.PreferencesManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	windowedWidth            int
	windowedHeight           int
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	file, err := LoadNavBarFile(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	prefs := OpenPreferences(cfg.AppName)

	entries := navigation.EntriesFromConfig(file.Menu)
	var opts []navigation.Option
	if i := indexOfID(entries, prefs.GetPreferences().LastEntryID); i >= 0 {
		opts = append(opts, navigation.WithInitialIndex(i))
		log.Printf("[App] Restoring last entry %q", entries[i].ID)
	}

	clock := &anim.ManualClock{}
	bar, err := navigation.New(entries, file.NavBar, clock, opts...)
	if err != nil {
		return nil, fmt.Errorf("导航栏初始化失败: %w", err)
	}

	fonts, err := game.NewFontCache()
	if err != nil {
		log.Printf("[App] Warning: %v (falling back to debug font)", err)
		fonts = nil
	}

	// 页面管理器：每个菜单项 ID 对应一个页面
	pages := game.NewSceneManager()
	pages.SetSceneFactory(func(destinationID string) game.Scene {
		i := bar.IndexByID(destinationID)
		if i < 0 {
			return nil
		}
		return scenes.NewPageScene(bar.Entries()[i], i, fonts)
	})
	navigation.SetupWithNavigator(bar, pages)
	if err := pages.Navigate(bar.SelectedEntry().ID); err != nil {
		return nil, fmt.Errorf("初始页面创建失败: %w", err)
	}

	navScene := scenes.NewNavBarScene(bar, clock, pages, prefs, systems.NewNavBarRenderSystem(fonts))
	audioManager := game.NewAudioManager(game.NewAudioContext(), prefs)
	audioManager.Preload(len(entries))
	navScene.SetAudioManager(audioManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(navScene)

	log.Printf("[App] Initialized with %d entries, starting at %q", len(entries), bar.SelectedEntry().ID)
	return &App{
		sceneManager:   sceneManager,
		bar:            bar,
		prefs:          prefs,
		verbose:        cfg.Verbose,
		windowedWidth:  config.DefaultWindowWidth,
		windowedHeight: config.DefaultWindowHeight,
	}, nil
}

// LoadNavBarFile 读取导航栏配置
// path 为空时读取嵌入的 data/navbar.yaml
func LoadNavBarFile(path string) (*config.NavBarFile, error) {
	if path != "" {
		file, err := config.LoadNavBarConfig(path)
		if err != nil {
			return nil, fmt.Errorf("导航栏配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载导航栏配置: %s", path)
		return file, nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	file, err := config.ParseNavBarConfig(data)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载嵌入导航栏配置: %s", DefaultConfigPath)
	return file, nil
}

// OpenPreferences 打开偏好存储
// 存储不可用时以降级模式（仅内存）继续
func OpenPreferences(appName string) *game.PreferencesManager {
	if appName == "" {
		appName = DefaultAppName
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	store, err := game.OpenStore(appName)
	if err != nil {
		log.Printf("[App] Warning: %v (preferences will not persist)", err)
		store = nil
	}
	return game.NewPreferencesManager(store)
}

func indexOfID(entries []navigation.MenuEntry, id string) int {
	if id == "" {
		return -1
	}
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时保存偏好
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowedWidth, a.windowedHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowedWidth, a.windowedHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.prefs.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			a.windowedWidth, a.windowedHeight = ebiten.WindowSize()
			ebiten.SetFullscreen(true)
			a.prefs.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 直接使用窗口尺寸，窗口缩放时导航栏随之重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// SaveOnExit 让当前场景保存状态
func (a *App) SaveOnExit() bool {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// NavBar 返回导航栏
func (a *App) NavBar() *navigation.NavBar {
	return a.bar
}

// Preferences 返回偏好管理器
func (a *App) Preferences() *game.PreferencesManager {
	return a.prefs
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
