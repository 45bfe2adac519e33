package config

// 窗口配置常量
const (
	// DefaultWindowWidth 是桌面窗口的初始宽度（竖屏手机比例）
	DefaultWindowWidth = 480

	// DefaultWindowHeight 是桌面窗口的初始高度
	DefaultWindowHeight = 800

	// WindowTitle 是桌面窗口标题
	WindowTitle = "FlowNav"
)
