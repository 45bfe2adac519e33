package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences 用户偏好
// 在桌面端、移动端和终端之间共用同一份存储
type Preferences struct {
	LastEntryID  string `yaml:"lastEntryId"`  // 上次选中的菜单项，空表示使用默认
	Animate      bool   `yaml:"animate"`      // 选择时是否播放波浪动画
	SoundEnabled bool   `yaml:"soundEnabled"` // 选择时是否播放提示音
	Fullscreen   bool   `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *Preferences {
	return &Preferences{
		Animate:      true,
		SoundEnabled: true,
	}
}

// 存储路径常量
const (
	preferencesObject   = "preferences"
	preferencesProperty = "global"
)

// PreferencesManager 偏好管理器
// 负责偏好的加载、保存和内存管理
type PreferencesManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	prefs        *Preferences
}

// OpenStore 打开 gdata 存储
//
// 失败时返回 nil 和错误，调用方应以 nil 进入降级模式。
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata store %q: %w", appName, err)
	}
	return m, nil
}

// NewPreferencesManager 创建偏好管理器并加载已保存的偏好
//
// 加载失败不是致命错误，使用默认偏好。
func NewPreferencesManager(gdataManager *gdata.Manager) *PreferencesManager {
	pm := &PreferencesManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[PreferencesManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return pm
}

// Load 从 gdata 加载偏好
//
// gdataManager 为 nil 或没有存档时使用默认偏好。
func (pm *PreferencesManager) Load() error {
	if pm.gdataManager == nil || !pm.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		pm.prefs = DefaultPreferences()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	// 从默认值开始解码，旧存档缺少的字段保持默认
	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	pm.prefs = loaded
	log.Printf("[PreferencesManager] Preferences loaded (last entry %q)", loaded.LastEntryID)
	return nil
}

// Save 保存偏好到 gdata
//
// 降级模式下不持久化，也不报错。
func (pm *PreferencesManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[PreferencesManager] Preferences saved")
	return nil
}

// Persistent 报告偏好是否会被持久化
func (pm *PreferencesManager) Persistent() bool {
	return pm.gdataManager != nil
}

// GetPreferences 返回当前偏好
func (pm *PreferencesManager) GetPreferences() *Preferences {
	return pm.prefs
}

// SetLastEntryID 记录最近选中的菜单项
// 仅修改内存，需调用 Save() 持久化
func (pm *PreferencesManager) SetLastEntryID(id string) {
	pm.prefs.LastEntryID = id
}

// SetAnimate 设置动画开关
func (pm *PreferencesManager) SetAnimate(enabled bool) {
	pm.prefs.Animate = enabled
}

// SetSoundEnabled 设置提示音开关
func (pm *PreferencesManager) SetSoundEnabled(enabled bool) {
	pm.prefs.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (pm *PreferencesManager) SetFullscreen(enabled bool) {
	pm.prefs.Fullscreen = enabled
}
