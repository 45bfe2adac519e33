package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/flownav/pkg/utils"
)

// Default navigation bar metrics in density independent units (dp).
// These are the values the bar was originally tuned with.
const (
	DefaultBarHeight           = 60.0
	DefaultIconSize            = 50.0
	DefaultBottomPadding       = 0.0
	DefaultWaveTopPadding      = 10.0
	DefaultTroughDepth         = 8.0
	DefaultAnimationDurationMs = 400
	DefaultDensity             = 1.0
)

// NavBarFile is the root of a navigation bar YAML document.
//
// 配置文件位置: data/navbar.yaml
type NavBarFile struct {
	NavBar NavBarConfig `yaml:"navbar"`
	Menu   []MenuItem   `yaml:"menu"`
}

// MenuItem describes one navigation entry as loaded from YAML.
type MenuItem struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Label string `yaml:"label"`
}

// DefaultMenu returns the stock five entry menu, used when no config file
// is available.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "home", Glyph: "H", Label: "Home"},
		{ID: "search", Glyph: "S", Label: "Search"},
		{ID: "create", Glyph: "+", Label: "Create"},
		{ID: "inbox", Glyph: "I", Label: "Inbox"},
		{ID: "profile", Glyph: "P", Label: "Profile"},
	}
}

// NavBarConfig holds the bar metrics in dp plus the density used to
// convert them into pixels.
//
// A nil pointer field means "not set" and is filled from the defaults by
// ApplyDefaults, so an explicit 0 for BottomPadding survives parsing.
type NavBarConfig struct {
	Height              *float64 `yaml:"height"`
	IconSize            *float64 `yaml:"iconSize"`
	BottomPadding       *float64 `yaml:"bottomPadding"`
	WaveTopPadding      *float64 `yaml:"waveTopPadding"`
	TroughDepth         *float64 `yaml:"troughDepth"`
	AnimationDurationMs *int     `yaml:"animationDurationMs"`
	Density             *float64 `yaml:"density"`
	Easing              string   `yaml:"easing"` // 波浪缓动曲线，默认 accelerateDecelerate
}

// Metrics is the resolved, pixel based view of a NavBarConfig.
// The navigation core consumes only this type.
type Metrics struct {
	Height            float64
	IconSize          float64
	BottomPadding     float64
	WaveTopPadding    float64
	TroughDepth       float64
	AnimationDuration time.Duration
	Easing            utils.EasingFunc
}

// DefaultNavBarConfig returns the stock configuration at density 1.
func DefaultNavBarConfig() NavBarConfig {
	var cfg NavBarConfig
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field with its default value.
func (c *NavBarConfig) ApplyDefaults() {
	setFloat(&c.Height, DefaultBarHeight)
	setFloat(&c.IconSize, DefaultIconSize)
	setFloat(&c.BottomPadding, DefaultBottomPadding)
	setFloat(&c.WaveTopPadding, DefaultWaveTopPadding)
	setFloat(&c.TroughDepth, DefaultTroughDepth)
	setFloat(&c.Density, DefaultDensity)
	if c.AnimationDurationMs == nil {
		ms := DefaultAnimationDurationMs
		c.AnimationDurationMs = &ms
	}
}

func setFloat(dst **float64, def float64) {
	if *dst == nil {
		v := def
		*dst = &v
	}
}

// Validate 验证配置有效性
//
// Unset fields are validated against their defaults, so a partially filled
// config is valid as long as the fields that are present make sense.
func (c NavBarConfig) Validate() error {
	cfg := c
	cfg.ApplyDefaults()

	if *cfg.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", *cfg.Density)
	}
	if *cfg.Height <= 0 {
		return fmt.Errorf("height must be positive, got %v", *cfg.Height)
	}
	if *cfg.IconSize <= 0 {
		return fmt.Errorf("iconSize must be positive, got %v", *cfg.IconSize)
	}
	if *cfg.BottomPadding < 0 {
		return fmt.Errorf("bottomPadding must not be negative, got %v", *cfg.BottomPadding)
	}
	if *cfg.WaveTopPadding < 0 || *cfg.WaveTopPadding >= *cfg.Height {
		return fmt.Errorf("waveTopPadding must be within [0, height), got %v", *cfg.WaveTopPadding)
	}
	if *cfg.TroughDepth < 0 {
		return fmt.Errorf("troughDepth must not be negative, got %v", *cfg.TroughDepth)
	}
	if *cfg.AnimationDurationMs < 0 {
		return fmt.Errorf("animationDurationMs must not be negative, got %d", *cfg.AnimationDurationMs)
	}
	if _, err := utils.EasingByName(cfg.Easing); err != nil {
		return err
	}
	return nil
}

// ToPixels converts a dp value into pixels at the configured density.
func (c NavBarConfig) ToPixels(dp float64) float64 {
	return dp * c.density()
}

// ToDp converts a pixel value back into dp at the configured density.
func (c NavBarConfig) ToDp(px float64) float64 {
	return px / c.density()
}

func (c NavBarConfig) density() float64 {
	if c.Density == nil || *c.Density <= 0 {
		return DefaultDensity
	}
	return *c.Density
}

// Metrics resolves the configuration into pixel metrics.
// Call Validate first; Metrics does not re-check the values.
func (c NavBarConfig) Metrics() Metrics {
	cfg := c
	cfg.ApplyDefaults()
	easing, err := utils.EasingByName(cfg.Easing)
	if err != nil {
		easing = utils.EaseAccelerateDecelerate
	}
	return Metrics{
		Height:            cfg.ToPixels(*cfg.Height),
		IconSize:          cfg.ToPixels(*cfg.IconSize),
		BottomPadding:     cfg.ToPixels(*cfg.BottomPadding),
		WaveTopPadding:    cfg.ToPixels(*cfg.WaveTopPadding),
		TroughDepth:       cfg.ToPixels(*cfg.TroughDepth),
		AnimationDuration: time.Duration(*cfg.AnimationDurationMs) * time.Millisecond,
		Easing:            easing,
	}
}

// WithDensity returns a copy of the config using the given density.
func (c NavBarConfig) WithDensity(density float64) NavBarConfig {
	cfg := c
	cfg.Density = &density
	return cfg
}

// ParseNavBarConfig 解析导航栏 YAML 配置
//
// Omitted navbar fields take their defaults. The menu list is returned as
// written; an empty menu is reported by the navigation core, not here.
func ParseNavBarConfig(data []byte) (*NavBarFile, error) {
	var file NavBarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse navbar config: %w", err)
	}

	file.NavBar.ApplyDefaults()
	if err := file.NavBar.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navbar config: %w", err)
	}

	for i, item := range file.Menu {
		if item.ID == "" {
			return nil, fmt.Errorf("invalid navbar config: menu item %d has no id", i)
		}
	}

	return &file, nil
}

// LoadNavBarConfig 加载导航栏配置文件
//
// 参数:
//   - path: 配置文件路径（如 "data/navbar.yaml"）
func LoadNavBarConfig(path string) (*NavBarFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navbar config: %w", err)
	}
	return ParseNavBarConfig(data)
}
