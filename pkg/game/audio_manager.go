package game

import (
	"log"

	"github.com/gonewx/flownav/pkg/tone"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 桌面和移动端通过 ebiten 音频上下文播放选择提示音。
// 每个菜单项一个播放器，首次播放时合成并缓存。
type AudioManager struct {
	context *audio.Context        // 可为 nil（无音频）
	prefs   *PreferencesManager   // 读取 SoundEnabled，可为 nil
	players map[int]*audio.Player // 菜单项序号 -> 播放器
}

// NewAudioContext 返回全局音频上下文
// ebiten 只允许创建一次，已存在时直接复用。
func NewAudioContext() *audio.Context {
	if c := audio.CurrentContext(); c != nil {
		return c
	}
	return audio.NewContext(int(tone.SampleRate))
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - context: 音频上下文，nil 表示禁用音频
//   - prefs: 偏好管理器（可为 nil，视为音效开启）
func NewAudioManager(context *audio.Context, prefs *PreferencesManager) *AudioManager {
	if context != nil && context.SampleRate() != int(tone.SampleRate) {
		log.Printf("[AudioManager] Warning: context sample rate %d, tones are %d Hz", context.SampleRate(), int(tone.SampleRate))
	}
	return &AudioManager{
		context: context,
		prefs:   prefs,
		players: make(map[int]*audio.Player),
	}
}

// PlaySelect 播放菜单项 index 的提示音
// 返回是否实际播放
func (am *AudioManager) PlaySelect(index int) bool {
	if am.context == nil {
		return false
	}
	if am.prefs != nil && !am.prefs.GetPreferences().SoundEnabled {
		return false
	}

	player := am.player(index)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind tone %d: %v", index, err)
	}
	player.Play()
	return true
}

// Preload 预先合成前 count 个菜单项的提示音，避免首次播放时的延迟
func (am *AudioManager) Preload(count int) {
	if am.context == nil {
		return
	}
	for i := 0; i < count; i++ {
		am.player(i)
	}
	log.Printf("[AudioManager] Preloaded %d tones", count)
}

func (am *AudioManager) player(index int) *audio.Player {
	if p, ok := am.players[index]; ok {
		return p
	}
	p := am.context.NewPlayerFromBytes(tone.PCM(tone.ForIndex(index)))
	am.players[index] = p
	return p
}
