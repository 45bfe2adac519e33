package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownDestination is returned by Navigate when no scene can be built
// for the destination.
var ErrUnknownDestination = errors.New("unknown destination")

// SceneFactory 场景工厂函数类型
// 用于创建指定目的地的页面场景，避免循环依赖
type SceneFactory func(destinationID string) Scene

// SceneManager manages which destination page is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentDestination 返回当前目的地 ID
func (sm *SceneManager) CurrentDestination() string {
	return sm.currentID
}

// Navigate 切换到指定目的地的页面
// destinationID: 菜单项 ID，如 "home", "inbox"
func (sm *SceneManager) Navigate(destinationID string) error {
	if destinationID == sm.currentID && sm.currentScene != nil {
		return nil
	}
	if sm.sceneFactory == nil {
		return fmt.Errorf("%w: %q (no scene factory)", ErrUnknownDestination, destinationID)
	}

	newScene := sm.sceneFactory(destinationID)
	if newScene == nil {
		return fmt.Errorf("%w: %q", ErrUnknownDestination, destinationID)
	}

	sm.SwitchTo(newScene)
	sm.currentID = destinationID
	log.Printf("[SceneManager] 切换到页面: %s", destinationID)
	return nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
