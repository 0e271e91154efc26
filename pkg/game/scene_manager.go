package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a SceneManager with no active scene; use SwitchTo to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
// 旧场景实现了 Closer 时先关闭它
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if closer, ok := sm.currentScene.(Closer); ok {
			if err := closer.Close(); err != nil {
				log.Printf("[SceneManager] Warning: failed to close scene: %v", err)
			}
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene and forwards its error.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 关闭当前场景（如果它实现了 Closer）
func (sm *SceneManager) Close() error {
	if closer, ok := sm.currentScene.(Closer); ok {
		return closer.Close()
	}
	return nil
}
