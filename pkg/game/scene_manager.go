package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the viewer's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	// 最近一次的窗口尺寸，切换场景时转发给新场景
	width, height int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 如果已知窗口尺寸且新场景实现了 Resizable，立即同步尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if scene == nil {
		return
	}
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched scene: %T", scene)
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录窗口尺寸并转发给当前场景
// 尺寸未变化时不做任何事
func (sm *SceneManager) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Size 返回最近一次记录的窗口尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update delegates the update call to the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw delegates the draw call to the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
