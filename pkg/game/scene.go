package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a viewer scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收窗口尺寸变化
//
// 实现此接口的场景会在 Layout 报告新的外部尺寸时被调用 Resize()
type Resizable interface {
	// Resize 更新相机宽高比和渲染目标尺寸
	Resize(width, height int)
}
