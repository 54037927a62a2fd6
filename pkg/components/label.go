package components

import "github.com/hajimehoshi/ebiten/v2"

// LabelComponent 始终朝向相机的文字标签（billboard）
//
// 标签实体通过 TransformComponent.Parent 挂载到天体上。
type LabelComponent struct {
	// Text 标签文字
	Text string

	// Image 预先栅格化的文字图片，为 nil 时不绘制
	Image *ebiten.Image

	// WorldWidth, WorldHeight 标签在世界坐标中的尺寸
	WorldWidth  float64
	WorldHeight float64
}
