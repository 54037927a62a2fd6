package components

// PositionComponent 屏幕坐标（用于覆盖在 3D 场景上的 UI 元素）
type PositionComponent struct {
	X, Y float64
}
