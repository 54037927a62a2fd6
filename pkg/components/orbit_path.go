package components

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// OrbitPathComponent 静态的圆形轨道线
// 几何数据在创建后不再变化，只有可见性会被切换
type OrbitPathComponent struct {
	// Radius 轨道半径
	Radius float64

	// Points 闭合折线的顶点（首尾重合），位于 XZ 平面
	Points []math32.Vector3

	// Color 线条颜色
	Color color.RGBA
}
