package components

import (
	"image/color"

	"github.com/decker502/solarsystem/internal/texture"
)

// SphereComponent 球体网格的外观
type SphereComponent struct {
	// Radius 球体半径（世界单位）
	Radius float64

	// Segments 经线/纬线分段数
	Segments int

	// Color 基础颜色；有纹理时作为纹理未就绪时的占位材质
	Color color.RGBA

	// Emissive 自发光（不受光照影响，如太阳）
	Emissive bool

	// Texture 异步加载的纹理句柄，可为 nil
	Texture *texture.Handle
}
