package components

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// LightType 光源类型
type LightType int

const (
	// LightAmbient 环境光
	LightAmbient LightType = iota
	// LightPoint 点光源
	LightPoint
)

// LightComponent 场景光源
type LightComponent struct {
	Type      LightType
	Color     color.RGBA
	Intensity float64
	// Position 仅点光源使用
	Position math32.Vector3
}
