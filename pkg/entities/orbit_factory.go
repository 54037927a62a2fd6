package entities

import (
	"image/color"
	"math"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// DefaultOrbitSegments 轨道线默认分段数
const DefaultOrbitSegments = 64

// NewOrbitPathEntity 创建圆形轨道线
//
// 在 XY 平面上按 segments 等分采样圆周（segments+1 个点，首尾重合），
// 再绕 X 轴旋转 π/2 放到水平面，加入 "orbits" 可见性分组。
func NewOrbitPathEntity(em *ecs.EntityManager, radius float64, segments int, c color.RGBA, visible bool) ecs.EntityID {
	if segments < 3 {
		segments = DefaultOrbitSegments
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.OrbitPathComponent{
		Radius: radius,
		Points: CirclePoints(radius, segments),
		Color:  c,
	})
	ecs.AddComponent(em, entity, &components.VisibilityComponent{
		Visible: visible,
		Group:   components.VisibilityGroupOrbits,
	})
	return entity
}

// CirclePoints 采样水平面上的闭合圆
func CirclePoints(radius float64, segments int) []math32.Vector3 {
	var rot math32.Matrix4
	rot.SetRotationX(math.Pi / 2)

	points := make([]math32.Vector3, segments+1)
	for i := 0; i <= segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		p := math32.Vec3(float32(radius*math.Cos(t)), float32(radius*math.Sin(t)), 0)
		points[i] = p.MulMatrix4(&rot)
	}
	// 消除浮点误差，保证闭合
	points[segments] = points[0]
	return points
}
