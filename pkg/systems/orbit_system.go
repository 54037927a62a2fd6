package systems

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// OrbitSystem 推进天体的轨道运动
//
// 每次 Update 为一个 tick：角度按固定步长增加（与帧率无关，
// 不使用 deltaTime），位置由角度和轨道半径重新计算。
// 行星先于卫星更新，卫星总是使用宿主本 tick 的新位置。
type OrbitSystem struct {
	entityManager *ecs.EntityManager
	ticks         uint64
}

// NewOrbitSystem 创建轨道运动系统
func NewOrbitSystem(em *ecs.EntityManager) *OrbitSystem {
	return &OrbitSystem{
		entityManager: em,
	}
}

// Update 推进一个 tick
func (s *OrbitSystem) Update(deltaTime float64) {
	s.step()
}

// Tick 连续推进 n 个 tick（供无窗口工具和测试使用）
func (s *OrbitSystem) Tick(n int) {
	for i := 0; i < n; i++ {
		s.step()
	}
}

// Ticks 返回已推进的 tick 数
func (s *OrbitSystem) Ticks() uint64 {
	return s.ticks
}

func (s *OrbitSystem) step() {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.OrbitComponent, *components.TransformComponent](em) {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		orbit.Angle = WrapAngle(orbit.Angle + orbit.AngularStep)
		transform.Position = orbitPosition(orbit.OrbitRadius, orbit.Angle)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SatelliteComponent, *components.TransformComponent](em) {
		sat, _ := ecs.GetComponent[*components.SatelliteComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		sat.Angle = WrapAngle(sat.Angle + sat.AngularStep)

		// 宿主不存在时卫星停留在原位
		host, ok := ecs.GetComponent[*components.TransformComponent](em, sat.Host)
		if !ok {
			continue
		}
		transform.Position = host.Position.Add(orbitPosition(sat.OrbitRadius, sat.Angle))
	}

	s.ticks++
}

// WrapAngle 将角度规范到 [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func orbitPosition(r, angle float64) math32.Vector3 {
	return math32.Vec3(float32(r*math.Cos(angle)), 0, float32(r*math.Sin(angle)))
}
