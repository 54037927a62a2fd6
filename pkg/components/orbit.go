package components

import "github.com/decker502/solarsystem/pkg/ecs"

// OrbitComponent 绕原点运行的天体轨道状态
//
// 角度每帧增加 AngularStep 并保持在 [0, 2π) 内，
// 位置 = (OrbitRadius·cos(Angle), 0, OrbitRadius·sin(Angle))。
type OrbitComponent struct {
	// Name 天体名称（如 "Earth"）
	Name string

	// OrbitRadius 轨道半径，构建后不再变化
	OrbitRadius float64

	// Angle 当前轨道相位（弧度）
	Angle float64

	// AngularStep 每帧角度增量（弧度/帧）
	AngularStep float64
}

// SatelliteComponent 绕宿主天体运行的卫星
//
// 宿主在构建时通过实体ID绑定，运行时不再按名称查找。
// 宿主实体不存在时卫星停留在最后的位置。
type SatelliteComponent struct {
	// Name 卫星名称
	Name string

	// Host 宿主天体实体ID
	Host ecs.EntityID

	// OrbitRadius 绕宿主的轨道半径
	OrbitRadius float64

	// HostOrbitRadius 宿主绕太阳的轨道半径（构建时按值记录）
	HostOrbitRadius float64

	// Angle 当前轨道相位（弧度）
	Angle float64

	// AngularStep 每帧角度增量（弧度/帧）
	AngularStep float64
}
