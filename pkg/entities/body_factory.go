package entities

import (
	"log"
	"math"
	"math/rand/v2"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// NewSunEntity 创建位于原点的太阳
// 自发光球体，没有轨道状态
func NewSunEntity(em *ecs.EntityManager, cfg *config.SolarSystemConfig) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.TransformComponent{})
	ecs.AddComponent(em, entity, &components.SphereComponent{
		Radius:   cfg.Sun.Size,
		Segments: cfg.SphereSegments,
		Color:    cfg.Sun.Color.Color(),
		Emissive: true,
	})

	log.Printf("[BodyFactory] Created sun (ID: %d, radius: %.1f)", entity, cfg.Sun.Size)
	return entity
}

// NewPlanetEntity 创建绕太阳运行的行星
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（异步加载纹理、加载标签字体）
//   - cfg: 场景配置（球体分段数、角速度、标签参数）
//   - planet: 行星配置
//   - rng: 随机数源，决定初始相位 [0, 2π)
//
// 纹理异步加载，未就绪或加载失败时渲染使用 planet.Color 作为占位材质；
// 标签作为子实体挂载在行星上。
func NewPlanetEntity(
	em *ecs.EntityManager,
	rm ResourceLoader,
	cfg *config.SolarSystemConfig,
	planet config.PlanetConfig,
	rng *rand.Rand,
) ecs.EntityID {
	entity := em.CreateEntity()
	angle := randomPhase(rng)

	ecs.AddComponent(em, entity, &components.OrbitComponent{
		Name:        planet.Name,
		OrbitRadius: planet.OrbitRadius,
		Angle:       angle,
		AngularStep: cfg.Motion.PlanetStep,
	})
	ecs.AddComponent(em, entity, &components.TransformComponent{
		Position: orbitOffset(planet.OrbitRadius, angle),
	})

	sphere := &components.SphereComponent{
		Radius:   planet.Size,
		Segments: cfg.SphereSegments,
		Color:    planet.Color.Color(),
	}
	if planet.Texture != "" {
		sphere.Texture = rm.LoadTextureAsync(planet.Texture)
	}
	ecs.AddComponent(em, entity, sphere)

	NewLabelEntity(em, rm, entity, planet.Name, cfg.Labels)

	log.Printf("[BodyFactory] Created planet %s (ID: %d, orbit: %.1f, angle: %.3f)",
		planet.Name, entity, planet.OrbitRadius, angle)
	return entity
}

// NewMoonEntity 创建绕宿主行星运行的卫星
//
// 宿主在构建时以实体ID绑定。host 为 0 或实体不存在时，
// 卫星停留在以 HostOrbitRadius 推算的初始位置，不再移动。
func NewMoonEntity(
	em *ecs.EntityManager,
	rm ResourceLoader,
	cfg *config.SolarSystemConfig,
	host ecs.EntityID,
	rng *rand.Rand,
) ecs.EntityID {
	moon := cfg.Moon
	entity := em.CreateEntity()
	angle := randomPhase(rng)

	ecs.AddComponent(em, entity, &components.SatelliteComponent{
		Name:            moon.Name,
		Host:            host,
		OrbitRadius:     moon.OrbitRadius,
		HostOrbitRadius: moon.HostOrbitRadius,
		Angle:           angle,
		AngularStep:     cfg.Motion.MoonStep,
	})

	hostPos := math32.Vec3(float32(moon.HostOrbitRadius), 0, 0)
	if hostTransform, ok := ecs.GetComponent[*components.TransformComponent](em, host); ok {
		hostPos = hostTransform.Position
	} else {
		log.Printf("[BodyFactory] Warning: moon %s has no host entity (%d), it will stay frozen", moon.Name, host)
	}
	ecs.AddComponent(em, entity, &components.TransformComponent{
		Position: hostPos.Add(orbitOffset(moon.OrbitRadius, angle)),
	})

	ecs.AddComponent(em, entity, &components.SphereComponent{
		Radius:   moon.Size,
		Segments: cfg.SphereSegments,
		Color:    moon.Color.Color(),
	})

	NewLabelEntity(em, rm, entity, moon.Name, cfg.Labels)

	log.Printf("[BodyFactory] Created moon %s (ID: %d, host: %d, orbit: %.1f)", moon.Name, entity, host, moon.OrbitRadius)
	return entity
}

// FindBodyByName 按名称查找绕太阳运行的天体
// 只在构建阶段调用一次，用于绑定卫星宿主
func FindBodyByName(em *ecs.EntityManager, name string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.OrbitComponent](em) {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
		if orbit.Name == name {
			return id, true
		}
	}
	return 0, false
}

// randomPhase 均匀分布于 [0, 2π) 的初始相位
func randomPhase(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// orbitOffset 水平面上半径为 r、相位为 angle 的偏移
func orbitOffset(r, angle float64) math32.Vector3 {
	return math32.Vec3(float32(r*math.Cos(angle)), 0, float32(r*math.Sin(angle)))
}
