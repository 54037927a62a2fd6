package entities

import (
	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// NewCameraEntity 创建透视相机
// 宽高比取视口宽高之比
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig, width, height int) ecs.EntityID {
	entity := em.CreateEntity()

	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	ecs.AddComponent(em, entity, &components.CameraComponent{
		Position:      vec3(cfg.Position),
		Target:        vec3(cfg.Target),
		Up:            math32.Vec3(0, 1, 0),
		FOV:           float32(cfg.FOV),
		Aspect:        aspect,
		Near:          float32(cfg.Near),
		Far:           float32(cfg.Far),
		EnableZoom:    cfg.EnableZoom,
		EnablePan:     cfg.EnablePan,
		DampingFactor: cfg.DampingFactor,
		RotateSpeed:   cfg.RotateSpeed,
		MinDistance:   cfg.MinDistance,
		MaxDistance:   cfg.MaxDistance,
		DollyScale:    1,
	})
	return entity
}

// NewLightEntities 创建环境光和点光源
func NewLightEntities(em *ecs.EntityManager, cfg config.LightsConfig) []ecs.EntityID {
	ambient := em.CreateEntity()
	ecs.AddComponent(em, ambient, &components.LightComponent{
		Type:      components.LightAmbient,
		Color:     cfg.Ambient.Color(),
		Intensity: 1,
	})

	point := em.CreateEntity()
	ecs.AddComponent(em, point, &components.LightComponent{
		Type:      components.LightPoint,
		Color:     cfg.Point.Color.Color(),
		Intensity: cfg.Point.Intensity,
		Position:  vec3(cfg.Point.Position),
	})

	return []ecs.EntityID{ambient, point}
}

func vec3(v [3]float64) math32.Vector3 {
	return math32.Vec3(float32(v[0]), float32(v[1]), float32(v[2]))
}
