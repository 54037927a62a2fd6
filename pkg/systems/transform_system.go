package systems

import (
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// TransformSystem 计算挂载实体的世界坐标
// 子实体 Position = 父实体 Position + Offset；父实体不存在时保持原位
type TransformSystem struct {
	entityManager *ecs.EntityManager
}

// NewTransformSystem 创建变换系统
func NewTransformSystem(em *ecs.EntityManager) *TransformSystem {
	return &TransformSystem{entityManager: em}
}

// Update 更新所有子实体的位置
func (s *TransformSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if transform.Parent == 0 {
			continue
		}
		parent, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, transform.Parent)
		if !ok {
			continue
		}
		transform.Position = parent.Position.Add(transform.Offset)
	}
}
