package systems

import (
	"log"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// VisibilitySystem 管理按分组共享的可见性开关
// 同一分组（如所有轨道线）共用一个标志
type VisibilitySystem struct {
	entityManager *ecs.EntityManager
	groups        map[string]bool
}

// NewVisibilitySystem 创建可见性系统
func NewVisibilitySystem(em *ecs.EntityManager) *VisibilitySystem {
	return &VisibilitySystem{
		entityManager: em,
		groups:        make(map[string]bool),
	}
}

// SetGroupVisible 设置分组标志并应用到分组内所有实体
// 返回受影响的实体数量
func (s *VisibilitySystem) SetGroupVisible(group string, visible bool) int {
	s.groups[group] = visible

	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.VisibilityComponent](s.entityManager) {
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)
		if vis.Group != group {
			continue
		}
		vis.Visible = visible
		count++
	}
	return count
}

// ToggleGroup 翻转分组标志并应用，返回新的标志
func (s *VisibilitySystem) ToggleGroup(group string) bool {
	visible := !s.IsGroupVisible(group)
	n := s.SetGroupVisible(group, visible)
	log.Printf("[VisibilitySystem] Group %q visible=%v (%d entities)", group, visible, n)
	return visible
}

// IsGroupVisible 返回分组标志
// 未设置过的分组以第一个成员的可见性为准，没有成员时视为可见
func (s *VisibilitySystem) IsGroupVisible(group string) bool {
	if visible, ok := s.groups[group]; ok {
		return visible
	}
	for _, id := range ecs.GetEntitiesWith1[*components.VisibilityComponent](s.entityManager) {
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)
		if vis.Group == group {
			return vis.Visible
		}
	}
	return true
}

// IsVisible 实体是否需要渲染，没有 VisibilityComponent 的实体总是可见
func IsVisible(em *ecs.EntityManager, id ecs.EntityID) bool {
	vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, id)
	return !ok || vis.Visible
}
