package systems

import (
	"errors"
	"log"

	"github.com/decker502/solarsystem/internal/texture"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/game"
)

// TexturePoller 分发排队中的纹理加载
type TexturePoller interface {
	PollTextures() int
}

// TextureSystem 跟踪球体纹理的加载进度
//
// 每帧分发排队中的加载任务；纹理完成后在游戏线程上传，
// 失败的纹理只记录一次警告，渲染时使用占位材质。
type TextureSystem struct {
	entityManager *ecs.EntityManager
	poller        TexturePoller
	settled       map[*texture.Handle]texture.State
}

// NewTextureSystem 创建纹理跟踪系统
func NewTextureSystem(em *ecs.EntityManager, poller TexturePoller) *TextureSystem {
	return &TextureSystem{
		entityManager: em,
		poller:        poller,
		settled:       make(map[*texture.Handle]texture.State),
	}
}

// Update 分发加载任务并处理已完成的纹理
func (s *TextureSystem) Update(deltaTime float64) {
	if s.poller != nil {
		s.poller.PollTextures()
	}

	for _, id := range ecs.GetEntitiesWith1[*components.SphereComponent](s.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		h := sphere.Texture
		if h == nil {
			continue
		}
		if _, done := s.settled[h]; done {
			continue
		}

		_, err := game.TextureImage(h)
		switch {
		case err == nil:
			s.settled[h] = texture.StateLoaded
			log.Printf("[TextureSystem] Texture ready: %s", h.Path())
		case errors.Is(err, game.ErrTextureNotReady):
			// 仍在加载
		default:
			s.settled[h] = texture.StateFailed
			log.Printf("[TextureSystem] Warning: %v (using placeholder material)", err)
		}
	}
}

// Pending 返回仍未完成的纹理数量
func (s *TextureSystem) Pending() int {
	pending := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SphereComponent](s.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		if sphere.Texture != nil && sphere.Texture.State() == texture.StatePending {
			pending++
		}
	}
	return pending
}
