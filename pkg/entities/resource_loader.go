package entities

import (
	"github.com/decker502/solarsystem/internal/texture"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceLoader 实体工厂需要的资源加载能力
// 由 game.ResourceManager 实现
type ResourceLoader interface {
	LoadTextureAsync(ref string) *texture.Handle
	LoadFont(name string, size float64) (*text.GoTextFace, error)
}
