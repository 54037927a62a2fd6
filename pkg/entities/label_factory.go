package entities

import (
	"image/color"
	"log"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 标签画布尺寸（像素）
const (
	LabelCanvasWidth  = 300
	LabelCanvasHeight = 150

	// labelBaseline 文字基线距画布顶部的距离
	labelBaseline = 20
)

// NewLabelEntity 创建挂载在 parent 上的名称标签
//
// 文字栅格化到离屏图片上，由 RenderSystem 作为始终朝向相机的
// billboard 绘制。字体无法创建时 Image 为 nil，标签不会被绘制。
func NewLabelEntity(em *ecs.EntityManager, rm ResourceLoader, parent ecs.EntityID, label string, cfg config.LabelConfig) ecs.EntityID {
	entity := em.CreateEntity()

	var img *ebiten.Image
	face, err := rm.LoadFont(game.FontBold, cfg.FontSize)
	if err != nil {
		log.Printf("[LabelFactory] Warning: failed to load label font: %v", err)
	} else {
		img = RasterizeLabel(label, face, cfg.Color.Color())
	}

	var parentPos math32.Vector3
	if t, ok := ecs.GetComponent[*components.TransformComponent](em, parent); ok {
		parentPos = t.Position
	}
	offset := math32.Vec3(0, float32(cfg.OffsetY), 0)

	ecs.AddComponent(em, entity, &components.TransformComponent{
		Position: parentPos.Add(offset),
		Parent:   parent,
		Offset:   offset,
	})
	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:        label,
		Image:       img,
		WorldWidth:  cfg.ScaleX,
		WorldHeight: cfg.ScaleY,
	})
	ecs.AddComponent(em, entity, &components.VisibilityComponent{
		Visible: true,
		Group:   components.VisibilityGroupLabels,
	})
	return entity
}

// RasterizeLabel 把文字绘制到透明画布的左上角
// 超出画布的部分被裁剪
func RasterizeLabel(label string, face *text.GoTextFace, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(LabelCanvasWidth, LabelCanvasHeight)

	op := &text.DrawOptions{}
	op.GeoM.Translate(0, labelBaseline-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, label, face, op)
	return img
}
