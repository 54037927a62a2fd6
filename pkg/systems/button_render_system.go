package systems

import (
	"image/color"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责在 3D 场景之上渲染所有控制按钮
//
// 职责：
//   - 按状态渲染按钮背景
//   - 渲染按钮文字（自动居中）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	s.drawButtonBackground(screen, button, pos.X, pos.Y)
	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// drawButtonBackground 按当前状态填充按钮背景并描边
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	state := button.State
	if int(state) < 0 || int(state) >= len(button.Background) {
		state = components.UINormal
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), button.Background[state], false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 1, color.RGBA{200, 200, 200, 160}, false)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	// 阴影偏移量
	shadowOffset := 1.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180}) // 半透明黑色阴影
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, button.Font, op)
}
