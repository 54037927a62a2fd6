package systems

import (
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.PointerInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input utils.PointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
// 检测指针位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.Position()
	mousePressed := s.input.IsPressed(ebiten.MouseButtonLeft)
	mouseReleased := s.input.IsJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !isPointInRect(float64(mouseX), float64(mouseY), pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case mousePressed:
			button.State = components.UIClicked
		case mouseReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}

// HitTest 屏幕坐标是否落在任一按钮上
// 相机控制据此忽略从按钮上开始的拖拽
func (s *ButtonSystem) HitTest(x, y int) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if isPointInRect(float64(x), float64(y), pos.X, pos.Y, button.Width, button.Height) {
			return true
		}
	}
	return false
}

// isPointInRect 检测点是否在矩形范围内
func isPointInRect(px, py, x, y, width, height float64) bool {
	return px >= x &&
		px <= x+width &&
		py >= y &&
		py <= y+height
}
