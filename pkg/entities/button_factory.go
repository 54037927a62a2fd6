package entities

import (
	"image/color"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/game"
)

// 控制按钮各状态的背景色（按 UIState 索引）
var controlButtonBackground = [4]color.RGBA{
	components.UINormal:   {R: 40, G: 44, B: 52, A: 200},
	components.UIHovered:  {R: 70, G: 76, B: 90, A: 220},
	components.UIClicked:  {R: 95, G: 110, B: 140, A: 240},
	components.UIDisabled: {R: 40, G: 40, B: 40, A: 120},
}

// NewControlButton 创建屏幕控制按钮实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源加载器（加载按钮字体）
//   - spec: 按钮ID和文字
//   - x, y: 按钮左上角位置（屏幕坐标）
//
// 回调由 InputSystem.BindButtons 按 UIID 绑定，创建时为 nil
func NewControlButton(em *ecs.EntityManager, rm ResourceLoader, spec config.ControlButtonSpec, x, y float64) (ecs.EntityID, error) {
	font, err := rm.LoadFont(game.FontRegular, config.ControlFontSize)
	if err != nil {
		return 0, err
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		UIID:       spec.ID,
		Text:       spec.Label,
		Font:       font,
		TextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background: controlButtonBackground,
		Width:      config.ControlButtonWidth,
		Height:     config.ControlButtonHeight,
		State:      components.UINormal,
		Enabled:    true,
	})

	return entity, nil
}

// NewControlButtons 按布局创建全部控制按钮
func NewControlButtons(em *ecs.EntityManager, rm ResourceLoader) ([]ecs.EntityID, error) {
	specs := config.ControlButtons()
	ids := make([]ecs.EntityID, 0, len(specs))
	for i, spec := range specs {
		x, y := config.ControlButtonPosition(i)
		id, err := NewControlButton(em, rm, spec, x, y)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
