package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrControlNotFound 绑定按钮时找不到对应 UIID 的按钮
var ErrControlNotFound = errors.New("control not found")

// Viewport 可调整尺寸的渲染目标
type Viewport interface {
	SetSize(width, height int)
}

// InputSystem 处理缩放、轨道线开关、窗口尺寸变化和键盘快捷键
//
// 所有动作都是同步的，只修改相机位置和可见性标志，不会触碰天体角度。
type InputSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	visibility    *VisibilitySystem
	viewport      Viewport
	keyboard      utils.KeyboardInput
	zoomStep      float32

	// OnToggleFullscreen F11 回调，可为 nil
	OnToggleFullscreen func()
	// OnLabelsChanged 标签显示切换后的回调，可为 nil
	OnLabelsChanged func(visible bool)
}

// NewInputSystem 创建输入系统
//
// 参数：
//   - em: 实体管理器
//   - cameraEntity: 相机实体ID
//   - visibility: 可见性系统（轨道线、标签开关）
//   - viewport: 渲染目标（窗口尺寸变化时调整）
//   - keyboard: 键盘输入，可为 nil（不处理快捷键）
//   - zoomStep: 每次缩放沿 z 轴移动的距离
func NewInputSystem(
	em *ecs.EntityManager,
	cameraEntity ecs.EntityID,
	visibility *VisibilitySystem,
	viewport Viewport,
	keyboard utils.KeyboardInput,
	zoomStep float64,
) *InputSystem {
	return &InputSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		visibility:    visibility,
		viewport:      viewport,
		keyboard:      keyboard,
		zoomStep:      float32(zoomStep),
	}
}

// Update 处理键盘快捷键
func (s *InputSystem) Update(deltaTime float64) {
	if s.keyboard == nil {
		return
	}

	switch {
	case s.keyboard.IsKeyJustPressed(ebiten.KeyEqual), s.keyboard.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.ZoomIn()
	case s.keyboard.IsKeyJustPressed(ebiten.KeyMinus), s.keyboard.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.ZoomOut()
	}

	if s.keyboard.IsKeyJustPressed(ebiten.KeyT) {
		s.ToggleOrbits()
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyL) {
		s.ToggleLabels()
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyF11) && s.OnToggleFullscreen != nil {
		s.OnToggleFullscreen()
	}
}

// ZoomIn 相机 z 坐标减少一个步长
func (s *InputSystem) ZoomIn() {
	if cam := s.camera(); cam != nil {
		cam.Position.Z -= s.zoomStep
	}
}

// ZoomOut 相机 z 坐标增加一个步长
func (s *InputSystem) ZoomOut() {
	if cam := s.camera(); cam != nil {
		cam.Position.Z += s.zoomStep
	}
}

// ToggleOrbits 翻转轨道线的共享可见性标志
func (s *InputSystem) ToggleOrbits() bool {
	return s.visibility.ToggleGroup(components.VisibilityGroupOrbits)
}

// ToggleLabels 翻转名称标签的共享可见性标志
func (s *InputSystem) ToggleLabels() bool {
	visible := s.visibility.ToggleGroup(components.VisibilityGroupLabels)
	if s.OnLabelsChanged != nil {
		s.OnLabelsChanged(visible)
	}
	return visible
}

// Resize 更新相机宽高比和渲染目标尺寸
// 非正尺寸被忽略
func (s *InputSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if cam := s.camera(); cam != nil {
		cam.Aspect = float32(width) / float32(height)
	}
	if s.viewport != nil {
		s.viewport.SetSize(width, height)
	}
	log.Printf("[InputSystem] Resized viewport to %dx%d", width, height)
}

// BindButtons 按 UIID 把动作绑定到按钮
// 任一按钮不存在时返回 ErrControlNotFound
func (s *InputSystem) BindButtons(ids ...string) error {
	actions := map[string]func(){
		config.ControlZoomIn:             s.ZoomIn,
		config.ControlZoomOut:            s.ZoomOut,
		config.ControlToggleTrajectories: func() { s.ToggleOrbits() },
	}

	for _, id := range ids {
		action, ok := actions[id]
		if !ok {
			return fmt.Errorf("%w: no action for %q", ErrControlNotFound, id)
		}
		button := s.findButton(id)
		if button == nil {
			return fmt.Errorf("%w: %q", ErrControlNotFound, id)
		}
		button.OnClick = action
	}
	return nil
}

func (s *InputSystem) findButton(id string) *components.ButtonComponent {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.UIID == id {
			return button
		}
	}
	return nil
}

func (s *InputSystem) camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}
