// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入接口
// 统一鼠标和触摸输入，便于在测试中注入模拟输入
type PointerInput interface {
	// Position 当前指针位置（屏幕坐标）
	Position() (x, y int)
	// IsPressed 按键是否处于按下状态
	IsPressed(button ebiten.MouseButton) bool
	// IsJustPressed 按键是否在本帧刚按下
	IsJustPressed(button ebiten.MouseButton) bool
	// IsJustReleased 按键是否在本帧刚释放
	IsJustReleased(button ebiten.MouseButton) bool
	// Wheel 本帧滚轮偏移
	Wheel() (dx, dy float64)
}

// KeyboardInput 键盘输入接口
type KeyboardInput interface {
	// IsKeyJustPressed 按键是否在本帧刚按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 基于 Ebitengine 的输入实现
// 第一个触摸点等同于鼠标左键
type EbitenInput struct {
	// 保存最后一次触摸位置（用于触摸释放时获取位置）
	lastTouchX, lastTouchY int
}

// NewEbitenInput 创建 Ebitengine 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Position 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func (in *EbitenInput) Position() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		in.lastTouchX, in.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return in.lastTouchX, in.lastTouchY
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return in.lastTouchX, in.lastTouchY
	}
	return ebiten.CursorPosition()
}

// IsPressed 检查是否有指针按下
func (in *EbitenInput) IsPressed(button ebiten.MouseButton) bool {
	if button == ebiten.MouseButtonLeft && len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(button)
}

// IsJustPressed 检查是否刚刚按下指针
func (in *EbitenInput) IsJustPressed(button ebiten.MouseButton) bool {
	if button == ebiten.MouseButtonLeft {
		if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
			in.lastTouchX, in.lastTouchY = ebiten.TouchPosition(touchIDs[0])
			return true
		}
	}
	return inpututil.IsMouseButtonJustPressed(button)
}

// IsJustReleased 检查是否刚刚释放指针
func (in *EbitenInput) IsJustReleased(button ebiten.MouseButton) bool {
	if button == ebiten.MouseButtonLeft && len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(button)
}

// Wheel 获取滚轮偏移
func (in *EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// IsKeyJustPressed 检查按键是否刚刚按下
func (in *EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// ============================================================================
// 拖拽状态跟踪 - 用于相机的旋转和平移
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// PrevX, PrevY 上一帧位置，用于计算帧间位移
	PrevX, PrevY int
}

// DragTracker 跟踪单个按键的拖拽状态
type DragTracker struct {
	button ebiten.MouseButton
	info   DragInfo
}

// NewDragTracker 创建指定按键的拖拽跟踪器
func NewDragTracker(button ebiten.MouseButton) *DragTracker {
	return &DragTracker{button: button}
}

// Update 更新拖拽状态（每帧调用一次）
func (dt *DragTracker) Update(input PointerInput) {
	switch dt.info.State {
	case DragStateNone:
		if input.IsJustPressed(dt.button) {
			x, y := input.Position()
			dt.info = DragInfo{
				State:    DragStateStarted,
				StartX:   x,
				StartY:   y,
				CurrentX: x,
				CurrentY: y,
				PrevX:    x,
				PrevY:    y,
			}
		}

	case DragStateStarted, DragStateDragging:
		dt.info.PrevX, dt.info.PrevY = dt.info.CurrentX, dt.info.CurrentY
		if !input.IsPressed(dt.button) {
			dt.info.State = DragStateEnded
			return
		}
		dt.info.State = DragStateDragging
		dt.info.CurrentX, dt.info.CurrentY = input.Position()

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置
		dt.Reset()
		dt.Update(input)
	}
}

// Reset 重置拖拽状态
func (dt *DragTracker) Reset() {
	dt.info = DragInfo{}
}

// GetState 获取当前拖拽状态
func (dt *DragTracker) GetState() DragState {
	return dt.info.State
}

// GetInfo 获取完整拖拽信息
func (dt *DragTracker) GetInfo() DragInfo {
	return dt.info
}

// IsDragging 是否正在拖拽
func (dt *DragTracker) IsDragging() bool {
	return dt.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dt *DragTracker) JustStarted() bool {
	return dt.info.State == DragStateStarted
}

// Delta 本帧相对上一帧的位移，非拖拽中返回 0
func (dt *DragTracker) Delta() (dx, dy int) {
	if dt.info.State != DragStateDragging {
		return 0, 0
	}
	return dt.info.CurrentX - dt.info.PrevX, dt.info.CurrentY - dt.info.PrevY
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dt *DragTracker) GetDragDistance() (dx, dy int) {
	return dt.info.CurrentX - dt.info.StartX, dt.info.CurrentY - dt.info.StartY
}
