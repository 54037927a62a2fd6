package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 屏幕控制按钮（ECS 架构）
// 包含按钮的所有数据：标识、外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - UIID 是控制按钮的标识（zoomIn / zoomOut / toggleTrajectories），
//     InputSystem 通过它绑定回调
type ButtonComponent struct {
	// UIID 按钮标识
	UIID string

	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA

	// ===== 外观 =====
	// Background 各状态下的背景色（按 UIState 索引）
	Background [4]color.RGBA

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数，未绑定时为 nil
	OnClick func()
}
