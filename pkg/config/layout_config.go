package config

// 布局配置常量
// 本文件定义窗口尺寸和屏幕上控制按钮的位置

const (
	// DefaultWindowWidth 默认窗口宽度（像素）
	DefaultWindowWidth = 1280
	// DefaultWindowHeight 默认窗口高度（像素）
	DefaultWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Solar System"
)

// 控制按钮ID
const (
	ControlZoomIn             = "zoomIn"
	ControlZoomOut            = "zoomOut"
	ControlToggleTrajectories = "toggleTrajectories"
)

// 控制按钮布局（屏幕左上角纵向排列）
const (
	ControlButtonX       = 16.0
	ControlButtonY       = 16.0
	ControlButtonWidth   = 150.0
	ControlButtonHeight  = 32.0
	ControlButtonSpacing = 8.0
	ControlFontSize      = 16.0
)

// ControlButtonSpec 描述一个控制按钮
type ControlButtonSpec struct {
	ID    string
	Label string
}

// ControlButtons 返回按从上到下顺序排列的控制按钮
func ControlButtons() []ControlButtonSpec {
	return []ControlButtonSpec{
		{ID: ControlZoomIn, Label: "Zoom In"},
		{ID: ControlZoomOut, Label: "Zoom Out"},
		{ID: ControlToggleTrajectories, Label: "Toggle Orbits"},
	}
}

// ControlButtonPosition 返回第 index 个按钮左上角的屏幕坐标
func ControlButtonPosition(index int) (float64, float64) {
	y := ControlButtonY + float64(index)*(ControlButtonHeight+ControlButtonSpacing)
	return ControlButtonX, y
}
