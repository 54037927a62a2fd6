package components

import "cogentcore.org/core/math32"

// CameraComponent 透视相机与轨道控制（orbit controls）的状态
//
// Position/Target/Up 决定视图矩阵，FOV/Aspect/Near/Far 决定投影矩阵。
// 其余字段由 CameraSystem 使用：鼠标拖拽、滚轮产生的增量先累积在这里，
// 每帧 Update 时按阻尼系数逐步应用。
type CameraComponent struct {
	Position math32.Vector3
	Target   math32.Vector3
	Up       math32.Vector3

	// FOV 垂直视场角（度）
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// EnableZoom 是否允许滚轮缩放
	EnableZoom bool
	// EnablePan 是否允许右键平移
	EnablePan bool

	// DampingFactor 阻尼系数，0 表示直接应用增量
	DampingFactor float64
	// RotateSpeed 旋转灵敏度
	RotateSpeed float64
	// MinDistance, MaxDistance 相机到目标的距离限制，MaxDistance 为 0 表示不限制
	MinDistance float64
	MaxDistance float64

	// 待应用的增量
	ThetaDelta float64 // 绕 Y 轴（方位角）
	PhiDelta   float64 // 极角
	DollyScale float64 // 距离缩放系数，1 表示不变
	PanOffset  math32.Vector3
}
