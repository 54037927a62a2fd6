package systems

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// zoomScale 每格滚轮的距离缩放系数
	zoomScale = 0.95
	// minPolarAngle 极角下限，避免相机越过正上方导致视图矩阵退化
	minPolarAngle = 1e-4
	// settleEpsilon 剩余增量低于此值时清零，相机停止移动
	settleEpsilon = 1e-6
)

// CameraSystem 相机轨道控制
//
// 左键拖拽绕目标点旋转，右键拖拽平移，滚轮缩放。
// 输入产生的增量累积在 CameraComponent 上，Update 每帧按阻尼系数
// 应用其中一部分并衰减剩余部分。没有待应用的增量时不会改写相机位置，
// 因此按钮缩放对 z 坐标的修改保持精确。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	input         utils.PointerInput

	rotateDrag *utils.DragTracker
	panDrag    *utils.DragTracker

	// ignoreAt 返回 true 的位置不开始拖拽（例如屏幕按钮）
	ignoreAt func(x, y int) bool

	// viewportHeight 用于把像素位移换算为角度/距离
	viewportHeight int
}

// NewCameraSystem 创建相机控制系统
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID, input utils.PointerInput, viewportHeight int) *CameraSystem {
	return &CameraSystem{
		entityManager:  em,
		cameraEntity:   cameraEntity,
		input:          input,
		rotateDrag:     utils.NewDragTracker(ebiten.MouseButtonLeft),
		panDrag:        utils.NewDragTracker(ebiten.MouseButtonRight),
		viewportHeight: viewportHeight,
	}
}

// SetIgnoreFunc 设置不响应拖拽的屏幕区域
func (cs *CameraSystem) SetIgnoreFunc(fn func(x, y int) bool) {
	cs.ignoreAt = fn
}

// SetViewportHeight 更新视口高度
func (cs *CameraSystem) SetViewportHeight(height int) {
	if height > 0 {
		cs.viewportHeight = height
	}
}

// Update 处理指针输入并应用相机增量
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	if cs.input != nil {
		cs.handleInput(cam)
	}
	UpdateControls(cam)
}

func (cs *CameraSystem) handleInput(cam *components.CameraComponent) {
	cs.rotateDrag.Update(cs.input)
	cs.panDrag.Update(cs.input)

	if cs.ignoreAt != nil {
		for _, drag := range []*utils.DragTracker{cs.rotateDrag, cs.panDrag} {
			if !drag.JustStarted() {
				continue
			}
			info := drag.GetInfo()
			if cs.ignoreAt(info.StartX, info.StartY) {
				drag.Reset()
			}
		}
	}

	height := float64(cs.viewportHeight)
	if height <= 0 {
		height = 1
	}

	if dx, dy := cs.rotateDrag.Delta(); dx != 0 || dy != 0 {
		RotateLeft(cam, 2*math.Pi*float64(dx)/height*cam.RotateSpeed)
		RotateUp(cam, 2*math.Pi*float64(dy)/height*cam.RotateSpeed)
	}

	if cam.EnablePan {
		if dx, dy := cs.panDrag.Delta(); dx != 0 || dy != 0 {
			Pan(cam, float64(dx), float64(dy), height)
		}
	}

	if cam.EnableZoom {
		if _, wy := cs.input.Wheel(); wy > 0 {
			Dolly(cam, zoomScale)
		} else if wy < 0 {
			Dolly(cam, 1/zoomScale)
		}
	}
}

// RotateLeft 累积方位角增量
func RotateLeft(cam *components.CameraComponent, angle float64) {
	cam.ThetaDelta -= angle
}

// RotateUp 累积极角增量
func RotateUp(cam *components.CameraComponent, angle float64) {
	cam.PhiDelta -= angle
}

// Dolly 累积距离缩放，scale < 1 拉近
func Dolly(cam *components.CameraComponent, scale float64) {
	if cam.DollyScale == 0 {
		cam.DollyScale = 1
	}
	cam.DollyScale *= scale
}

// Pan 按屏幕像素位移累积平移量
// 位移按目标点处的可视高度换算，拖拽时场景跟随指针移动
func Pan(cam *components.CameraComponent, dx, dy, viewportHeight float64) {
	offset := cam.Position.Sub(cam.Target)
	targetDistance := float64(offset.Length()) * math.Tan(float64(cam.FOV)/2*math.Pi/180)

	view := utils.ViewMatrix(cam.Position, cam.Target, cam.Up)
	// 视图矩阵旋转部分的前两行为相机的右、上方向
	right := math32.Vec3(view[0], view[4], view[8])
	up := math32.Vec3(view[1], view[5], view[9])

	left := right.MulScalar(float32(-2 * dx * targetDistance / viewportHeight))
	upward := up.MulScalar(float32(2 * dy * targetDistance / viewportHeight))
	cam.PanOffset = cam.PanOffset.Add(left).Add(upward)
}

// UpdateControls 应用待处理的增量
// 没有增量时直接返回，不改写相机位置
func UpdateControls(cam *components.CameraComponent) {
	if cam.DollyScale == 0 {
		cam.DollyScale = 1
	}
	if cam.ThetaDelta == 0 && cam.PhiDelta == 0 && cam.DollyScale == 1 && cam.PanOffset.Length() == 0 {
		return
	}

	offset := cam.Position.Sub(cam.Target)
	radius := float64(offset.Length())
	theta := math.Atan2(float64(offset.X), float64(offset.Z))
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(clamp(float64(offset.Y)/radius, -1, 1))
	}

	damping := cam.DampingFactor
	if damping <= 0 || damping > 1 {
		damping = 1
	}

	theta += cam.ThetaDelta * damping
	phi = clamp(phi+cam.PhiDelta*damping, minPolarAngle, math.Pi-minPolarAngle)

	radius *= cam.DollyScale
	if cam.MinDistance > 0 && radius < cam.MinDistance {
		radius = cam.MinDistance
	}
	if cam.MaxDistance > 0 && radius > cam.MaxDistance {
		radius = cam.MaxDistance
	}

	cam.Target = cam.Target.Add(cam.PanOffset.MulScalar(float32(damping)))

	sinPhi := math.Sin(phi)
	offset = math32.Vec3(
		float32(radius*sinPhi*math.Sin(theta)),
		float32(radius*math.Cos(phi)),
		float32(radius*sinPhi*math.Cos(theta)),
	)
	cam.Position = cam.Target.Add(offset)

	// 衰减剩余增量
	remain := 1 - damping
	cam.ThetaDelta = settle(cam.ThetaDelta * remain)
	cam.PhiDelta = settle(cam.PhiDelta * remain)
	cam.PanOffset = cam.PanOffset.MulScalar(float32(remain))
	if float64(cam.PanOffset.Length()) < settleEpsilon {
		cam.PanOffset = math32.Vector3{}
	}
	cam.DollyScale = 1
}

func settle(v float64) float64 {
	if math.Abs(v) < settleEpsilon {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
