package utils

import (
	"cogentcore.org/core/math32"
)

// ViewMatrix 计算相机视图矩阵（相机位于 pos，朝向 target）
func ViewMatrix(pos, target, up math32.Vector3) *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, target, up))
	var cview math32.Matrix4
	cview.SetTransform(pos, lookq, math32.Vec3(1, 1, 1))
	view, err := cview.Inverse()
	if err != nil {
		// 退化的相机姿态（pos 与 target 重合），返回单位矩阵
		var identity math32.Matrix4
		identity.SetIdentity()
		return &identity
	}
	return view
}

// ScreenPoint 投影到屏幕上的点
type ScreenPoint struct {
	X, Y float32
	// Depth 沿视线方向到相机的距离，用于远近排序和屏幕尺寸计算
	Depth float32
}

// Projector 将世界坐标投影到屏幕坐标
type Projector struct {
	view     *math32.Matrix4
	viewProj math32.Matrix4
	width    float32
	height   float32
	near     float32
	// 每单位距离对应的像素数，乘以 1/depth 得到屏幕尺寸
	pixelScale float32
}

// NewProjector 根据相机参数创建投影器
//
// 参数：
//   - fov: 垂直视角（角度）
//   - aspect: 宽高比
//   - width, height: 渲染目标尺寸（像素）
func NewProjector(pos, target, up math32.Vector3, fov, aspect, near, far float32, width, height int) *Projector {
	var proj math32.Matrix4
	proj.SetPerspective(fov, aspect, near, far)

	p := &Projector{
		view:   ViewMatrix(pos, target, up),
		width:  float32(width),
		height: float32(height),
		near:   near,
	}
	p.viewProj.MulMatrices(&proj, p.view)
	p.pixelScale = p.height / (2 * math32.Tan(math32.DegToRad(fov)/2))
	return p
}

// Project 投影世界坐标点
// 点位于近裁剪面之后时返回 false
func (p *Projector) Project(world math32.Vector3) (ScreenPoint, bool) {
	clip := math32.Vector4FromVector3(world, 1).MulMatrix4(&p.viewProj)
	if clip.W < p.near {
		return ScreenPoint{}, false
	}
	ndc := clip.PerspDiv()
	return ScreenPoint{
		X:     (ndc.X + 1) / 2 * p.width,
		Y:     (1 - ndc.Y) / 2 * p.height,
		Depth: clip.W,
	}, true
}

// ToView 将世界坐标变换到相机空间（相机朝向 -Z）
func (p *Projector) ToView(world math32.Vector3) math32.Vector3 {
	v := math32.Vector4FromVector3(world, 1).MulMatrix4(p.view)
	return math32.Vec3(v.X, v.Y, v.Z)
}

// PixelsPerUnit 给定深度处一个世界单位对应的像素数
func (p *Projector) PixelsPerUnit(depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return p.pixelScale / depth
}

// Size 渲染目标尺寸
func (p *Projector) Size() (float32, float32) {
	return p.width, p.height
}
