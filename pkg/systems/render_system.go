package systems

import (
	"image"
	"image/color"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// BackgroundColor 场景背景色
	BackgroundColor = color.RGBA{A: 255}
	// PlaceholderColor 没有配置颜色的天体在纹理未就绪时使用的占位色
	PlaceholderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// whiteImage 3x3 白色图片的中心像素，用作纯色三角形的源图
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// drawable 一个待绘制的图元，按深度从远到近排序
type drawable struct {
	depth float32
	draw  func(screen *ebiten.Image)
}

// RenderSystem 软件投影渲染太阳系场景
//
// 职责范围：
//   - 球体：经纬网格投影后用 DrawTriangles 绘制，背面剔除
//   - 轨道线：逐段投影后用 vector.StrokeLine 绘制
//   - 名称标签：始终朝向相机的 billboard，尺寸随距离缩放
//
// 所有图元按到相机的距离从远到近绘制（画家算法），
// 屏幕控制按钮由 ButtonRenderSystem 在其后绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	width, height int

	// lighting 为 true 时非自发光球体使用环境光 + 点光源的漫反射着色
	lighting bool

	meshes    map[int]*sphereMesh
	items     []drawable
	vertices  []ebiten.Vertex
	indices   []uint16
	projected []utils.ScreenPoint
	visible   []bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID, width, height int) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		width:         width,
		height:        height,
		meshes:        make(map[int]*sphereMesh),
	}
}

// SetSize 设置渲染输出尺寸
func (s *RenderSystem) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Size 返回渲染输出尺寸
func (s *RenderSystem) Size() (int, int) {
	return s.width, s.height
}

// SetLighting 开关光照着色
func (s *RenderSystem) SetLighting(enabled bool) {
	s.lighting = enabled
}

// Lighting 是否启用光照着色
func (s *RenderSystem) Lighting() bool {
	return s.lighting
}

// Projector 根据当前相机状态创建投影器
func (s *RenderSystem) Projector() (*utils.Projector, bool) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok || s.width <= 0 || s.height <= 0 {
		return nil, false
	}
	return utils.NewProjector(cam.Position, cam.Target, cam.Up, cam.FOV, cam.Aspect, cam.Near, cam.Far, s.width, s.height), true
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	proj, ok := s.Projector()
	if !ok {
		return
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)

	s.items = s.items[:0]
	s.collectOrbitPaths(proj)
	s.collectSpheres(proj, cam.Position)
	s.collectLabels(proj)

	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})
	for _, item := range s.items {
		item.draw(screen)
	}
}

// collectOrbitPaths 轨道线按线段加入绘制列表
func (s *RenderSystem) collectOrbitPaths(proj *utils.Projector) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.OrbitPathComponent](em) {
		if !IsVisible(em, id) {
			continue
		}
		path, _ := ecs.GetComponent[*components.OrbitPathComponent](em, id)
		clr := path.Color

		for i := 0; i+1 < len(path.Points); i++ {
			p0, ok0 := proj.Project(path.Points[i])
			p1, ok1 := proj.Project(path.Points[i+1])
			if !ok0 || !ok1 {
				continue
			}
			s.items = append(s.items, drawable{
				depth: (p0.Depth + p1.Depth) / 2,
				draw: func(screen *ebiten.Image) {
					vector.StrokeLine(screen, p0.X, p0.Y, p1.X, p1.Y, 1, clr, true)
				},
			})
		}
	}
}

// collectSpheres 球体按球心深度加入绘制列表
func (s *RenderSystem) collectSpheres(proj *utils.Projector, eye math32.Vector3) {
	em := s.entityManager
	ambient, point := s.lights()

	for _, id := range ecs.GetEntitiesWith2[*components.SphereComponent, *components.TransformComponent](em) {
		if !IsVisible(em, id) {
			continue
		}
		sphere, _ := ecs.GetComponent[*components.SphereComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		center, ok := proj.Project(transform.Position)
		if !ok {
			continue
		}

		// 纹理未就绪或加载失败时使用纯色占位材质
		var tex *ebiten.Image
		if img, err := game.TextureImage(sphere.Texture); err == nil {
			tex = img
		}
		vertices, indices := s.buildSphere(proj, eye, sphere, transform.Position, tex, ambient, point)
		if len(indices) == 0 {
			continue
		}
		src := whiteImage
		if tex != nil {
			src = tex
		}

		s.items = append(s.items, drawable{
			depth: center.Depth,
			draw: func(screen *ebiten.Image) {
				op := &ebiten.DrawTrianglesOptions{}
				op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
				op.AntiAlias = true
				screen.DrawTriangles(vertices, indices, src, op)
			},
		})
	}
}

// buildSphere 生成一个球体的屏幕空间顶点和朝向相机的三角形
func (s *RenderSystem) buildSphere(
	proj *utils.Projector,
	eye math32.Vector3,
	sphere *components.SphereComponent,
	center math32.Vector3,
	tex *ebiten.Image,
	ambient color.RGBA,
	point *components.LightComponent,
) ([]ebiten.Vertex, []uint16) {
	mesh := s.mesh(sphere.Segments)
	radius := float32(sphere.Radius)

	textured := tex != nil
	var texW, texH float32
	if textured {
		b := tex.Bounds()
		texW, texH = float32(b.Dx()), float32(b.Dy())
	}

	base := sphere.Color
	if textured {
		base = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	} else if base.A == 0 {
		base = PlaceholderColor
	}

	n := mesh.vertexCount()
	vertices := make([]ebiten.Vertex, n)
	if cap(s.projected) < n {
		s.projected = make([]utils.ScreenPoint, n)
		s.visible = make([]bool, n)
	}
	projected := s.projected[:n]
	visible := s.visible[:n]

	for i, normal := range mesh.normals {
		world := center.Add(normal.MulScalar(radius))
		projected[i], visible[i] = proj.Project(world)

		shade := float32(1)
		if s.lighting && !sphere.Emissive {
			shade = lambert(normal, world, ambient, point)
		}

		v := &vertices[i]
		v.DstX, v.DstY = projected[i].X, projected[i].Y
		if textured {
			v.SrcX = mesh.uvs[i][0] * texW
			v.SrcY = mesh.uvs[i][1] * texH
		} else {
			v.SrcX, v.SrcY = 1.5, 1.5
		}
		v.ColorR = float32(base.R) / 255 * shade
		v.ColorG = float32(base.G) / 255 * shade
		v.ColorB = float32(base.B) / 255 * shade
		v.ColorA = float32(base.A) / 255
	}

	indices := make([]uint16, 0, len(mesh.indices)/2)
	for t := 0; t+2 < len(mesh.indices); t += 3 {
		a, b, c := mesh.indices[t], mesh.indices[t+1], mesh.indices[t+2]
		if !visible[a] || !visible[b] || !visible[c] {
			continue
		}
		// 背面剔除：三角形法线背向相机时不绘制
		faceNormal := mesh.normals[a].Add(mesh.normals[b]).Add(mesh.normals[c])
		faceCenter := center.Add(faceNormal.Normal().MulScalar(radius))
		if faceNormal.Dot(eye.Sub(faceCenter)) <= 0 {
			continue
		}
		indices = append(indices, a, b, c)
	}
	return vertices, indices
}

// lambert 环境光 + 点光源漫反射的亮度系数
func lambert(normal, world math32.Vector3, ambient color.RGBA, point *components.LightComponent) float32 {
	shade := (float32(ambient.R) + float32(ambient.G) + float32(ambient.B)) / (3 * 255)
	if point != nil {
		toLight := point.Position.Sub(world).Normal()
		diffuse := normal.Dot(toLight)
		if diffuse > 0 {
			shade += diffuse * float32(point.Intensity)
		}
	}
	return math32.Min(shade, 1)
}

// lights 返回环境光颜色和第一个点光源
func (s *RenderSystem) lights() (color.RGBA, *components.LightComponent) {
	var ambient color.RGBA
	var point *components.LightComponent
	for _, id := range ecs.GetEntitiesWith1[*components.LightComponent](s.entityManager) {
		light, _ := ecs.GetComponent[*components.LightComponent](s.entityManager, id)
		switch light.Type {
		case components.LightAmbient:
			ambient = light.Color
		case components.LightPoint:
			if point == nil {
				point = light
			}
		}
	}
	return ambient, point
}

// collectLabels 名称标签作为 billboard 加入绘制列表
func (s *RenderSystem) collectLabels(proj *utils.Projector) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.TransformComponent](em) {
		if !IsVisible(em, id) {
			continue
		}
		label, _ := ecs.GetComponent[*components.LabelComponent](em, id)
		if label.Image == nil {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		pt, ok := proj.Project(transform.Position)
		if !ok {
			continue
		}
		w, h := LabelScreenSize(proj, label, pt.Depth)
		if w < 1 || h < 1 {
			continue
		}

		img := label.Image
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(float64(pt.X)-w/2, float64(pt.Y)-h/2)
		op.Filter = ebiten.FilterLinear

		s.items = append(s.items, drawable{
			depth: pt.Depth,
			draw: func(screen *ebiten.Image) {
				screen.DrawImage(img, op)
			},
		})
	}
}

// mesh 返回指定分段数的缓存球体网格
func (s *RenderSystem) mesh(segments int) *sphereMesh {
	if m, ok := s.meshes[segments]; ok {
		return m
	}
	m := newSphereMesh(segments)
	s.meshes[segments] = m
	return m
}

// LabelScreenSize 标签在给定深度处的屏幕像素尺寸
func LabelScreenSize(proj *utils.Projector, label *components.LabelComponent, depth float32) (float64, float64) {
	scale := float64(proj.PixelsPerUnit(depth))
	return label.WorldWidth * scale, label.WorldHeight * scale
}
