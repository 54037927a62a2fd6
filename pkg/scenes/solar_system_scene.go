package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/entities"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/systems"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Input 场景使用的指针和键盘输入
type Input interface {
	utils.PointerInput
	utils.KeyboardInput
}

// idleInput 没有任何输入的空实现（无窗口运行时使用）
type idleInput struct{}

func (idleInput) Position() (int, int) { return 0, 0 }

func (idleInput) IsPressed(ebiten.MouseButton) bool { return false }

func (idleInput) IsJustPressed(ebiten.MouseButton) bool { return false }

func (idleInput) IsJustReleased(ebiten.MouseButton) bool { return false }

func (idleInput) Wheel() (float64, float64) { return 0, 0 }

func (idleInput) IsKeyJustPressed(ebiten.Key) bool { return false }

// SceneOptions 场景构建参数
type SceneOptions struct {
	// Settings 显示设置，nil 时使用默认值
	Settings *game.DisplaySettings
	// Input 输入源，nil 时场景不响应输入
	Input Input
	// Rand 行星初始相位的随机数源，nil 时使用固定种子
	Rand *rand.Rand
}

// SolarSystemScene 太阳系场景
//
// 持有全部场景状态：实体管理器、各系统、相机实体和渲染尺寸。
// 场景只构建一次，由 App 通过 SceneManager 驱动。
type SolarSystemScene struct {
	resourceManager *game.ResourceManager
	config          *config.SolarSystemConfig
	entityManager   *ecs.EntityManager

	cameraEntity ecs.EntityID
	sunEntity    ecs.EntityID
	moonEntity   ecs.EntityID
	planets      []ecs.EntityID
	orbitPaths   []ecs.EntityID
	buttons      []ecs.EntityID

	renderSystem       *systems.RenderSystem
	cameraSystem       *systems.CameraSystem
	inputSystem        *systems.InputSystem
	visibilitySystem   *systems.VisibilitySystem
	textureSystem      *systems.TextureSystem
	orbitSystem        *systems.OrbitSystem
	transformSystem    *systems.TransformSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	width, height int
}

// NewSolarSystemScene 构建太阳系场景
//
// 构建顺序：相机、光源、太阳、行星及轨道线、卫星、屏幕按钮，
// 最后绑定按钮动作并应用显示设置。任一按钮绑定失败时返回错误。
func NewSolarSystemScene(
	rm *game.ResourceManager,
	cfg *config.SolarSystemConfig,
	width, height int,
	opts SceneOptions,
) (*SolarSystemScene, error) {
	if cfg == nil {
		cfg = config.DefaultSolarSystemConfig()
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", width, height)
	}

	settings := opts.Settings
	if settings == nil {
		settings = game.DefaultSettings()
	}
	var input Input = idleInput{}
	if opts.Input != nil {
		input = opts.Input
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	em := ecs.NewEntityManager()
	s := &SolarSystemScene{
		resourceManager: rm,
		config:          cfg,
		entityManager:   em,
		width:           width,
		height:          height,
	}

	s.cameraEntity = entities.NewCameraEntity(em, cfg.Camera, width, height)
	entities.NewLightEntities(em, cfg.Lights)

	s.sunEntity = entities.NewSunEntity(em, cfg)
	for _, planet := range cfg.Planets {
		s.planets = append(s.planets, entities.NewPlanetEntity(em, rm, cfg, planet, rng))
		s.orbitPaths = append(s.orbitPaths, entities.NewOrbitPathEntity(
			em, planet.OrbitRadius, cfg.Orbits.Segments, cfg.Orbits.Color.Color(), cfg.Orbits.Visible))
	}

	if cfg.Moon.Name != "" {
		host, ok := entities.FindBodyByName(em, cfg.Moon.Host)
		if !ok {
			log.Printf("[SolarSystemScene] Warning: moon host %q not found", cfg.Moon.Host)
		}
		s.moonEntity = entities.NewMoonEntity(em, rm, cfg, host, rng)
	}

	buttons, err := entities.NewControlButtons(em, rm)
	if err != nil {
		return nil, fmt.Errorf("create control buttons: %w", err)
	}
	s.buttons = buttons

	s.renderSystem = systems.NewRenderSystem(em, s.cameraEntity, width, height)
	s.visibilitySystem = systems.NewVisibilitySystem(em)
	s.buttonSystem = systems.NewButtonSystem(em, input)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	s.cameraSystem = systems.NewCameraSystem(em, s.cameraEntity, input, height)
	s.cameraSystem.SetIgnoreFunc(s.buttonSystem.HitTest)
	s.inputSystem = systems.NewInputSystem(em, s.cameraEntity, s.visibilitySystem, s.renderSystem, input, cfg.Camera.ZoomStep)
	s.textureSystem = systems.NewTextureSystem(em, rm)
	s.orbitSystem = systems.NewOrbitSystem(em)
	s.transformSystem = systems.NewTransformSystem(em)

	if err := s.inputSystem.BindButtons(
		config.ControlZoomIn,
		config.ControlZoomOut,
		config.ControlToggleTrajectories,
	); err != nil {
		return nil, fmt.Errorf("bind controls: %w", err)
	}

	s.ApplySettings(settings)

	// 初始化一次相机控制，使相机状态和配置一致
	if cam := s.Camera(); cam != nil {
		systems.UpdateControls(cam)
	}
	s.transformSystem.Update(0)

	log.Printf("[SolarSystemScene] Scene ready: %d planets, %d orbit paths, moon=%d, %dx%d",
		len(s.planets), len(s.orbitPaths), s.moonEntity, width, height)
	return s, nil
}

// ApplySettings 应用显示设置（标签可见性、光照）
func (s *SolarSystemScene) ApplySettings(settings *game.DisplaySettings) {
	if settings == nil {
		return
	}
	s.visibilitySystem.SetGroupVisible(components.VisibilityGroupLabels, settings.ShowLabels)
	s.renderSystem.SetLighting(settings.Lighting)
}

// Update 推进一个 tick
// 顺序：按钮和快捷键、轨道运动、子实体变换、相机控制、纹理进度
func (s *SolarSystemScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.orbitSystem.Update(deltaTime)
	s.transformSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.textureSystem.Update(deltaTime)
}

// Draw 绘制 3D 场景和屏幕按钮
func (s *SolarSystemScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// Resize 窗口尺寸变化时更新相机宽高比和渲染尺寸
func (s *SolarSystemScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.inputSystem.Resize(width, height)
	s.cameraSystem.SetViewportHeight(height)
}

// Size 返回当前渲染尺寸
func (s *SolarSystemScene) Size() (int, int) {
	return s.width, s.height
}

// SetOnToggleFullscreen 设置 F11 回调
func (s *SolarSystemScene) SetOnToggleFullscreen(fn func()) {
	s.inputSystem.OnToggleFullscreen = fn
}

// SetOnLabelsChanged 设置标签显示切换回调
func (s *SolarSystemScene) SetOnLabelsChanged(fn func(visible bool)) {
	s.inputSystem.OnLabelsChanged = fn
}

// EntityManager 返回场景的实体管理器
func (s *SolarSystemScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Camera 返回相机组件
func (s *SolarSystemScene) Camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}

// Sun 返回太阳实体
func (s *SolarSystemScene) Sun() ecs.EntityID { return s.sunEntity }

// Moon 返回卫星实体，未配置卫星时为 0
func (s *SolarSystemScene) Moon() ecs.EntityID { return s.moonEntity }

// Planets 返回行星实体（按配置顺序）
func (s *SolarSystemScene) Planets() []ecs.EntityID { return s.planets }

// OrbitPaths 返回轨道线实体（与 Planets 一一对应）
func (s *SolarSystemScene) OrbitPaths() []ecs.EntityID { return s.orbitPaths }

// Buttons 返回屏幕按钮实体
func (s *SolarSystemScene) Buttons() []ecs.EntityID { return s.buttons }

// Controls 返回输入系统（缩放、轨道线开关）
func (s *SolarSystemScene) Controls() *systems.InputSystem { return s.inputSystem }

// Orbits 返回轨道运动系统
func (s *SolarSystemScene) Orbits() *systems.OrbitSystem { return s.orbitSystem }

// Renderer 返回渲染系统
func (s *SolarSystemScene) Renderer() *systems.RenderSystem { return s.renderSystem }

// Visibility 返回可见性系统
func (s *SolarSystemScene) Visibility() *systems.VisibilitySystem { return s.visibilitySystem }
