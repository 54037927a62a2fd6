// Package app 提供太阳系查看器的应用包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/scenes"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

const (
	// DataAppName gdata 存储目录名
	DataAppName = "solarsystem"
	// ResourceConfigPath 资源配置文件路径
	ResourceConfigPath = "assets/config/resources.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件路径，为空时使用 data/solar_system.yaml
	ConfigPath string
	// Width, Height 初始窗口尺寸
	Width, Height int
	// Seed 行星初始相位的随机种子，0 表示按启动时间取种子
	Seed int64
	// DataAppName gdata 存储目录名，为空时使用 DataAppName
	DataAppName string
	// Input 输入源，为空时使用 Ebitengine 的鼠标、触摸和键盘输入
	Input scenes.Input
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	sceneManager    *game.SceneManager
	scene           *scenes.SolarSystemScene

	// applyFullscreen 第一次 Update 时恢复保存的全屏设置
	applyFullscreen bool
	verbose         bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源
// （未初始化时从磁盘读取）。ctx 取消后 Update 返回 ebiten.Termination。
func NewApp(ctx context.Context, cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Width <= 0 {
		cfg.Width = config.DefaultWindowWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = config.DefaultWindowHeight
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = config.DefaultSolarSystemConfigPath
	}
	if cfg.DataAppName == "" {
		cfg.DataAppName = DataAppName
	}

	// 设置存储失败时降级为仅内存设置
	if err := utils.EnsureStorageDir(cfg.DataAppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: cfg.DataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	resourceManager := game.NewResourceManager(game.DefaultTextureConcurrency)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	sceneConfig, err := config.LoadSolarSystemConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: %d planets, moon host %q", cfg.ConfigPath, len(sceneConfig.Planets), sceneConfig.Moon.Host)

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)

	input := cfg.Input
	if input == nil {
		input = utils.NewEbitenInput()
	}

	scene, err := scenes.NewSolarSystemScene(resourceManager, sceneConfig, cfg.Width, cfg.Height, scenes.SceneOptions{
		Settings: settings.GetSettings(),
		Input:    input,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	a := &App{
		ctx:             ctx,
		cancel:          cancel,
		resourceManager: resourceManager,
		settings:        settings,
		sceneManager:    game.NewSceneManager(),
		scene:           scene,
		// 移动端总是全屏
		applyFullscreen: settings.GetSettings().Fullscreen && !utils.IsMobile(),
		verbose:         cfg.Verbose,
	}

	scene.SetOnToggleFullscreen(a.toggleFullscreen)
	scene.SetOnLabelsChanged(func(visible bool) {
		settings.SetShowLabels(visible)
		a.saveSettings()
	})

	a.sceneManager.SwitchTo(scene)
	a.sceneManager.Resize(cfg.Width, cfg.Height)
	return a, nil
}

// Update 更新场景
// 每个 tick 调用一次（通常每秒 60 次）；上下文取消后返回 ebiten.Termination
func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		log.Printf("[App] Context done, terminating run loop")
		return ebiten.Termination
	default:
	}

	if a.applyFullscreen {
		ebiten.SetFullscreen(true)
		a.applyFullscreen = false
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制场景
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 跟随窗口尺寸
// 尺寸变化时更新相机宽高比和渲染尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return a.sceneManager.Size()
}

// Close 结束运行循环并等待已派发的纹理加载结束
func (a *App) Close() error {
	a.cancel()
	if err := a.resourceManager.WaitTextures(); err != nil {
		return fmt.Errorf("texture loads: %w", err)
	}
	return nil
}

// Scene 返回太阳系场景
func (a *App) Scene() *scenes.SolarSystemScene {
	return a.scene
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

func (a *App) toggleFullscreen() {
	if utils.IsMobile() {
		return
	}
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen && (ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized()) {
		ebiten.RestoreWindow()
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
