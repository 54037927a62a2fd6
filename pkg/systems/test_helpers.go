package systems

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/entities"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockPointerInput 可编程的指针输入
type mockPointerInput struct {
	x, y         int
	pressed      map[ebiten.MouseButton]bool
	justPressed  map[ebiten.MouseButton]bool
	justReleased map[ebiten.MouseButton]bool
	wheelY       float64
}

func newMockPointerInput() *mockPointerInput {
	return &mockPointerInput{
		pressed:      make(map[ebiten.MouseButton]bool),
		justPressed:  make(map[ebiten.MouseButton]bool),
		justReleased: make(map[ebiten.MouseButton]bool),
	}
}

func (m *mockPointerInput) Position() (int, int) { return m.x, m.y }

func (m *mockPointerInput) IsPressed(b ebiten.MouseButton) bool { return m.pressed[b] }

func (m *mockPointerInput) IsJustPressed(b ebiten.MouseButton) bool { return m.justPressed[b] }

func (m *mockPointerInput) IsJustReleased(b ebiten.MouseButton) bool { return m.justReleased[b] }

func (m *mockPointerInput) Wheel() (float64, float64) { return 0, m.wheelY }

// endFrame 清除单帧事件
func (m *mockPointerInput) endFrame() {
	m.justPressed = make(map[ebiten.MouseButton]bool)
	m.justReleased = make(map[ebiten.MouseButton]bool)
	m.wheelY = 0
}

// mockKeyboard 可编程的键盘输入
type mockKeyboard struct {
	justPressed map[ebiten.Key]bool
}

func newMockKeyboard(keys ...ebiten.Key) *mockKeyboard {
	k := &mockKeyboard{justPressed: make(map[ebiten.Key]bool)}
	for _, key := range keys {
		k.justPressed[key] = true
	}
	return k
}

func (k *mockKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return k.justPressed[key] }

// testScene 测试用的完整场景实体集合
type testScene struct {
	em      *ecs.EntityManager
	rm      *game.ResourceManager
	cfg     *config.SolarSystemConfig
	camera  ecs.EntityID
	planets []ecs.EntityID
	earth   ecs.EntityID
	moon    ecs.EntityID
	orbits  []ecs.EntityID
}

// newTestScene 按默认配置构建太阳、行星、卫星和轨道线
func newTestScene(t *testing.T) *testScene {
	t.Helper()

	rm := game.NewResourceManager(1)
	t.Cleanup(func() { _ = rm.WaitTextures() })

	ts := &testScene{
		em:  ecs.NewEntityManager(),
		rm:  rm,
		cfg: config.DefaultSolarSystemConfig(),
	}
	rng := rand.New(rand.NewPCG(7, 11))

	ts.camera = entities.NewCameraEntity(ts.em, ts.cfg.Camera, 800, 600)
	entities.NewSunEntity(ts.em, ts.cfg)
	for _, p := range ts.cfg.Planets {
		id := entities.NewPlanetEntity(ts.em, rm, ts.cfg, p, rng)
		ts.planets = append(ts.planets, id)
		ts.orbits = append(ts.orbits, entities.NewOrbitPathEntity(ts.em, p.OrbitRadius, ts.cfg.Orbits.Segments, ts.cfg.Orbits.Color.Color(), ts.cfg.Orbits.Visible))
	}
	ts.earth, _ = entities.FindBodyByName(ts.em, "Earth")
	ts.moon = entities.NewMoonEntity(ts.em, rm, ts.cfg, ts.earth, rng)
	return ts
}

var sphereTestAmbient = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 255}
