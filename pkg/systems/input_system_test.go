package systems

import (
	"errors"
	"testing"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeViewport struct {
	width, height int
	calls         int
}

func (v *fakeViewport) SetSize(width, height int) {
	v.width, v.height = width, height
	v.calls++
}

func addTestButton(em *ecs.EntityManager, id string, x, y float64) *components.ButtonComponent {
	entity := em.CreateEntity()
	button := &components.ButtonComponent{
		UIID:    id,
		Text:    id,
		Width:   150,
		Height:  32,
		Enabled: true,
	}
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, button)
	return button
}

func newTestInputSystem(t *testing.T) (*testScene, *InputSystem, *fakeViewport) {
	t.Helper()
	ts := newTestScene(t)
	viewport := &fakeViewport{}
	system := NewInputSystem(ts.em, ts.camera, NewVisibilitySystem(ts.em), viewport, nil, ts.cfg.Camera.ZoomStep)
	return ts, system, viewport
}

func cameraOf(t *testing.T, ts *testScene) *components.CameraComponent {
	t.Helper()
	cam, ok := ecs.GetComponent[*components.CameraComponent](ts.em, ts.camera)
	if !ok {
		t.Fatal("camera component missing")
	}
	return cam
}

func TestZoomInOut(t *testing.T) {
	ts, system, _ := newTestInputSystem(t)
	cam := cameraOf(t, ts)
	startZ := cam.Position.Z

	system.ZoomIn()
	if cam.Position.Z != startZ-10 {
		t.Errorf("after ZoomIn z = %v, want %v", cam.Position.Z, startZ-10)
	}

	system.ZoomOut()
	if cam.Position.Z != startZ {
		t.Errorf("ZoomIn then ZoomOut z = %v, want %v", cam.Position.Z, startZ)
	}

	system.ZoomOut()
	if cam.Position.Z != startZ+10 {
		t.Errorf("after ZoomOut z = %v, want %v", cam.Position.Z, startZ+10)
	}
}

func TestZoomLeavesAnglesUntouched(t *testing.T) {
	ts, system, _ := newTestInputSystem(t)
	before := make(map[ecs.EntityID]float64)
	for _, id := range ts.planets {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](ts.em, id)
		before[id] = orbit.Angle
	}

	system.ZoomIn()
	system.ToggleOrbits()
	system.Resize(1024, 768)

	for _, id := range ts.planets {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](ts.em, id)
		if orbit.Angle != before[id] {
			t.Errorf("%s angle changed by input actions", orbit.Name)
		}
	}
}

func TestToggleOrbitsTwiceRestoresVisibility(t *testing.T) {
	ts, system, _ := newTestInputSystem(t)

	if got := system.ToggleOrbits(); got {
		t.Fatalf("first toggle = %v, want false", got)
	}
	for _, id := range ts.orbits {
		if IsVisible(ts.em, id) {
			t.Errorf("orbit %d still visible after toggle", id)
		}
	}

	if got := system.ToggleOrbits(); !got {
		t.Fatalf("second toggle = %v, want true", got)
	}
	for _, id := range ts.orbits {
		if !IsVisible(ts.em, id) {
			t.Errorf("orbit %d hidden after second toggle", id)
		}
	}
}

func TestToggleLabelsCallback(t *testing.T) {
	_, system, _ := newTestInputSystem(t)
	var got []bool
	system.OnLabelsChanged = func(visible bool) { got = append(got, visible) }

	system.ToggleLabels()
	system.ToggleLabels()

	if len(got) != 2 || got[0] || !got[1] {
		t.Errorf("label callbacks = %v, want [false true]", got)
	}
}

func TestResize(t *testing.T) {
	ts, system, viewport := newTestInputSystem(t)
	cam := cameraOf(t, ts)

	system.Resize(1000, 500)
	if cam.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", cam.Aspect)
	}
	if viewport.width != 1000 || viewport.height != 500 {
		t.Errorf("viewport = %dx%d, want 1000x500", viewport.width, viewport.height)
	}

	system.Resize(0, 500)
	system.Resize(800, -1)
	if viewport.calls != 1 {
		t.Errorf("viewport resized %d times, want 1", viewport.calls)
	}
	if cam.Aspect != 2 {
		t.Errorf("aspect changed by invalid size: %v", cam.Aspect)
	}
}

func TestBindButtons(t *testing.T) {
	ts, system, _ := newTestInputSystem(t)
	cam := cameraOf(t, ts)
	startZ := cam.Position.Z

	zoomIn := addTestButton(ts.em, config.ControlZoomIn, 10, 10)
	zoomOut := addTestButton(ts.em, config.ControlZoomOut, 10, 50)
	toggle := addTestButton(ts.em, config.ControlToggleTrajectories, 10, 90)

	if err := system.BindButtons(config.ControlZoomIn, config.ControlZoomOut, config.ControlToggleTrajectories); err != nil {
		t.Fatalf("BindButtons failed: %v", err)
	}

	zoomIn.OnClick()
	if cam.Position.Z != startZ-10 {
		t.Errorf("zoom-in button: z = %v, want %v", cam.Position.Z, startZ-10)
	}
	zoomOut.OnClick()
	if cam.Position.Z != startZ {
		t.Errorf("zoom-out button: z = %v, want %v", cam.Position.Z, startZ)
	}
	toggle.OnClick()
	if IsVisible(ts.em, ts.orbits[0]) {
		t.Error("trajectory button did not hide orbits")
	}
}

func TestBindButtonsMissingControl(t *testing.T) {
	ts, system, _ := newTestInputSystem(t)
	addTestButton(ts.em, config.ControlZoomIn, 10, 10)

	err := system.BindButtons(config.ControlZoomIn, config.ControlZoomOut)
	if !errors.Is(err, ErrControlNotFound) {
		t.Errorf("err = %v, want ErrControlNotFound", err)
	}

	err = system.BindButtons("no-such-control")
	if !errors.Is(err, ErrControlNotFound) {
		t.Errorf("unknown id err = %v, want ErrControlNotFound", err)
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	ts := newTestScene(t)
	cam := cameraOf(t, ts)
	startZ := cam.Position.Z

	fullscreen := 0
	system := NewInputSystem(ts.em, ts.camera, NewVisibilitySystem(ts.em), nil,
		newMockKeyboard(ebiten.KeyEqual, ebiten.KeyT, ebiten.KeyF11), ts.cfg.Camera.ZoomStep)
	system.OnToggleFullscreen = func() { fullscreen++ }

	system.Update(1.0 / 60)

	if cam.Position.Z != startZ-10 {
		t.Errorf("'=' key: z = %v, want %v", cam.Position.Z, startZ-10)
	}
	if IsVisible(ts.em, ts.orbits[0]) {
		t.Error("'T' key did not hide orbits")
	}
	if fullscreen != 1 {
		t.Errorf("F11 callbacks = %d, want 1", fullscreen)
	}
}
