package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// noInput 不产生任何输入事件
type noInput struct{}

func (noInput) Position() (int, int) { return 0, 0 }

func (noInput) IsPressed(ebiten.MouseButton) bool { return false }

func (noInput) IsJustPressed(ebiten.MouseButton) bool { return false }

func (noInput) IsJustReleased(ebiten.MouseButton) bool { return false }

func (noInput) Wheel() (float64, float64) { return 0, 0 }

func (noInput) IsKeyJustPressed(ebiten.Key) bool { return false }

// testConfig 使用仓库根目录的资源和独立的 gdata 目录
func testConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := os.DirFS("../..")
	embedded.Init(root, root)
	t.Cleanup(embedded.Reset)

	return Config{
		Verbose:     true,
		Width:       800,
		Height:      600,
		Seed:        42,
		DataAppName: fmt.Sprintf("solarsystem_test_%d", time.Now().UnixNano()),
		Input:       noInput{},
	}
}

func newTestApp(t *testing.T, ctx context.Context, cfg Config) *App {
	t.Helper()
	a, err := NewApp(ctx, cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t, context.Background(), testConfig(t))

	if a.Scene() == nil {
		t.Fatal("scene not created")
	}
	if a.GetSceneManager().GetCurrentScene() == nil {
		t.Fatal("scene manager has no current scene")
	}
	if len(a.Scene().Planets()) != 8 {
		t.Errorf("planets = %d, want 8", len(a.Scene().Planets()))
	}
	if err := a.Update(); err != nil {
		t.Errorf("Update returned %v", err)
	}
}

func TestAppLayoutResizesScene(t *testing.T) {
	a := newTestApp(t, context.Background(), testConfig(t))

	w, h := a.Layout(1000, 500)
	if w != 1000 || h != 500 {
		t.Errorf("Layout = %dx%d, want 1000x500", w, h)
	}
	if cam := a.Scene().Camera(); cam.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", cam.Aspect)
	}

	// 非正尺寸保持原尺寸
	w, h = a.Layout(0, 0)
	if w != 1000 || h != 500 {
		t.Errorf("Layout(0, 0) = %dx%d, want 1000x500", w, h)
	}
}

func TestAppTerminatesAfterClose(t *testing.T) {
	a := newTestApp(t, context.Background(), testConfig(t))

	if err := a.Close(); err != nil {
		t.Logf("Close reported texture errors: %v", err)
	}
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Close = %v, want ebiten.Termination", err)
	}
}

func TestAppTerminatesOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := newTestApp(t, ctx, testConfig(t))

	if err := a.Update(); err != nil {
		t.Fatalf("Update before cancel = %v", err)
	}
	cancel()
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after cancel = %v, want ebiten.Termination", err)
	}
}

func TestAppMissingSceneConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfigPath = "data/does_not_exist.yaml"

	if _, err := NewApp(context.Background(), cfg); err == nil {
		t.Error("expected error for missing scene config")
	}
}

func TestAppPersistsLabelSetting(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, context.Background(), cfg)

	if visible := a.Scene().Controls().ToggleLabels(); visible {
		t.Fatal("labels should be hidden after toggle")
	}
	if a.GetSettingsManager().GetSettings().ShowLabels {
		t.Error("ShowLabels not updated in settings")
	}

	// 同一存储目录重新启动，设置保持
	b := newTestApp(t, context.Background(), cfg)
	if b.GetSettingsManager().GetSettings().ShowLabels {
		t.Error("ShowLabels not persisted across restarts")
	}
}
