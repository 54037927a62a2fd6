package game

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/solarsystem/internal/texture"
)

// createTestImage creates a simple test PNG image for testing purposes.
func createTestImage(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// TestLoadTextureAsyncFromDisk 测试从磁盘异步加载纹理
func TestLoadTextureAsyncFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.png")
	if err := createTestImage(path); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager(2)
	handle := rm.LoadTextureAsync(path)
	if handle == nil {
		t.Fatal("LoadTextureAsync() returned nil")
	}

	if err := rm.WaitTextures(); err != nil {
		t.Fatalf("WaitTextures() error: %v", err)
	}

	if handle.State() != texture.StateLoaded {
		t.Errorf("State: got %v, want %v", handle.State(), texture.StateLoaded)
	}
	if w, h := handle.Size(); w != 10 || h != 10 {
		t.Errorf("Size: got %dx%d, want 10x10", w, h)
	}
}

// TestLoadTextureAsyncMissing 测试纹理缺失时句柄进入失败状态
func TestLoadTextureAsyncMissing(t *testing.T) {
	rm := NewResourceManager(2)
	handle := rm.LoadTextureAsync("assets/images/missing_planet.jpg")

	if err := rm.WaitTextures(); err == nil {
		t.Error("WaitTextures() expected error for missing texture")
	}

	if handle.State() != texture.StateFailed {
		t.Errorf("State: got %v, want %v", handle.State(), texture.StateFailed)
	}
	if handle.Err() == nil {
		t.Error("Err() should be set for failed texture")
	}
}

// TestLoadTextureAsyncCaching 测试相同路径返回同一个句柄
func TestLoadTextureAsyncCaching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mars.png")
	if err := createTestImage(path); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager(2)
	first := rm.LoadTextureAsync(path)
	second := rm.LoadTextureAsync(path)
	if first != second {
		t.Error("Expected the same handle for repeated loads")
	}
	_ = rm.WaitTextures()
}

// TestLoadFont 测试内置字体加载和缓存
func TestLoadFont(t *testing.T) {
	rm := NewResourceManager(1)

	face, err := rm.LoadFont(FontBold, 16)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face.Size != 16 {
		t.Errorf("Size: got %v, want 16", face.Size)
	}

	again, err := rm.LoadFont(FontBold, 16)
	if err != nil {
		t.Fatalf("LoadFont() second call error: %v", err)
	}
	if face != again {
		t.Error("Expected cached face for same font and size")
	}

	other, err := rm.LoadFont(FontRegular, 16)
	if err != nil {
		t.Fatalf("LoadFont(regular) error: %v", err)
	}
	if other == face {
		t.Error("Different fonts should not share a face")
	}
}

// TestLoadFontMissingFile 测试字体文件不存在
func TestLoadFontMissingFile(t *testing.T) {
	rm := NewResourceManager(1)
	if _, err := rm.LoadFont("assets/fonts/missing.ttf", 12); err == nil {
		t.Error("Expected error for missing font file")
	}
}

func TestTextureImage(t *testing.T) {
	if _, err := TextureImage(nil); !errors.Is(err, ErrTextureNotReady) {
		t.Errorf("nil handle: err = %v, want ErrTextureNotReady", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "mars.png")
	if err := createTestImage(path); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager(2)
	good := rm.LoadTextureAsync(path)
	bad := rm.LoadTextureAsync(filepath.Join(dir, "nope.png"))
	_ = rm.WaitTextures()

	img, err := TextureImage(good)
	if err != nil {
		t.Fatalf("TextureImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("image size = %dx%d, want 10x10", b.Dx(), b.Dy())
	}

	if _, err := TextureImage(bad); err == nil || errors.Is(err, ErrTextureNotReady) {
		t.Errorf("failed handle: err = %v, want load error", err)
	}
}
