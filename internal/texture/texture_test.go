package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync/atomic"
	"testing"
	"time"
)

// encodePNG 生成一张 w×h 的测试 PNG
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 90, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func memOpen(files map[string][]byte) OpenFunc {
	return func(path string) (io.ReadCloser, error) {
		data, ok := files[path]
		if !ok {
			return nil, errors.New("file not found")
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("texture %s did not finish loading", h.Path())
	}
}

func TestLoaderLoadSuccess(t *testing.T) {
	loader := NewLoader(memOpen(map[string][]byte{
		"assets/images/earth.jpg": encodePNG(t, 8, 4),
	}), 4)

	h := loader.Load("assets/images/earth.jpg")
	waitDone(t, h)

	if h.State() != StateLoaded {
		t.Fatalf("State = %v, want loaded (err=%v)", h.State(), h.Err())
	}
	if w, hh := h.Size(); w != 8 || hh != 4 {
		t.Errorf("Size = %dx%d, want 8x4", w, hh)
	}
	img, ok := h.Image()
	if !ok || img == nil {
		t.Fatal("Image() should return uploaded texture")
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("uploaded width = %d, want 8", img.Bounds().Dx())
	}
	if err := loader.Wait(); err != nil {
		t.Errorf("Wait error: %v", err)
	}
}

func TestLoaderLoadFailure(t *testing.T) {
	loader := NewLoader(memOpen(map[string][]byte{
		"assets/broken.png": []byte("not an image"),
	}), 0)

	missing := loader.Load("assets/jupiter.png")
	broken := loader.Load("assets/broken.png")
	waitDone(t, missing)
	waitDone(t, broken)

	for _, h := range []*Handle{missing, broken} {
		if h.State() != StateFailed {
			t.Errorf("%s: State = %v, want failed", h.Path(), h.State())
		}
		if h.Err() == nil {
			t.Errorf("%s: Err should be set", h.Path())
		}
		if _, ok := h.Image(); ok {
			t.Errorf("%s: Image() should report not ready", h.Path())
		}
	}

	if err := loader.Wait(); err == nil {
		t.Error("Wait should report the first failure")
	}
}

func TestLoaderCachesHandles(t *testing.T) {
	loader := NewLoader(memOpen(map[string][]byte{"a.png": encodePNG(t, 1, 1)}), 2)

	h1 := loader.Load("a.png")
	h2 := loader.Load("a.png")
	if h1 != h2 {
		t.Error("Load should return the same handle for the same path")
	}
	if len(loader.Handles()) != 1 {
		t.Errorf("Handles = %d, want 1", len(loader.Handles()))
	}
	waitDone(t, h1)
}

func TestLoaderQueuesBeyondLimit(t *testing.T) {
	release := make(chan struct{})
	var opened atomic.Int32
	data := encodePNG(t, 2, 2)

	loader := NewLoader(func(path string) (io.ReadCloser, error) {
		opened.Add(1)
		<-release
		return io.NopCloser(bytes.NewReader(data)), nil
	}, 1)

	first := loader.Load("first.png")
	second := loader.Load("second.png")

	// 第二个请求超过并发上限，进入队列，调用方不阻塞
	if second.State() != StatePending {
		t.Fatalf("second State = %v, want pending", second.State())
	}
	if n := loader.Poll(); n != 1 {
		t.Errorf("Poll while busy = %d queued, want 1", n)
	}

	close(release)
	waitDone(t, first)

	deadline := time.Now().Add(5 * time.Second)
	for loader.Poll() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("queued texture was never dispatched")
		}
		time.Sleep(time.Millisecond)
	}
	waitDone(t, second)

	if second.State() != StateLoaded {
		t.Errorf("second State = %v, want loaded", second.State())
	}
	if opened.Load() != 2 {
		t.Errorf("opened = %d, want 2", opened.Load())
	}
}

func TestStateString(t *testing.T) {
	if StatePending.String() != "pending" || StateLoaded.String() != "loaded" || StateFailed.String() != "failed" {
		t.Error("unexpected state names")
	}
}
