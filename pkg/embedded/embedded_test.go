package embedded

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte("groups: {}\n")},
	}
	data := fstest.MapFS{
		"data/solar_system.yaml": {Data: []byte("sun: {}\n")},
	}
	return assets, data
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	assets, data := testFS()
	Init(assets, data)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestOpenNotInitialized 测试未初始化时调用 Open
func TestOpenNotInitialized(t *testing.T) {
	Reset()

	_, err := Open("assets/test.png")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open before Init: got %v, want ErrNotInitialized", err)
	}

	_, err = ReadFile("data/test.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile before Init: got %v, want ErrNotInitialized", err)
	}
}

// TestReadFileByPrefix 测试按前缀分发到对应文件系统
func TestReadFileByPrefix(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer Reset()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "assets/config/resources.yaml", want: "groups: {}\n"},
		{path: "./data/solar_system.yaml", want: "sun: {}\n"},
		{path: "data/missing.yaml", wantErr: true},
		{path: "images/earth.jpg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if !Exists("assets/config/resources.yaml") {
		t.Error("Exists should report embedded file")
	}
	if Exists("assets/images/earth.jpg") {
		t.Error("Exists should be false for missing file")
	}
}

// TestOrDiskFallback 测试嵌入资源缺失时回退到磁盘
func TestOrDiskFallback(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "jupiter.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileOrDisk(path)
	if err != nil {
		t.Fatalf("ReadFileOrDisk error: %v", err)
	}
	if string(got) != "png" {
		t.Errorf("ReadFileOrDisk = %q, want png", got)
	}

	rc, err := OpenOrDisk(path)
	if err != nil {
		t.Fatalf("OpenOrDisk error: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "png" {
		t.Errorf("OpenOrDisk content = %q, want png", b)
	}

	if _, err := ReadFileOrDisk(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
