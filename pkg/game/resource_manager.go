package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/decker502/solarsystem/internal/texture"
	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// 内置字体名称，LoadFont 也接受 .ttf/.otf 文件路径
const (
	FontRegular = "goregular"
	FontBold    = "gobold"
)

// ErrTextureNotReady 纹理仍在加载中
var ErrTextureNotReady = errors.New("texture not ready")

// DefaultTextureConcurrency 同时解码的纹理数量上限
const DefaultTextureConcurrency = 4

// ResourceManager is responsible for centralized management of viewer resources.
//
// The ResourceManager implements the following key features:
//   - Asynchronous texture loading with pending/loaded/failed handles
//   - Font face loading and caching (built-in Go fonts or font files)
//   - Resource ID -> path mapping from assets/config/resources.yaml
//
// Thread Safety Note:
// Texture decoding runs on background goroutines inside texture.Loader, which
// is synchronized internally. Everything else in ResourceManager uses plain
// maps and must be called from the game goroutine only.
//
// Usage:
//
//	rm := NewResourceManager(DefaultTextureConcurrency)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	handle := rm.LoadTextureAsync("IMAGE_EARTH")
type ResourceManager struct {
	textures      *texture.Loader
	fontSources   map[string]*text.GoTextFaceSource // Font name/path -> parsed source
	fontFaceCache map[string]*text.GoTextFace       // "name:size" -> face

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - textureConcurrency: maximum number of textures decoded at the same time (<= 0 means unlimited).
func NewResourceManager(textureConcurrency int) *ResourceManager {
	return &ResourceManager{
		textures:      texture.NewLoader(embedded.OpenOrDisk, textureConcurrency),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// The file is read from the embedded assets first, then from disk.
//
// Returns:
//   - An error if the file cannot be opened or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFileOrDisk(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_EARTH -> assets/images/earth.jpg
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// ResolvePath returns the file path for a resource ID.
// References that are not known IDs are treated as plain paths.
func (rm *ResourceManager) ResolvePath(ref string) string {
	if path, ok := rm.resourceMap[ref]; ok {
		return path
	}
	return ref
}

// ImageIDs returns the IDs of all images declared in the resource config.
func (rm *ResourceManager) ImageIDs() []string {
	if rm.config == nil {
		return nil
	}
	var ids []string
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			ids = append(ids, img.ID)
		}
	}
	return ids
}

// LoadTextureAsync starts loading a texture and returns its handle immediately.
//
// The handle starts in texture.StatePending. A missing or corrupt file moves it
// to texture.StateFailed; callers render a placeholder material in that case.
//
// Parameters:
//   - ref: a resource ID (e.g., "IMAGE_EARTH") or a file path.
func (rm *ResourceManager) LoadTextureAsync(ref string) *texture.Handle {
	path := rm.ResolvePath(ref)
	log.Printf("[ResourceManager] Loading texture %s -> %s", ref, path)
	return rm.textures.Load(path)
}

// PollTextures dispatches queued texture loads. Called once per tick.
// Returns the number of loads still waiting for a free worker.
func (rm *ResourceManager) PollTextures() int {
	return rm.textures.Poll()
}

// WaitTextures blocks until every dispatched texture load has finished.
// It returns the first load error, if any.
func (rm *ResourceManager) WaitTextures() error {
	return rm.textures.Wait()
}

// TextureImage returns the GPU image of a texture handle.
//
// Returns:
//   - ErrTextureNotReady while the handle is pending (or nil)
//   - the load error if the handle failed
func TextureImage(h *texture.Handle) (*ebiten.Image, error) {
	if h == nil {
		return nil, ErrTextureNotReady
	}
	switch h.State() {
	case texture.StateLoaded:
		img, ok := h.Image()
		if !ok {
			return nil, ErrTextureNotReady
		}
		return img, nil
	case texture.StateFailed:
		return nil, fmt.Errorf("texture %s: %w", h.Path(), h.Err())
	default:
		return nil, ErrTextureNotReady
	}
}

// LoadFont returns a text face for a built-in font name or a font file path.
// Faces are cached by name and size.
//
// Parameters:
//   - name: FontRegular, FontBold, or a .ttf/.otf path (embedded or on disk).
//   - size: The font size in pixels.
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face, nil
	}

	source, err := rm.loadFontSource(name)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func (rm *ResourceManager) loadFontSource(name string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSources[name]; ok {
		return source, nil
	}

	var data []byte
	switch name {
	case FontRegular:
		data = goregular.TTF
	case FontBold:
		data = gobold.TTF
	default:
		var err error
		data, err = embedded.ReadFileOrDisk(rm.ResolvePath(name))
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", name, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	rm.fontSources[name] = source
	return source, nil
}
