package game

import (
	"errors"
	"fmt"
	"path"
	"sort"
)

// ErrInvalidResourceConfig 资源清单格式错误（重复ID、空路径）
var ErrInvalidResourceConfig = errors.New("invalid resource config")

// ResourceConfig 资源清单，对应 assets/config/resources.yaml
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  planets:
//	    images:
//	      - { id: IMAGE_EARTH, path: images/earth.jpg }
//	    fonts:
//	      - { id: FONT_LABEL, path: fonts/label.ttf }
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"` // 所有资源路径的公共前缀
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组资源（按用途分组，如 planets）
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource 图片资源：ID 与相对 base_path 的路径
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource 字体文件资源
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Validate 检查资源ID唯一且路径非空
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]string)

	// 按组名排序，保证错误信息稳定
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	check := func(group, id, p string) error {
		if id == "" || p == "" {
			return fmt.Errorf("%w: group %q has an entry with empty id or path", ErrInvalidResourceConfig, group)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%w: id %q declared in both %q and %q", ErrInvalidResourceConfig, id, prev, group)
		}
		seen[id] = group
		return nil
	}

	for _, name := range names {
		group := c.Groups[name]
		for _, img := range group.Images {
			if err := check(name, img.ID, img.Path); err != nil {
				return err
			}
		}
		for _, font := range group.Fonts {
			if err := check(name, font.ID, font.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildFullPath 拼接 base_path 与资源相对路径
//
//	buildFullPath("assets", "images/earth.jpg") == "assets/images/earth.jpg"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
