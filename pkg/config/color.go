package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor 以 "#rrggbb" 或 "#rrggbbaa" 形式出现在 YAML 中的颜色
type HexColor color.RGBA

// ParseHexColor 解析十六进制颜色字符串
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(s) != 6 && len(s) != 8 {
		return HexColor{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return HexColor{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Color 转换为 color.RGBA
func (c HexColor) Color() color.RGBA {
	return color.RGBA(c)
}

// MustHexColor 解析颜色，失败时 panic（仅用于内置常量）
func MustHexColor(s string) HexColor {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// String 返回 "#rrggbb" 形式，带透明度时返回 "#rrggbbaa"
func (c HexColor) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
