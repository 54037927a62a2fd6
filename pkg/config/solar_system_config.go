package config

import (
	"errors"
	"fmt"

	"github.com/decker502/solarsystem/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败时返回的哨兵错误
var ErrInvalidConfig = errors.New("invalid solar system config")

// DefaultSolarSystemConfigPath 默认场景配置路径（嵌入资源）
const DefaultSolarSystemConfigPath = "data/solar_system.yaml"

// SolarSystemConfig 太阳系场景配置
//
// 配置文件位置: data/solar_system.yaml
type SolarSystemConfig struct {
	// Camera 透视相机与轨道控制参数
	Camera CameraConfig `yaml:"camera"`

	// Sun 位于原点的自发光球体
	Sun SunConfig `yaml:"sun"`

	// Planets 行星列表，按轨道半径从内到外排列
	Planets []PlanetConfig `yaml:"planets"`

	// Moon 绕宿主行星运行的卫星
	Moon MoonConfig `yaml:"moon"`

	// Motion 每帧角度增量（弧度/帧）
	Motion MotionConfig `yaml:"motion"`

	// Orbits 轨道线参数
	Orbits OrbitConfig `yaml:"orbits"`

	// Labels 名称标签参数
	Labels LabelConfig `yaml:"labels"`

	// Lights 环境光与点光源
	Lights LightsConfig `yaml:"lights"`

	// SphereSegments 球体经纬分段数
	SphereSegments int `yaml:"sphereSegments"`
}

// CameraConfig 相机配置
type CameraConfig struct {
	FOV           float64    `yaml:"fov"` // 垂直视场角（度）
	Near          float64    `yaml:"near"`
	Far           float64    `yaml:"far"`
	Position      [3]float64 `yaml:"position"`
	Target        [3]float64 `yaml:"target"`
	ZoomStep      float64    `yaml:"zoomStep"`      // 缩放按钮每次移动的 z 距离
	DampingFactor float64    `yaml:"dampingFactor"` // 轨道控制阻尼系数，0 表示不阻尼
	MinDistance   float64    `yaml:"minDistance"`
	MaxDistance   float64    `yaml:"maxDistance"`
	RotateSpeed   float64    `yaml:"rotateSpeed"`
	EnableZoom    bool       `yaml:"enableZoom"`
	EnablePan     bool       `yaml:"enablePan"`
}

// SunConfig 太阳配置
type SunConfig struct {
	Name  string   `yaml:"name"`
	Size  float64  `yaml:"size"`
	Color HexColor `yaml:"color"`
}

// PlanetConfig 行星配置
type PlanetConfig struct {
	Name        string  `yaml:"name"`
	Size        float64 `yaml:"size"`
	OrbitRadius float64 `yaml:"orbitRadius"`
	// Texture 资源ID（如 IMAGE_EARTH）或直接的图片路径
	Texture string `yaml:"texture"`
	// Color 纹理未就绪或加载失败时使用的占位颜色
	Color HexColor `yaml:"color"`
}

// MoonConfig 卫星配置
type MoonConfig struct {
	Name            string   `yaml:"name"`
	Host            string   `yaml:"host"` // 宿主行星名称，构建时解析一次
	Size            float64  `yaml:"size"`
	OrbitRadius     float64  `yaml:"orbitRadius"`
	HostOrbitRadius float64  `yaml:"hostOrbitRadius"`
	Color           HexColor `yaml:"color"`
}

// MotionConfig 运动参数
type MotionConfig struct {
	PlanetStep float64 `yaml:"planetStep"`
	MoonStep   float64 `yaml:"moonStep"`
}

// OrbitConfig 轨道线参数
type OrbitConfig struct {
	Segments int      `yaml:"segments"`
	Color    HexColor `yaml:"color"`
	Visible  bool     `yaml:"visible"`
}

// LabelConfig 标签参数
type LabelConfig struct {
	FontSize float64  `yaml:"fontSize"`
	OffsetY  float64  `yaml:"offsetY"`
	ScaleX   float64  `yaml:"scaleX"`
	ScaleY   float64  `yaml:"scaleY"`
	Color    HexColor `yaml:"color"`
}

// LightsConfig 光照参数
type LightsConfig struct {
	Ambient HexColor         `yaml:"ambient"`
	Point   PointLightConfig `yaml:"point"`
}

// PointLightConfig 点光源
type PointLightConfig struct {
	Color     HexColor   `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position"`
}

// DefaultSolarSystemConfig 返回内置的默认场景
//
// 注意：Jupiter 的纹理路径与其他行星的 images/ 前缀不一致，
// 加载失败时会回退到占位颜色。
func DefaultSolarSystemConfig() *SolarSystemConfig {
	return &SolarSystemConfig{
		Camera: CameraConfig{
			FOV:           75,
			Near:          0.1,
			Far:           1000,
			Position:      [3]float64{0, 100, 150},
			ZoomStep:      10,
			DampingFactor: 0.05,
			MinDistance:   0,
			MaxDistance:   0,
			RotateSpeed:   1,
			EnableZoom:    true,
			EnablePan:     true,
		},
		Sun: SunConfig{Name: "Sun", Size: 8, Color: MustHexColor("#ffff00")},
		Planets: []PlanetConfig{
			{Name: "Mercury", Size: 2, OrbitRadius: 15, Texture: "IMAGE_MERCURY", Color: MustHexColor("#9c9c9c")},
			{Name: "Venus", Size: 4, OrbitRadius: 25, Texture: "IMAGE_VENUS", Color: MustHexColor("#e3c28d")},
			{Name: "Earth", Size: 4.5, OrbitRadius: 35, Texture: "IMAGE_EARTH", Color: MustHexColor("#2e86ab")},
			{Name: "Mars", Size: 3, OrbitRadius: 50, Texture: "IMAGE_MARS", Color: MustHexColor("#c1440e")},
			{Name: "Jupiter", Size: 10, OrbitRadius: 70, Texture: "IMAGE_JUPITER", Color: MustHexColor("#d8ca9d")},
			{Name: "Saturn", Size: 9, OrbitRadius: 90, Texture: "IMAGE_SATURN", Color: MustHexColor("#e2bf7d")},
			{Name: "Uranus", Size: 7, OrbitRadius: 110, Texture: "IMAGE_URANUS", Color: MustHexColor("#a6d8e0")},
			{Name: "Neptune", Size: 7, OrbitRadius: 130, Texture: "IMAGE_NEPTUNE", Color: MustHexColor("#4b70dd")},
		},
		Moon: MoonConfig{
			Name:            "Moon",
			Host:            "Earth",
			Size:            0.5,
			OrbitRadius:     7,
			HostOrbitRadius: 35,
			Color:           MustHexColor("#aaaaaa"),
		},
		Motion: MotionConfig{PlanetStep: 0.01, MoonStep: 0.02},
		Orbits: OrbitConfig{Segments: 64, Color: MustHexColor("#ffffff"), Visible: true},
		Labels: LabelConfig{FontSize: 20, OffsetY: 10, ScaleX: 10, ScaleY: 5, Color: MustHexColor("#ffffff")},
		Lights: LightsConfig{
			Ambient: MustHexColor("#404040"),
			Point: PointLightConfig{
				Color:     MustHexColor("#ffffff"),
				Intensity: 1,
				Position:  [3]float64{50, 50, 50},
			},
		},
		SphereSegments: 32,
	}
}

// LoadSolarSystemConfig 加载太阳系场景配置
//
// 优先读取嵌入资源，找不到时读取磁盘文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/solar_system.yaml"）
//
// 返回:
//   - *SolarSystemConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadSolarSystemConfig(path string) (*SolarSystemConfig, error) {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read solar system config %s: %w", path, err)
	}
	return ParseSolarSystemConfig(data)
}

// ParseSolarSystemConfig 从 YAML 数据解析配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParseSolarSystemConfig(data []byte) (*SolarSystemConfig, error) {
	cfg := DefaultSolarSystemConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse solar system config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *SolarSystemConfig) Validate() error {
	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: camera fov must be in (0, 180), got %.2f", ErrInvalidConfig, cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: camera clip planes invalid: near=%.3f far=%.3f", ErrInvalidConfig, cam.Near, cam.Far)
	}
	if cam.ZoomStep <= 0 {
		return fmt.Errorf("%w: camera zoomStep must be positive, got %.2f", ErrInvalidConfig, cam.ZoomStep)
	}
	if cam.DampingFactor < 0 || cam.DampingFactor >= 1 {
		return fmt.Errorf("%w: camera dampingFactor must be in [0, 1), got %.3f", ErrInvalidConfig, cam.DampingFactor)
	}
	if cam.MaxDistance > 0 && cam.MaxDistance < cam.MinDistance {
		return fmt.Errorf("%w: camera maxDistance(%.1f) < minDistance(%.1f)", ErrInvalidConfig, cam.MaxDistance, cam.MinDistance)
	}

	if c.Sun.Size <= 0 {
		return fmt.Errorf("%w: sun size must be positive", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Planets))
	for i, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("%w: planet #%d has no name", ErrInvalidConfig, i)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate planet name %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true
		if p.Size <= 0 || p.OrbitRadius <= 0 {
			return fmt.Errorf("%w: planet %q size and orbitRadius must be positive", ErrInvalidConfig, p.Name)
		}
	}

	if c.Moon.Name != "" {
		if !names[c.Moon.Host] {
			return fmt.Errorf("%w: moon host %q is not a configured planet", ErrInvalidConfig, c.Moon.Host)
		}
		if c.Moon.Size <= 0 || c.Moon.OrbitRadius <= 0 {
			return fmt.Errorf("%w: moon size and orbitRadius must be positive", ErrInvalidConfig)
		}
	}

	if c.Motion.PlanetStep < 0 || c.Motion.MoonStep < 0 {
		return fmt.Errorf("%w: motion steps must not be negative", ErrInvalidConfig)
	}
	if c.Orbits.Segments < 3 {
		return fmt.Errorf("%w: orbit segments must be >= 3, got %d", ErrInvalidConfig, c.Orbits.Segments)
	}
	if c.SphereSegments < 3 {
		return fmt.Errorf("%w: sphere segments must be >= 3, got %d", ErrInvalidConfig, c.SphereSegments)
	}
	// 球体顶点数 (n+1)^2 需要放进 uint16 索引
	if (c.SphereSegments+1)*(c.SphereSegments+1) > 65535 {
		return fmt.Errorf("%w: sphere segments too large: %d", ErrInvalidConfig, c.SphereSegments)
	}
	if c.Labels.FontSize <= 0 {
		return fmt.Errorf("%w: label fontSize must be positive", ErrInvalidConfig)
	}

	return nil
}

// FindPlanet 按名称查找行星配置
func (c *SolarSystemConfig) FindPlanet(name string) (PlanetConfig, bool) {
	for _, p := range c.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetConfig{}, false
}
