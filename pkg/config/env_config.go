package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 从环境变量读取的启动配置
//
// 命令行参数优先于环境变量，环境变量优先于默认值。
type EnvConfig struct {
	Verbose    bool   `env:"SOLAR_VERBOSE" envDefault:"false"`
	ConfigPath string `env:"SOLAR_CONFIG"  envDefault:"data/solar_system.yaml"`
	Seed       int64  `env:"SOLAR_SEED"    envDefault:"0"`
	Width      int    `env:"SOLAR_WIDTH"   envDefault:"1280"`
	Height     int    `env:"SOLAR_HEIGHT"  envDefault:"720"`
}

// LoadEnvConfig 解析环境变量
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return EnvConfig{}, fmt.Errorf("parse env: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
