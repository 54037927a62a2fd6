package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSolarSystemConfig(t *testing.T) {
	cfg := DefaultSolarSystemConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if len(cfg.Planets) != 8 {
		t.Errorf("expected 8 planets, got %d", len(cfg.Planets))
	}

	earth, ok := cfg.FindPlanet("Earth")
	if !ok {
		t.Fatal("default config should contain Earth")
	}
	if earth.OrbitRadius != 35 || earth.Size != 4.5 {
		t.Errorf("Earth: got size=%.1f orbit=%.1f, want 4.5/35", earth.Size, earth.OrbitRadius)
	}

	if cfg.Moon.Host != "Earth" || cfg.Moon.HostOrbitRadius != 35 {
		t.Errorf("moon host: got %q/%.1f, want Earth/35", cfg.Moon.Host, cfg.Moon.HostOrbitRadius)
	}

	if cfg.Motion.PlanetStep != 0.01 || cfg.Motion.MoonStep != 0.02 {
		t.Errorf("motion steps: got %.3f/%.3f, want 0.01/0.02", cfg.Motion.PlanetStep, cfg.Motion.MoonStep)
	}

	if cfg.Camera.Position != [3]float64{0, 100, 150} {
		t.Errorf("camera position: got %v", cfg.Camera.Position)
	}
}

func TestParseSolarSystemConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *SolarSystemConfig)
	}{
		{
			name: "overrides keep defaults",
			yamlContent: `
motion:
  planetStep: 0.005
orbits:
  segments: 128
`,
			validate: func(t *testing.T, cfg *SolarSystemConfig) {
				if cfg.Motion.PlanetStep != 0.005 {
					t.Errorf("planetStep = %v, want 0.005", cfg.Motion.PlanetStep)
				}
				// 未覆盖的字段保留默认值
				if cfg.Motion.MoonStep != 0.02 {
					t.Errorf("moonStep = %v, want default 0.02", cfg.Motion.MoonStep)
				}
				if cfg.Orbits.Segments != 128 {
					t.Errorf("segments = %d, want 128", cfg.Orbits.Segments)
				}
				if len(cfg.Planets) != 8 {
					t.Errorf("planets = %d, want default 8", len(cfg.Planets))
				}
			},
		},
		{
			name: "planet list replaced",
			yamlContent: `
planets:
  - { name: Earth, size: 4.5, orbitRadius: 35, texture: images/earth.jpg, color: "#2e86ab" }
`,
			validate: func(t *testing.T, cfg *SolarSystemConfig) {
				if len(cfg.Planets) != 1 {
					t.Fatalf("planets = %d, want 1", len(cfg.Planets))
				}
				c := cfg.Planets[0].Color
				if c.R != 0x2e || c.G != 0x86 || c.B != 0xab || c.A != 0xff {
					t.Errorf("color = %v, want #2e86ab", c)
				}
			},
		},
		{
			name: "duplicate planet name",
			yamlContent: `
planets:
  - { name: Earth, size: 1, orbitRadius: 10 }
  - { name: Earth, size: 1, orbitRadius: 20 }
`,
			wantErr:     true,
			errContains: "duplicate planet name",
		},
		{
			name: "moon host missing",
			yamlContent: `
moon:
  host: Pluto
`,
			wantErr:     true,
			errContains: "moon host",
		},
		{
			name: "non-positive orbit radius",
			yamlContent: `
planets:
  - { name: Earth, size: 1, orbitRadius: 0 }
`,
			wantErr:     true,
			errContains: "must be positive",
		},
		{
			name: "too few orbit segments",
			yamlContent: `
orbits:
  segments: 2
`,
			wantErr:     true,
			errContains: "orbit segments",
		},
		{
			name: "invalid clip planes",
			yamlContent: `
camera:
  near: 10
  far: 5
`,
			wantErr:     true,
			errContains: "clip planes",
		},
		{
			name: "bad color",
			yamlContent: `
sun:
  color: "yellow"
`,
			wantErr:     true,
			errContains: "invalid hex color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSolarSystemConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidateReturnsSentinel(t *testing.T) {
	cfg := DefaultSolarSystemConfig()
	cfg.Camera.ZoomStep = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate error should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSolarSystemConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solar_system.yaml")
	if err := os.WriteFile(path, []byte("motion:\n  moonStep: 0.04\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSolarSystemConfig(path)
	if err != nil {
		t.Fatalf("LoadSolarSystemConfig error: %v", err)
	}
	if cfg.Motion.MoonStep != 0.04 {
		t.Errorf("moonStep = %v, want 0.04", cfg.Motion.MoonStep)
	}

	if _, err := LoadSolarSystemConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedConfig 确保仓库中的 data/solar_system.yaml 可以加载
func TestShippedConfig(t *testing.T) {
	cfg, err := LoadSolarSystemConfig(filepath.Join("..", "..", DefaultSolarSystemConfigPath))
	if err != nil {
		t.Fatalf("shipped config failed to load: %v", err)
	}
	want := DefaultSolarSystemConfig()
	if len(cfg.Planets) != len(want.Planets) {
		t.Fatalf("planets = %d, want %d", len(cfg.Planets), len(want.Planets))
	}
	for i := range want.Planets {
		if cfg.Planets[i].Name != want.Planets[i].Name || cfg.Planets[i].OrbitRadius != want.Planets[i].OrbitRadius {
			t.Errorf("planet %d: got %s/%.0f, want %s/%.0f", i,
				cfg.Planets[i].Name, cfg.Planets[i].OrbitRadius, want.Planets[i].Name, want.Planets[i].OrbitRadius)
		}
	}
}
