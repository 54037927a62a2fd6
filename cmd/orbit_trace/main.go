// orbit_trace 无窗口运行轨道模拟并输出天体位置（YAML）
//
// 用法：
//
//	go run ./cmd/orbit_trace -ticks 600 -every 60 -seed 1
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/entities"
	"github.com/decker502/solarsystem/pkg/game"
	"github.com/decker502/solarsystem/pkg/systems"
	"gopkg.in/yaml.v3"
)

var (
	configPath = flag.String("config", config.DefaultSolarSystemConfigPath, "场景配置文件")
	ticks      = flag.Int("ticks", 600, "模拟的 tick 数")
	every      = flag.Int("every", 60, "每隔多少 tick 输出一次位置，0 表示只输出最终位置")
	seed       = flag.Uint64("seed", 1, "行星初始相位的随机种子")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// BodySample 单个天体在某一 tick 的状态
type BodySample struct {
	Name  string     `yaml:"name"`
	Angle float64    `yaml:"angle"`
	Pos   [3]float32 `yaml:"position,flow"`
}

// Sample 某一 tick 的所有天体状态
type Sample struct {
	Tick   uint64       `yaml:"tick"`
	Bodies []BodySample `yaml:"bodies"`
}

// Trace 输出文档
type Trace struct {
	Config  string   `yaml:"config"`
	Seed    uint64   `yaml:"seed"`
	Ticks   int      `yaml:"ticks"`
	Samples []Sample `yaml:"samples"`
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *ticks < 0 {
		fmt.Fprintln(os.Stderr, "ticks must be >= 0")
		os.Exit(2)
	}

	cfg, err := config.LoadSolarSystemConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rm := game.NewResourceManager(1)
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewPCG(*seed, *seed+1))

	entities.NewSunEntity(em, cfg)
	for _, p := range cfg.Planets {
		entities.NewPlanetEntity(em, rm, cfg, p, rng)
	}
	if cfg.Moon.Name != "" {
		host, ok := entities.FindBodyByName(em, cfg.Moon.Host)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: moon host %q not found\n", cfg.Moon.Host)
		}
		entities.NewMoonEntity(em, rm, cfg, host, rng)
	}

	orbits := systems.NewOrbitSystem(em)
	trace := Trace{Config: *configPath, Seed: *seed, Ticks: *ticks}
	trace.Samples = append(trace.Samples, sample(em, orbits.Ticks()))
	for i := 1; i <= *ticks; i++ {
		orbits.Tick(1)
		if (*every > 0 && i%*every == 0) || i == *ticks {
			trace.Samples = append(trace.Samples, sample(em, orbits.Ticks()))
		}
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = enc.Close()
	_ = rm.WaitTextures()
}

// sample 读取所有天体当前的角度和位置
func sample(em *ecs.EntityManager, tick uint64) Sample {
	s := Sample{Tick: tick}
	for _, id := range ecs.GetEntitiesWith2[*components.OrbitComponent, *components.TransformComponent](em) {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		s.Bodies = append(s.Bodies, BodySample{
			Name:  orbit.Name,
			Angle: orbit.Angle,
			Pos:   [3]float32{t.Position.X, t.Position.Y, t.Position.Z},
		})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.SatelliteComponent, *components.TransformComponent](em) {
		sat, _ := ecs.GetComponent[*components.SatelliteComponent](em, id)
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		s.Bodies = append(s.Bodies, BodySample{
			Name:  sat.Name,
			Angle: sat.Angle,
			Pos:   [3]float32{t.Position.X, t.Position.Y, t.Position.Z},
		})
	}
	return s
}
