package entities

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

func TestCirclePoints(t *testing.T) {
	points := CirclePoints(35, 64)

	if len(points) != 65 {
		t.Fatalf("len(points) = %d, want 65", len(points))
	}
	if points[0] != points[64] {
		t.Errorf("curve not closed: first %v last %v", points[0], points[64])
	}
	for i, p := range points {
		if math.Abs(float64(p.Y)) > 1e-4 {
			t.Errorf("point %d not in horizontal plane: %v", i, p)
		}
		r := math.Hypot(float64(p.X), float64(p.Z))
		if math.Abs(r-35) > 1e-3 {
			t.Errorf("point %d radius = %.4f, want 35", i, r)
		}
	}
}

func TestNewOrbitPathEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	id := NewOrbitPathEntity(em, 50, DefaultOrbitSegments, white, true)

	path, ok := ecs.GetComponent[*components.OrbitPathComponent](em, id)
	if !ok {
		t.Fatal("missing OrbitPathComponent")
	}
	if path.Radius != 50 || len(path.Points) != 65 {
		t.Errorf("path radius %.1f points %d, want 50 65", path.Radius, len(path.Points))
	}

	vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, id)
	if !ok {
		t.Fatal("missing VisibilityComponent")
	}
	if !vis.Visible || vis.Group != components.VisibilityGroupOrbits {
		t.Errorf("visibility = %+v, want visible in orbits group", *vis)
	}
}

func TestNewOrbitPathEntityClampsSegments(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewOrbitPathEntity(em, 10, 1, color.RGBA{}, false)

	path, _ := ecs.GetComponent[*components.OrbitPathComponent](em, id)
	if len(path.Points) != DefaultOrbitSegments+1 {
		t.Errorf("points = %d, want %d", len(path.Points), DefaultOrbitSegments+1)
	}
}
