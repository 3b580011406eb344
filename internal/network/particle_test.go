package network

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/portfolio-hero/internal/config"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestInitialize(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}

	ps := Initialize(b, cfg, newRand())
	if len(ps) != 70 {
		t.Fatalf("Expected 70 particles, got %d", len(ps))
	}
	for i, p := range ps {
		if p.Radius < 1.5 || p.Radius > 4 {
			t.Errorf("particle %d: radius %v outside [1.5, 4]", i, p.Radius)
		}
		if p.X < 0 || p.X > b.Width || p.Y < 0 || p.Y > b.Height {
			t.Errorf("particle %d: position (%v, %v) outside bounds", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > cfg.Speed || math.Abs(p.VY) > cfg.Speed {
			t.Errorf("particle %d: velocity (%v, %v) exceeds speed %v", i, p.VX, p.VY, cfg.Speed)
		}
		found := false
		for _, c := range cfg.Colors {
			if p.Color == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("particle %d: color %+v not in palette", i, p.Color)
		}
	}
}

func TestStepStaysInBounds(t *testing.T) {
	cfg := config.DefaultSimulation()
	cfg.Speed = 25
	b := Bounds{Width: 320, Height: 200}
	rng := newRand()
	ps := Initialize(b, cfg, rng)

	for frame := 0; frame < 500; frame++ {
		ptr := Pointer{}
		if frame%3 != 0 {
			ptr = At(rng.Float64()*b.Width, rng.Float64()*b.Height)
		}
		for i := range ps {
			Step(&ps[i], b, ptr, cfg)
			p := ps[i]
			if p.X < 0 || p.X > b.Width || p.Y < 0 || p.Y > b.Height {
				t.Fatalf("frame %d particle %d: (%v, %v) left the canvas", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestStepReflectsAtEdge(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 800, Y: 300, VX: 0.3, VY: 0.1}

	Step(&p, b, Pointer{}, cfg)

	if p.VX >= 0 {
		t.Errorf("Expected vx to flip negative, got %v", p.VX)
	}
	if p.X > b.Width {
		t.Errorf("Expected x <= %v, got %v", b.Width, p.X)
	}
	if p.VY != 0.1 {
		t.Errorf("Expected vy untouched, got %v", p.VY)
	}
}

func TestStepReflectsEachAxis(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 100, Height: 100}
	p := Particle{X: 0, Y: 100, VX: -1, VY: 1}

	Step(&p, b, Pointer{}, cfg)

	if p.VX != 1 || p.VY != -1 {
		t.Errorf("Expected both axes to flip, got vx=%v vy=%v", p.VX, p.VY)
	}
	if p.X != 0 || p.Y != 100 {
		t.Errorf("Expected corner clamp (0, 100), got (%v, %v)", p.X, p.Y)
	}
}

func TestStepRepelsFromPointer(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 100, Y: 100}
	ptr := At(110, 105)

	before := math.Hypot(p.X-ptr.X, p.Y-ptr.Y)
	Step(&p, b, ptr, cfg)
	after := math.Hypot(p.X-ptr.X, p.Y-ptr.Y)

	if after <= before {
		t.Errorf("Expected particle to move away: before %v, after %v", before, after)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("Expected repulsion to leave velocity alone, got (%v, %v)", p.VX, p.VY)
	}
}

// The clamp after the nudge pins a particle at the edge when the pointer
// pushes it outward.
func TestStepRepelClampedAtEdge(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 0, Y: 300}

	Step(&p, b, At(10, 300), cfg)

	if p.X != 0 || p.Y != 300 {
		t.Errorf("Expected particle to stay at (0, 300), got (%v, %v)", p.X, p.Y)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("Expected velocity untouched, got (%v, %v)", p.VX, p.VY)
	}
}

func TestStepIgnoresDistantPointer(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 100, Y: 100}

	Step(&p, b, At(400, 400), cfg)

	if p.X != 100 || p.Y != 100 {
		t.Errorf("Expected no movement, got (%v, %v)", p.X, p.Y)
	}
}

func TestStepIgnoresPointerOnParticle(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 100, Y: 100}

	Step(&p, b, At(100, 100), cfg)

	if p.X != 100 || p.Y != 100 {
		t.Errorf("Expected no movement at zero distance, got (%v, %v)", p.X, p.Y)
	}
}

func TestStepWithoutPointerIsLinear(t *testing.T) {
	cfg := config.DefaultSimulation()
	b := Bounds{Width: 800, Height: 600}
	p := Particle{X: 100, Y: 100, VX: 1, VY: 2}

	for i := 0; i < 10; i++ {
		Step(&p, b, Pointer{}, cfg)
	}

	if p.X != 110 || p.Y != 120 {
		t.Errorf("Expected (110, 120), got (%v, %v)", p.X, p.Y)
	}
}

func TestResampleOnlyCorrectsOverflow(t *testing.T) {
	b := Bounds{Width: 400, Height: 300}
	ps := []Particle{
		{X: 500, Y: 100},
		{X: 100, Y: 350},
		{X: 50, Y: 60},
		{X: -5, Y: 10},
	}

	Resample(ps, b, newRand())

	if ps[0].X > b.Width || ps[0].Y != 100 {
		t.Errorf("Expected x resampled only, got (%v, %v)", ps[0].X, ps[0].Y)
	}
	if ps[1].Y > b.Height || ps[1].X != 100 {
		t.Errorf("Expected y resampled only, got (%v, %v)", ps[1].X, ps[1].Y)
	}
	if ps[2].X != 50 || ps[2].Y != 60 {
		t.Errorf("Expected in-bounds particle untouched, got (%v, %v)", ps[2].X, ps[2].Y)
	}
	if ps[3].X != -5 {
		t.Errorf("Expected negative x left alone, got %v", ps[3].X)
	}
}
