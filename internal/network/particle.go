// Package network simulates the hero background: a set of drifting
// particles that bounce off the canvas edges, are pushed away by the
// pointer and are joined by lines when close to each other.
//
// Everything here is a plain function over caller-owned data; the
// package keeps no state of its own.
package network

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/portfolio-hero/internal/config"
)

// Bounds is the canvas size in pixels.
type Bounds struct {
	Width, Height float64
}

// Particle is one animated point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// Pointer is the last known cursor position relative to the canvas
// origin. The zero value means no pointer.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// At returns a present pointer at (x, y).
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Valid: true}
}

// Initialize creates cfg.ParticleCount particles spread uniformly over b.
func Initialize(b Bounds, cfg config.Simulation, rng *rand.Rand) []Particle {
	ps := make([]Particle, cfg.ParticleCount)
	for i := range ps {
		ps[i] = Particle{
			X:      rng.Float64() * b.Width,
			Y:      rng.Float64() * b.Height,
			VX:     (rng.Float64() - 0.5) * cfg.Speed * 2,
			VY:     (rng.Float64() - 0.5) * cfg.Speed * 2,
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		}
		if len(cfg.Colors) > 0 {
			ps[i].Color = cfg.Colors[rng.IntN(len(cfg.Colors))]
		}
	}
	return ps
}

// Step advances p by one frame.
func Step(p *Particle, b Bounds, ptr Pointer, cfg config.Simulation) {
	// Drift
	p.X += p.VX
	p.Y += p.VY

	// Bounce off edges, each axis on its own
	if p.X < 0 || p.X > b.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > b.Height {
		p.VY = -p.VY
	}

	p.X = clamp(p.X, 0, b.Width)
	p.Y = clamp(p.Y, 0, b.Height)

	if !ptr.Valid {
		return
	}
	dx := p.X - ptr.X
	dy := p.Y - ptr.Y
	dist := math.Hypot(dx, dy)
	if dist <= 0 || dist >= cfg.MouseRepelRadius {
		return
	}
	// Positional nudge only: velocity is left alone so the push does
	// not outlive the pointer. The result is clamped again so a particle
	// near an edge cannot be pushed off the canvas.
	force := (cfg.MouseRepelRadius - dist) / cfg.MouseRepelRadius * cfg.MouseRepelForce
	p.X = clamp(p.X+dx/dist*force, 0, b.Width)
	p.Y = clamp(p.Y+dy/dist*force, 0, b.Height)
}

// Resample moves particles that lie beyond the right or bottom edge of
// b to a random position on that axis. Coordinates below zero are left
// as they are; Step clamps them on the next frame.
func Resample(ps []Particle, b Bounds, rng *rand.Rand) {
	for i := range ps {
		if ps[i].X > b.Width {
			ps[i].X = rng.Float64() * b.Width
		}
		if ps[i].Y > b.Height {
			ps[i].Y = rng.Float64() * b.Height
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
