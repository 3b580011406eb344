// Package canvas drives the particle network on a drawing surface:
// it owns the particles, the pointer and the pending frame, and turns
// host events into simulator input.
package canvas

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/portfolio-hero/internal/config"
	"github.com/iburimskiy/portfolio-hero/internal/network"
)

// Surface is the set of drawing primitives the driver needs.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
}

// Canvas is a resolved drawing surface that knows the size of the
// element containing it.
type Canvas interface {
	Surface
	ContainerSize() (width, height float64)
	// SetSize resizes the drawing buffer.
	SetSize(width, height float64)
}

// Host resolves canvases by id. ok alone decides whether the id
// resolved; a host must not report ok with a nil Canvas.
type Host interface {
	Canvas(id string) (Canvas, bool)
}

// Handle identifies a scheduled frame. The zero Handle is never issued.
type Handle uint64

// Scheduler runs a callback once on the next frame.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// State of the animation loop.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Driver is the sole owner of the animation context.
type Driver struct {
	cfg   config.Simulation
	sched Scheduler
	rng   *rand.Rand

	canvas    Canvas
	bounds    network.Bounds
	particles []network.Particle
	pointer   network.Pointer
	pending   Handle
	state     State
}

// New returns a stopped driver.
func New(cfg config.Simulation, sched Scheduler, rng *rand.Rand) *Driver {
	return &Driver{
		cfg:   cfg,
		sched: sched,
		rng:   rng,
	}
}

// Init binds the driver to the canvas with the given id, creates the
// particles and starts the loop. A canvas that cannot be resolved
// leaves the driver stopped and reports false; nothing else happens.
func (d *Driver) Init(host Host, id string) bool {
	c, ok := host.Canvas(id)
	if !ok {
		return false
	}
	d.Stop()

	d.canvas = c
	d.fit()
	d.particles = network.Initialize(d.bounds, d.cfg, d.rng)
	d.pointer = network.Pointer{}
	d.state = Running
	d.pending = d.sched.Schedule(d.frame)
	return true
}

// Stop cancels the pending frame. Calling it again is a no-op.
func (d *Driver) Stop() {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	if d.pending != 0 {
		d.sched.Cancel(d.pending)
		d.pending = 0
	}
}

// State reports whether the loop is running.
func (d *Driver) State() State {
	return d.state
}

// Particles exposes the current particle set. Callers must not keep it
// across frames.
func (d *Driver) Particles() []network.Particle {
	return d.particles
}

// Bounds returns the current canvas size.
func (d *Driver) Bounds() network.Bounds {
	return d.bounds
}

// PointerMove records the cursor position relative to the canvas origin.
func (d *Driver) PointerMove(x, y float64) {
	d.pointer = network.At(x, y)
}

// PointerLeave clears the pointer.
func (d *Driver) PointerLeave() {
	d.pointer = network.Pointer{}
}

// Pointer returns the last recorded pointer.
func (d *Driver) Pointer() network.Pointer {
	return d.pointer
}

// Resize re-reads the container size and moves particles that ended up
// past the new right or bottom edge back inside.
func (d *Driver) Resize() {
	if d.canvas == nil {
		return
	}
	d.fit()
	network.Resample(d.particles, d.bounds, d.rng)
}

func (d *Driver) fit() {
	w, h := d.canvas.ContainerSize()
	d.canvas.SetSize(w, h)
	d.bounds = network.Bounds{Width: w, Height: h}
}

func (d *Driver) frame() {
	d.pending = 0
	if d.state != Running {
		return
	}

	d.canvas.Clear()

	for c := range network.Connections(d.particles, d.cfg) {
		a, b := d.particles[c.I], d.particles[c.J]
		d.canvas.StrokeLine(a.X, a.Y, b.X, b.Y, d.cfg.LineWidth, Fade(d.cfg.LineColor, c.Opacity))
	}

	for i := range d.particles {
		network.Step(&d.particles[i], d.bounds, d.pointer, d.cfg)
		p := d.particles[i]
		d.canvas.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}

	d.pending = d.sched.Schedule(d.frame)
}

// Fade scales an opaque color to the given opacity, premultiplied.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
