package config

import (
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Portfolio"

	// CanvasID names the hero background canvas.
	CanvasID = "hero-canvas"

	// Navbar
	NavbarHeight      = 48
	NavbarScrollY     = 50
	MobileBreakpoint  = 768
	HamburgerSize     = 28
	NavLinkSpacing    = 24
	MenuItemHeight    = 32
	ScrollStep        = 40
	SectionPadding    = 40
	TypedTextOffsetY  = 60
	StatusLineOffsetY = 18

	// Fade-in
	RevealThreshold    = 0.15
	RevealBottomMargin = -50
	RevealDurationMS   = 600

	// Key click
	ClickSampleRate = 44100
	ClickFrequency  = 1800
	ClickDurationMS = 18
	ClickVolume     = 0.15
)

// Simulation is the set of particle network tunables. It is built once
// at startup and never mutated afterwards.
type Simulation struct {
	ParticleCount      int
	MinRadius          float64
	MaxRadius          float64
	Speed              float64
	ConnectionDistance float64
	MouseRepelRadius   float64
	MouseRepelForce    float64
	Colors             []color.RGBA
	LineColor          color.RGBA
	LineWidth          float64
	// ConnectionOpacity is the opacity of a connection between two
	// coincident particles; it falls off linearly to 0 at ConnectionDistance.
	ConnectionOpacity float64
}

// DefaultSimulation returns the stock hero animation settings.
func DefaultSimulation() Simulation {
	return Simulation{
		ParticleCount:      70,
		MinRadius:          1.5,
		MaxRadius:          4,
		Speed:              0.4,
		ConnectionDistance: 150,
		MouseRepelRadius:   120,
		MouseRepelForce:    0.8,
		Colors: []color.RGBA{
			rgba(108, 60, 224, 0.6), // purple
			rgba(139, 92, 246, 0.5), // lighter purple
			rgba(0, 212, 170, 0.6),  // teal
			rgba(45, 212, 191, 0.5), // lighter teal
		},
		LineColor:         color.RGBA{R: 108, G: 80, B: 200, A: 255},
		LineWidth:         0.8,
		ConnectionOpacity: 0.25,
	}
}

// App is the full runtime configuration.
type App struct {
	Simulation   Simulation
	WindowWidth  int
	WindowHeight int
	Sound        bool
	ContentPath  string
}

// Load builds the configuration from defaults and HERO_* environment
// variables. Malformed values are logged and ignored.
func Load() App {
	sim := DefaultSimulation()
	sim.ParticleCount = envInt("HERO_PARTICLES", sim.ParticleCount)
	sim.Speed = envFloat("HERO_SPEED", sim.Speed)
	sim.ConnectionDistance = envFloat("HERO_CONNECTION_DISTANCE", sim.ConnectionDistance)
	sim.MouseRepelRadius = envFloat("HERO_REPEL_RADIUS", sim.MouseRepelRadius)
	sim.MouseRepelForce = envFloat("HERO_REPEL_FORCE", sim.MouseRepelForce)

	return App{
		Simulation:   sim,
		WindowWidth:  envInt("HERO_WINDOW_WIDTH", WindowWidth),
		WindowHeight: envInt("HERO_WINDOW_HEIGHT", WindowHeight),
		Sound:        envBool("HERO_SOUND", false),
		ContentPath:  os.Getenv("HERO_CONTENT"),
	}
}

// rgba converts a CSS style rgba() with alpha in [0,1] to a premultiplied color.RGBA.
func rgba(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(float64(r) * a)),
		G: uint8(math.Round(float64(g) * a)),
		B: uint8(math.Round(float64(b) * a)),
		A: uint8(math.Round(a * 255)),
	}
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: ignoring %s=%q: want a positive integer", key, v)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("config: ignoring %s=%q: want a non-negative number", key, v)
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, v, err)
		return def
	}
	return b
}
