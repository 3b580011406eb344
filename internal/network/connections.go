package network

import (
	"iter"
	"math"

	"github.com/iburimskiy/portfolio-hero/internal/config"
)

// Connection joins particles I and J (I < J) with a line of the given opacity.
type Connection struct {
	I, J    int
	Opacity float64
}

// Connections yields every pair of particles closer than
// cfg.ConnectionDistance. Opacity falls off linearly with distance.
// The scan is quadratic and runs against the current positions each
// time the sequence is iterated.
func Connections(ps []Particle, cfg config.Simulation) iter.Seq[Connection] {
	return func(yield func(Connection) bool) {
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				dist := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
				if dist >= cfg.ConnectionDistance {
					continue
				}
				c := Connection{
					I:       i,
					J:       j,
					Opacity: (1 - dist/cfg.ConnectionDistance) * cfg.ConnectionOpacity,
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}
