package page

import (
	"math"
	"time"
)

type target struct {
	top, height float64
}

// Observer fades elements in the first time enough of them scrolls into
// view. An element that has been revealed is no longer observed.
type Observer struct {
	threshold    float64
	bottomMargin float64
	duration     time.Duration

	pending map[string]target
	shown   map[string]time.Duration
}

// NewObserver reveals an element once threshold (0..1) of its height
// intersects the viewport shrunk or grown at the bottom by bottomMargin
// pixels. Revealed elements reach full opacity after duration.
func NewObserver(threshold, bottomMargin float64, duration time.Duration) *Observer {
	return &Observer{
		threshold:    threshold,
		bottomMargin: bottomMargin,
		duration:     duration,
		pending:      map[string]target{},
		shown:        map[string]time.Duration{},
	}
}

// Observe starts watching id at the given page position, or updates its
// position. Elements already revealed are ignored.
func (o *Observer) Observe(id string, top, height float64) {
	if _, ok := o.shown[id]; ok {
		return
	}
	o.pending[id] = target{top: top, height: height}
}

// Check reveals every observed element intersecting the viewport that
// starts at scrollY and is viewportH tall, and returns their ids.
func (o *Observer) Check(scrollY, viewportH float64) []string {
	rootTop := scrollY
	rootBottom := scrollY + viewportH + o.bottomMargin

	var revealed []string
	for id, t := range o.pending {
		inter := math.Min(rootBottom, t.top+t.height) - math.Max(rootTop, t.top)
		if inter <= 0 && t.height > 0 {
			continue
		}
		ratio := 1.0
		if t.height > 0 {
			ratio = inter / t.height
		} else if t.top < rootTop || t.top > rootBottom {
			continue
		}
		if ratio < o.threshold {
			continue
		}
		delete(o.pending, id)
		o.shown[id] = 0
		revealed = append(revealed, id)
	}
	return revealed
}

// Advance moves the fade-in of revealed elements forward.
func (o *Observer) Advance(dt time.Duration) {
	for id, el := range o.shown {
		if el < o.duration {
			o.shown[id] = el + dt
		}
	}
}

// Visible reports whether id has been revealed.
func (o *Observer) Visible(id string) bool {
	_, ok := o.shown[id]
	return ok
}

// Observing reports whether id is still waiting to be revealed.
func (o *Observer) Observing(id string) bool {
	_, ok := o.pending[id]
	return ok
}

// Alpha is the current opacity of id: 0 until revealed, then rising to 1.
func (o *Observer) Alpha(id string) float64 {
	el, ok := o.shown[id]
	if !ok {
		return 0
	}
	if o.duration <= 0 {
		return 1
	}
	return clamp01(float64(el) / float64(o.duration))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
