package game

import "github.com/iburimskiy/portfolio-hero/internal/canvas"

// frameLoop runs at most one scheduled callback per tick. Handles are
// never reused, so cancelling a stale handle cannot drop a newer frame.
type frameLoop struct {
	last    canvas.Handle
	pending canvas.Handle
	fn      func()
}

func (l *frameLoop) Schedule(fn func()) canvas.Handle {
	l.last++
	l.pending = l.last
	l.fn = fn
	return l.last
}

func (l *frameLoop) Cancel(h canvas.Handle) {
	if h != 0 && h == l.pending {
		l.pending = 0
		l.fn = nil
	}
}

// run executes the pending callback, if any. Callbacks scheduled while
// it runs wait for the next tick.
func (l *frameLoop) run() {
	fn := l.fn
	l.pending = 0
	l.fn = nil
	if fn != nil {
		fn()
	}
}
