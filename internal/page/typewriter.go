package page

import "time"

const (
	typeDelay   = 100 * time.Millisecond
	deleteDelay = 50 * time.Millisecond
	holdDelay   = 2000 * time.Millisecond
	nextDelay   = 500 * time.Millisecond
	idleDelay   = time.Second
)

// Typewriter types each title out, holds it, deletes it and moves on to
// the next one, forever.
type Typewriter struct {
	titles   [][]rune
	title    int
	chars    int
	deleting bool
	text     string
	wait     time.Duration
}

// NewTypewriter returns a typewriter whose first character is due immediately.
func NewTypewriter(titles []string) *Typewriter {
	t := &Typewriter{}
	for _, s := range titles {
		if s != "" {
			t.titles = append(t.titles, []rune(s))
		}
	}
	return t
}

// Text is what is currently shown.
func (t *Typewriter) Text() string {
	return t.text
}

// Deleting reports whether the current title is being erased.
func (t *Typewriter) Deleting() bool {
	return t.deleting
}

// Tick performs one step and returns the delay before the next one.
func (t *Typewriter) Tick() time.Duration {
	if len(t.titles) == 0 {
		return idleDelay
	}
	current := t.titles[t.title]

	var delay time.Duration
	if t.deleting {
		t.chars--
		delay = deleteDelay
	} else {
		t.chars++
		delay = typeDelay
	}
	t.text = string(current[:t.chars])

	switch {
	case !t.deleting && t.chars == len(current):
		delay = holdDelay
		t.deleting = true
	case t.deleting && t.chars == 0:
		t.deleting = false
		t.title = (t.title + 1) % len(t.titles)
		delay = nextDelay
	}
	return delay
}

// Advance runs every step that falls due within elapsed and returns
// how many characters were typed (not deleted) along the way.
func (t *Typewriter) Advance(elapsed time.Duration) int {
	typed := 0
	t.wait -= elapsed
	for t.wait <= 0 {
		wasDeleting := t.deleting
		t.wait += t.Tick()
		if !wasDeleting && len(t.titles) > 0 {
			typed++
		}
	}
	return typed
}
