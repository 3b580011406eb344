package page

import (
	"testing"
	"time"
)

func TestTypewriterCycle(t *testing.T) {
	tw := NewTypewriter([]string{"Go", "Ok"})

	steps := []struct {
		text  string
		delay time.Duration
	}{
		{"G", typeDelay},
		{"Go", holdDelay},
		{"G", deleteDelay},
		{"", nextDelay},
		{"O", typeDelay},
		{"Ok", holdDelay},
		{"O", deleteDelay},
		{"", nextDelay},
		{"G", typeDelay},
	}
	for i, s := range steps {
		delay := tw.Tick()
		if tw.Text() != s.text || delay != s.delay {
			t.Fatalf("step %d: expected %q/%v, got %q/%v", i, s.text, s.delay, tw.Text(), delay)
		}
	}
}

func TestTypewriterUnicode(t *testing.T) {
	tw := NewTypewriter([]string{"héllo"})
	tw.Tick()
	tw.Tick()
	if tw.Text() != "hé" {
		t.Errorf("Expected %q, got %q", "hé", tw.Text())
	}
}

func TestTypewriterAdvance(t *testing.T) {
	tw := NewTypewriter([]string{"Data"})

	if n := tw.Advance(0); n != 1 || tw.Text() != "D" {
		t.Fatalf("Expected first character immediately, got %d typed, %q", n, tw.Text())
	}
	if n := tw.Advance(99 * time.Millisecond); n != 0 {
		t.Errorf("Expected nothing typed before 100ms, got %d", n)
	}
	if n := tw.Advance(time.Millisecond); n != 1 || tw.Text() != "Da" {
		t.Errorf("Expected second character at 100ms, got %d typed, %q", n, tw.Text())
	}
	if n := tw.Advance(200 * time.Millisecond); n != 2 || tw.Text() != "Data" {
		t.Errorf("Expected full word, got %d typed, %q", n, tw.Text())
	}
	if !tw.Deleting() {
		t.Error("Expected typewriter to switch to deleting")
	}
	if n := tw.Advance(holdDelay); n != 0 || tw.Text() != "Dat" {
		t.Errorf("Expected deletion after the hold, got %d typed, %q", n, tw.Text())
	}
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter([]string{"", ""})
	if n := tw.Advance(10 * time.Second); n != 0 {
		t.Errorf("Expected nothing typed, got %d", n)
	}
	if tw.Text() != "" {
		t.Errorf("Expected empty text, got %q", tw.Text())
	}
}
