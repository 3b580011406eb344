package page

import "testing"

func TestNavbarScrolled(t *testing.T) {
	var n Navbar

	n.Update(50)
	if n.Scrolled {
		t.Error("Expected plain navbar at 50px")
	}
	n.Update(51)
	if !n.Scrolled {
		t.Error("Expected scrolled navbar past 50px")
	}
	n.Update(0)
	if n.Scrolled {
		t.Error("Expected plain navbar back at the top")
	}
}

func TestNavbarMenu(t *testing.T) {
	var n Navbar

	n.ToggleMenu()
	if !n.MenuOpen {
		t.Fatal("Expected menu open after toggle")
	}
	n.ToggleMenu()
	if n.MenuOpen {
		t.Fatal("Expected menu closed after second toggle")
	}
	n.ToggleMenu()
	n.CloseMenu()
	n.CloseMenu()
	if n.MenuOpen {
		t.Error("Expected menu closed")
	}
}

func TestActiveSection(t *testing.T) {
	sections := []Section{
		{ID: "hero", Top: 0},
		{ID: "about", Top: 600},
		{ID: "skills", Top: 900},
	}

	tests := []struct {
		scrollY float64
		want    string
	}{
		{0, "hero"},
		{399, "hero"},
		{400, "about"},
		{699, "about"},
		{700, "skills"},
		{5000, "skills"},
	}
	for _, tt := range tests {
		if got := ActiveSection(sections, tt.scrollY, 600); got != tt.want {
			t.Errorf("scrollY %v: expected %q, got %q", tt.scrollY, tt.want, got)
		}
	}

	if got := ActiveSection([]Section{{ID: "late", Top: 1000}}, 0, 600); got != "" {
		t.Errorf("Expected no active section, got %q", got)
	}
}
