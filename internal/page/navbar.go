package page

import "github.com/iburimskiy/portfolio-hero/internal/config"

// Navbar is the top navigation bar state.
type Navbar struct {
	// Scrolled switches the bar to its solid style.
	Scrolled bool
	// MenuOpen is set while the hamburger menu is expanded.
	MenuOpen bool
	// Active is the id of the highlighted section link.
	Active string
}

// Update restyles the bar for the given scroll offset.
func (n *Navbar) Update(scrollY float64) {
	n.Scrolled = scrollY > config.NavbarScrollY
}

// ToggleMenu flips the hamburger and the link list together.
func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// CloseMenu collapses the menu, as after a link was followed.
func (n *Navbar) CloseMenu() {
	n.MenuOpen = false
}

// Section is a laid out block of the page.
type Section struct {
	ID     string
	Title  string
	Lines  []string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the last section whose top is at or
// above a third of the way down the viewport, or "" when none is.
func ActiveSection(sections []Section, scrollY, viewportH float64) string {
	pos := scrollY + viewportH/3
	current := ""
	for _, s := range sections {
		if pos >= s.Top {
			current = s.ID
		}
	}
	return current
}
