package game

import "github.com/iburimskiy/portfolio-hero/internal/config"

// navLink is a clickable section link in screen coordinates.
type navLink struct {
	id, label  string
	x, y, w, h int
}

func (l navLink) contains(x, y int) bool {
	return x >= l.x && x < l.x+l.w && y >= l.y && y < l.y+l.h
}

// navLinks lays out the section links: in a row at the right of the bar
// on wide windows, stacked under the bar while the mobile menu is open,
// and not at all while it is closed.
func (g *game) navLinks() []navLink {
	sections := g.page.Sections
	if g.page.Mobile() {
		if !g.page.Nav.MenuOpen {
			return nil
		}
		links := make([]navLink, 0, len(sections))
		for i, s := range sections {
			links = append(links, navLink{
				id:    s.ID,
				label: s.Title,
				x:     20,
				y:     config.NavbarHeight + i*config.MenuItemHeight,
				w:     g.width - 40,
				h:     config.MenuItemHeight,
			})
		}
		return links
	}

	total := 0
	for i, s := range sections {
		if i > 0 {
			total += config.NavLinkSpacing
		}
		total += len(s.Title) * charWidth
	}
	x := g.width - 20 - total
	links := make([]navLink, 0, len(sections))
	for _, s := range sections {
		w := len(s.Title) * charWidth
		links = append(links, navLink{id: s.ID, label: s.Title, x: x, y: 0, w: w, h: config.NavbarHeight})
		x += w + config.NavLinkSpacing
	}
	return links
}

func (g *game) hamburgerRect() (x, y, w, h int) {
	return g.width - 20 - config.HamburgerSize, (config.NavbarHeight - config.HamburgerSize) / 2, config.HamburgerSize, config.HamburgerSize
}

// handleClick toggles the mobile menu or follows a section link.
func (g *game) handleClick(x, y int) {
	if g.page.Mobile() {
		hx, hy, hw, hh := g.hamburgerRect()
		if x >= hx && x < hx+hw && y >= hy && y < hy+hh {
			g.page.Nav.ToggleMenu()
			return
		}
	}
	for _, l := range g.navLinks() {
		if l.contains(x, y) {
			g.page.FollowLink(l.id)
			return
		}
	}
}
