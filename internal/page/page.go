// Package page holds the non-canvas parts of the portfolio: navigation,
// the typed headline, section layout and fade-in on scroll.
package page

import (
	"math"
	"time"

	"github.com/iburimskiy/portfolio-hero/internal/config"
)

// HeroID is the id of the full-viewport block at the top of the page.
const HeroID = "hero"

const (
	LineHeight  = 16
	TitleHeight = 28
)

// Page is the scrollable document.
type Page struct {
	Content  Content
	Nav      Navbar
	Typing   *Typewriter
	Reveal   *Observer
	Sections []Section

	ScrollY   float64
	viewportW float64
	viewportH float64
}

// New lays out c for a viewport of the given size.
func New(c Content, viewportW, viewportH float64) *Page {
	p := &Page{
		Content: c,
		Typing:  NewTypewriter(c.Titles),
		Reveal: NewObserver(config.RevealThreshold, config.RevealBottomMargin,
			config.RevealDurationMS*time.Millisecond),
	}
	p.Layout(viewportW, viewportH)
	return p
}

// Layout recomputes section positions for a new viewport size.
func (p *Page) Layout(viewportW, viewportH float64) {
	p.viewportW, p.viewportH = viewportW, viewportH

	p.Sections = p.Sections[:0]
	p.Sections = append(p.Sections, Section{ID: HeroID, Title: "Home", Top: 0, Height: viewportH})
	top := viewportH
	for _, sc := range p.Content.Sections {
		h := 2*config.SectionPadding + TitleHeight + float64(len(sc.Lines))*LineHeight
		p.Sections = append(p.Sections, Section{
			ID:     sc.ID,
			Title:  sc.Title,
			Lines:  sc.Lines,
			Top:    top,
			Height: h,
		})
		p.Reveal.Observe(sc.ID, top, h)
		top += h
	}
	p.scrollTo(p.ScrollY)
}

// Viewport returns the current viewport size.
func (p *Page) Viewport() (float64, float64) {
	return p.viewportW, p.viewportH
}

// Height is the total height of the laid out page.
func (p *Page) Height() float64 {
	if len(p.Sections) == 0 {
		return p.viewportH
	}
	last := p.Sections[len(p.Sections)-1]
	return last.Top + last.Height
}

// Mobile reports whether the viewport is narrow enough for the hamburger menu.
func (p *Page) Mobile() bool {
	return p.viewportW < config.MobileBreakpoint
}

// ScrollBy scrolls the page by dy pixels.
func (p *Page) ScrollBy(dy float64) {
	p.scrollTo(p.ScrollY + dy)
}

// ScrollTo brings the section with the given id to the top of the
// viewport, just below the navbar. Unknown ids are ignored.
func (p *Page) ScrollTo(id string) {
	for _, s := range p.Sections {
		if s.ID == id {
			y := s.Top
			if id != HeroID {
				y -= config.NavbarHeight
			}
			p.scrollTo(y)
			return
		}
	}
}

// FollowLink scrolls to the linked section and collapses the menu.
func (p *Page) FollowLink(id string) {
	p.ScrollTo(id)
	p.Nav.CloseMenu()
}

func (p *Page) scrollTo(y float64) {
	maxY := math.Max(0, p.Height()-p.viewportH)
	p.ScrollY = math.Max(0, math.Min(maxY, y))
	p.Nav.Update(p.ScrollY)
	p.Nav.Active = ActiveSection(p.Sections, p.ScrollY, p.viewportH)
	p.Reveal.Check(p.ScrollY, p.viewportH)
}

// Update advances time-based effects and returns how many headline
// characters were typed.
func (p *Page) Update(dt time.Duration) int {
	p.Reveal.Advance(dt)
	return p.Typing.Advance(dt)
}

// SetContent replaces the page text and restarts the headline.
func (p *Page) SetContent(c Content) {
	p.Content = c
	p.Typing = NewTypewriter(c.Titles)
	p.Reveal = NewObserver(p.Reveal.threshold, p.Reveal.bottomMargin, p.Reveal.duration)
	p.ScrollY = 0
	p.Nav.CloseMenu()
	p.Layout(p.viewportW, p.viewportH)
}
