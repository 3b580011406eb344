package game

import (
	"errors"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/portfolio-hero/internal/canvas"
	"github.com/iburimskiy/portfolio-hero/internal/config"
	"github.com/iburimskiy/portfolio-hero/internal/page"
	"github.com/iburimskiy/portfolio-hero/internal/sound"
)

const (
	charWidth       = 7 // basicfont.Face7x13 advance
	colorShiftSpeed = 0.01
	caretBlinkTicks = 32
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 22, A: 255}
	navbarColor     = color.RGBA{R: 14, G: 14, B: 32, A: 235}
	navbarEdge      = color.RGBA{R: 60, G: 50, B: 110, A: 255}
	linkColor       = color.RGBA{R: 200, G: 200, B: 215, A: 255}
	activeLinkColor = color.RGBA{R: 0, G: 212, B: 170, A: 255}
	headingColor    = color.RGBA{R: 240, G: 240, B: 250, A: 255}
	bodyColor       = color.RGBA{R: 170, G: 170, B: 190, A: 255}
)

type game struct {
	cfg config.App

	// hero animation
	driver        *canvas.Driver
	frames        *frameLoop
	hero          *heroCanvas
	pointerInside bool

	// page
	page       *page.Page
	colorPhase float64
	ticks      int

	// sound
	clicker    *sound.Clicker
	soundTried bool

	// viewport
	width, height int
	resized       bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	initDone bool
	lastErr  error
}

// NewGame returns the ebiten game for the portfolio window.
func NewGame(cfg config.App, content page.Content) ebiten.Game {
	return newGame(cfg, content)
}

func newGame(cfg config.App, content page.Content) *game {
	g := &game{
		cfg:     cfg,
		frames:  &frameLoop{},
		width:   cfg.WindowWidth,
		height:  cfg.WindowHeight,
		prevKey: map[ebiten.Key]bool{},
	}
	g.hero = &heroCanvas{container: func() (float64, float64) {
		return float64(g.width), float64(g.height)
	}}
	g.driver = canvas.New(cfg.Simulation, g.frames, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	g.page = page.New(content, float64(g.width), float64(g.height))
	return g
}

// Canvas resolves the hero canvas for the driver.
func (g *game) Canvas(id string) (canvas.Canvas, bool) {
	if id != config.CanvasID || g.hero == nil {
		return nil, false
	}
	return g.hero, true
}

func (g *game) Update() error {
	if !g.initDone {
		g.initDone = true
		g.driver.Init(g, config.CanvasID)
		if g.cfg.Sound {
			g.enableSound()
		}
	}
	if g.resized {
		g.resized = false
		g.page.Layout(float64(g.width), float64(g.height))
		g.driver.Resize()
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.updatePointer(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(mouseX, mouseY)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.page.ScrollBy(-wy * config.ScrollStep)
	}
	if justPressed(ebiten.KeyArrowDown) {
		g.page.ScrollBy(config.ScrollStep)
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.page.ScrollBy(-config.ScrollStep)
	}
	if justPressed(ebiten.KeyPageDown) {
		g.page.ScrollBy(float64(g.height) * 0.9)
	}
	if justPressed(ebiten.KeyPageUp) {
		g.page.ScrollBy(-float64(g.height) * 0.9)
	}
	if justPressed(ebiten.KeyHome) {
		g.page.ScrollTo(page.HeroID)
	}

	if justPressed(ebiten.KeySpace) {
		g.toggleAnimation()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openContentDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) {
		g.toggleSound()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if typed := g.page.Update(dt); typed > 0 && g.clicker != nil {
		g.clicker.Click()
	}
	g.colorPhase += colorShiftSpeed
	g.ticks++

	g.frames.run()
	return nil
}

// updatePointer forwards the cursor to the driver while it is over the
// visible part of the hero canvas. The navbar sits on top of the canvas.
func (g *game) updatePointer(x, y int) {
	canvasY := float64(y) + g.page.ScrollY
	inside := x >= 0 && x < g.width &&
		y >= config.NavbarHeight && y < g.height &&
		canvasY < float64(g.height)
	if g.page.Nav.MenuOpen && g.page.Mobile() && y < config.NavbarHeight+len(g.page.Sections)*config.MenuItemHeight {
		inside = false
	}

	if inside {
		g.driver.PointerMove(float64(x), canvasY)
		g.pointerInside = true
		return
	}
	if g.pointerInside {
		g.driver.PointerLeave()
		g.pointerInside = false
	}
}

func (g *game) toggleAnimation() {
	if g.driver.State() == canvas.Running {
		g.driver.Stop()
		return
	}
	g.driver.Init(g, config.CanvasID)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawHero(screen)
	g.drawSections(screen)
	g.drawNavbar(screen)

	status := "Wheel/arrows scroll | Space pause animation | O open content | M sound | Q quit"
	if g.driver.State() == canvas.Stopped {
		status = "Animation paused - Space to restart | O open content | Q quit"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-config.StatusLineOffsetY)
}

func (g *game) drawHero(screen *ebiten.Image) {
	top := -g.page.ScrollY
	if top+float64(g.height) <= 0 {
		return
	}
	if g.hero.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, top)
		screen.DrawImage(g.hero.img, op)
	}

	face := basicfont.Face7x13
	name := g.page.Content.Name
	centerY := int(top) + g.height/2
	text.Draw(screen, name, face, (g.width-len(name)*charWidth)/2, centerY, headingColor)

	typed := g.page.Typing.Text()
	x := (g.width - len([]rune(typed))*charWidth) / 2
	y := centerY + config.TypedTextOffsetY/2
	text.Draw(screen, typed, face, x, y, activeLinkColor)

	if (g.ticks/caretBlinkTicks)%2 == 0 {
		hue := 260 - 90*(0.5+0.5*math.Sin(g.colorPhase*math.Pi))
		r, gv, b := hsvToRgb(hue, 0.7, 0.95)
		caretX := float32(x + len([]rune(typed))*charWidth + 2)
		vector.StrokeLine(screen, caretX, float32(y-11), caretX, float32(y+2), 2, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *game) drawSections(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, s := range g.page.Sections {
		if s.ID == page.HeroID {
			continue
		}
		top := s.Top - g.page.ScrollY
		if top > float64(g.height) || top+s.Height < 0 {
			continue
		}
		alpha := g.page.Reveal.Alpha(s.ID)
		if alpha <= 0 {
			continue
		}
		// slide up while fading in
		y := int(top + config.SectionPadding + (1-alpha)*30)

		vector.StrokeLine(screen, config.SectionPadding, float32(top), float32(g.width-config.SectionPadding), float32(top), 1, canvas.Fade(navbarEdge, alpha), false)
		text.Draw(screen, s.Title, face, config.SectionPadding, y+13, canvas.Fade(headingColor, alpha))
		for i, line := range s.Lines {
			text.Draw(screen, line, face, config.SectionPadding, y+page.TitleHeight+13+i*page.LineHeight, canvas.Fade(bodyColor, alpha))
		}
	}
}

func (g *game) drawNavbar(screen *ebiten.Image) {
	nav := g.page.Nav
	if nav.Scrolled || (nav.MenuOpen && g.page.Mobile()) {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.NavbarHeight, navbarColor, false)
		vector.StrokeLine(screen, 0, config.NavbarHeight, float32(g.width), config.NavbarHeight, 1, navbarEdge, false)
	}

	face := basicfont.Face7x13
	text.Draw(screen, g.page.Content.Name, face, 20, config.NavbarHeight/2+5, headingColor)

	if g.page.Mobile() {
		g.drawHamburger(screen)
		if nav.MenuOpen {
			links := g.navLinks()
			if len(links) > 0 {
				h := links[len(links)-1].y + links[len(links)-1].h - config.NavbarHeight
				vector.DrawFilledRect(screen, 0, config.NavbarHeight, float32(g.width), float32(h), navbarColor, false)
			}
		}
	}

	for _, l := range g.navLinks() {
		clr := linkColor
		if l.id == nav.Active {
			clr = activeLinkColor
			vector.StrokeLine(screen, float32(l.x), float32(l.y+l.h-10), float32(l.x+l.w), float32(l.y+l.h-10), 2, clr, false)
		}
		text.Draw(screen, l.label, face, l.x, l.y+l.h/2+5, clr)
	}
}

func (g *game) drawHamburger(screen *ebiten.Image) {
	x, y, w, h := g.hamburgerRect()
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	if g.page.Nav.MenuOpen {
		vector.StrokeLine(screen, fx+4, fy+4, fx+fw-4, fy+fh-4, 2, linkColor, false)
		vector.StrokeLine(screen, fx+4, fy+fh-4, fx+fw-4, fy+4, 2, linkColor, false)
		return
	}
	for i := 1; i <= 3; i++ {
		ly := fy + fh*float32(i)/4
		vector.StrokeLine(screen, fx+4, ly, fx+fw-4, ly, 2, linkColor, false)
	}
}

func (g *game) openContentDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Portfolio Content"),
		zenity.FileFilters{{
			Name:     "Portfolio content",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	c, err := page.LoadContent(filename)
	if err != nil {
		return err
	}
	log.Printf("loaded content from %s", filename)
	g.page.SetContent(c)
	g.lastErr = nil
	return nil
}

func (g *game) toggleSound() {
	if g.clicker == nil {
		if !g.soundTried {
			g.enableSound()
		}
		return
	}
	g.clicker.SetMuted(!g.clicker.Muted())
}

// enableSound initializes the speaker once. A failure leaves sound off
// for the rest of the session.
func (g *game) enableSound() {
	if g.soundTried {
		return
	}
	g.soundTried = true
	c, err := sound.NewClicker()
	if err != nil {
		log.Printf("sound disabled: %v", err)
		g.lastErr = err
		return
	}
	g.clicker = c
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}
