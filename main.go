package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/iburimskiy/portfolio-hero/internal/config"
	"github.com/iburimskiy/portfolio-hero/internal/game"
	"github.com/iburimskiy/portfolio-hero/internal/page"
)

func main() {
	cfg := config.Load()

	content := page.DefaultContent()
	if cfg.ContentPath != "" {
		c, err := page.LoadContent(cfg.ContentPath)
		if err != nil {
			log.Printf("using built-in content: %v", err)
		} else {
			content = c
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - " + content.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(cfg, content)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
