package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"polyfall/config"
	"polyfall/game"
	"polyfall/physics"
	"polyfall/profiler"
)

func main() {
	envFile := flag.String("env", "", "dotenv file with POLYFALL_* settings (default ./.env when present)")
	profileDir := flag.String("profile", "", "directory for a CPU profile and trace of the session")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *profileDir != "" {
		p := profiler.NewProfiler(*profileDir)
		if err := p.Start("window"); err != nil {
			log.Fatalf("Failed to start profiler: %v", err)
		}
		defer func() {
			if _, _, err := p.Stop(); err != nil {
				log.Printf("Failed to stop profiler: %v", err)
			}
		}()
	}

	g := game.NewGame(cfg, physics.DefaultScene())

	ebiten.SetTPS(cfg.TPS())
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
}
