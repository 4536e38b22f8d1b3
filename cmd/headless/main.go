package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"polyfall/config"
	"polyfall/logger"
	"polyfall/physics"
	"polyfall/profiler"
	"polyfall/render"
)

func main() {
	ticks := flag.Int("ticks", 500, "number of simulation steps to run")
	every := flag.Int("every", 50, "log the trajectory every N ticks (0 disables)")
	envFile := flag.String("env", "", "dotenv file with POLYFALL_* settings (default ./.env when present)")
	pngPath := flag.String("png", "", "write the final frame as PNG to this path")
	svgPath := flag.String("svg", "", "write the final frame as SVG to this path")
	profileDir := flag.String("profile", "", "directory for a CPU profile and trace of the run")
	flag.Parse()

	if err := run(*ticks, *every, *envFile, *pngPath, *svgPath, *profileDir); err != nil {
		log.Fatalf("headless run failed: %v", err)
	}
}

func run(ticks, every int, envFile, pngPath, svgPath, profileDir string) (err error) {
	lg := logger.New(logger.Headless)

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	if profileDir != "" {
		p := profiler.NewProfiler(profileDir)
		if err := p.Start("headless"); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			if _, _, stopErr := p.Stop(); stopErr != nil && err == nil {
				err = fmt.Errorf("failed to stop profiler: %w", stopErr)
			}
		}()
	}

	world := physics.NewWorldWithScene(cfg.Physics(), physics.DefaultScene())
	lg.Printf("running %d ticks with gravity=%.2f cull=%.0f", ticks, cfg.Gravity, cfg.CullY)

	contacts := 0
	for range ticks {
		world.Step()
		for _, s := range world.Shapes() {
			if !s.Static && world.Rest(s.ID).InContact() {
				contacts++
			}
		}
		if every > 0 && world.Tick()%every == 0 {
			logTrajectory(lg, world)
		}
	}

	for _, s := range world.Shapes() {
		if s.Static {
			continue
		}
		rest := world.Rest(s.ID)
		lg.Printf("shape #%d final y=%.6f vy=%.3f resting=%v lastVY=%.3f", s.ID, s.Position.Y, s.Velocity.Y, rest.Resting, rest.LastVelocityY)
	}
	lg.Printf("done after %d ticks, %d contacts", world.Tick(), contacts)

	if pngPath != "" {
		if err := writeFrame(pngPath, func(f *os.File) error {
			return render.NewRasterizer(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Background).WritePNG(f, world.Shapes())
		}); err != nil {
			return err
		}
		lg.Printf("frame written to %s", pngPath)
	}
	if svgPath != "" {
		if err := writeFrame(svgPath, func(f *os.File) error {
			return render.WriteSVG(f, cfg.ScreenWidth, cfg.ScreenHeight, world.Shapes())
		}); err != nil {
			return err
		}
		lg.Printf("frame written to %s", svgPath)
	}
	return nil
}

func logTrajectory(lg *logger.Logger, world *physics.World) {
	for _, s := range world.Shapes() {
		if s.Static {
			continue
		}
		b := s.Bounds()
		lg.Printf("tick %d #%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) bottom=%.3f",
			world.Tick(), s.ID, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, b.Max.Y)
	}
}

func writeFrame(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
