package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"polyfall/config"
	"polyfall/logger"
	"polyfall/physics"
)

// Game hosts the simulation in an ebiten window
type Game struct {
	world    *physics.World
	renderer *Renderer
	input    InputProvider
	config   config.Config
	log      *logger.Logger

	// paused stops the fixed-rate stepping; manual steps still run
	paused bool
}

// NewGame creates a new game instance and runs the startup tick
func NewGame(cfg config.Config, scene []physics.ShapeConfig) *Game {
	g := &Game{
		world:    physics.NewWorldWithScene(cfg.Physics(), scene),
		renderer: NewRenderer(),
		input:    NewKeyboardInput(),
		config:   cfg,
		log:      logger.New(logger.Game),
	}

	g.log.Printf("starting with %d shapes, gravity=%.2f, %d ticks/s", len(scene), cfg.Gravity, cfg.TPS())
	g.world.Step()

	return g
}

// World returns the simulated world
func (g *Game) World() *physics.World {
	return g.world
}

// SetInput replaces the command source
func (g *Game) SetInput(input InputProvider) {
	g.input = input
}

// Update runs one simulation step per ebiten tick
func (g *Game) Update() error {
	for _, cmd := range g.input.Poll() {
		g.handle(cmd)
	}

	if !g.paused {
		g.world.Step()
	}
	return nil
}

func (g *Game) handle(cmd Command) {
	debug := GetDebugState()
	switch cmd {
	case CommandStep:
		g.world.Step()
		g.log.Printf("manual step to tick %d", g.world.Tick())
	case CommandPause:
		g.paused = !g.paused
		g.log.Printf("paused=%v at tick %d", g.paused, g.world.Tick())
	case CommandToggleProbes:
		debug.ShowProbes = !debug.ShowProbes
	case CommandToggleHUD:
		debug.ShowHUD = !debug.ShowHUD
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.config.Background)
	g.renderer.Render(screen, g.world, g.paused)
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
