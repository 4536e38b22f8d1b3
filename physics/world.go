package physics

// Config holds the simulation constants
type Config struct {
	// Gravity is the downward acceleration in pixels per tick squared
	Gravity float64

	// CullY is the line below which a shape's center is no longer simulated
	CullY float64
}

// DefaultConfig returns the constants of the shipped scene
func DefaultConfig() Config {
	return Config{
		Gravity: 0.2,
		CullY:   500,
	}
}

// World manages the shape set and steps the simulation
type World struct {
	// Configuration
	Config Config

	// All shapes in insertion order
	shapes []*Shape

	// Resting history of the moving shapes
	state *SimulationState

	collisions *CollisionSystem

	nextID int
	tick   int
}

// NewWorld creates an empty world
func NewWorld(config Config) *World {
	w := &World{
		Config: config,
		shapes: make([]*Shape, 0, 8),
		state:  NewSimulationState(),
		nextID: 1,
	}
	w.collisions = NewCollisionSystem(w)
	return w
}

// NewWorldWithScene creates a world populated with the given shapes
func NewWorldWithScene(config Config, scene []ShapeConfig) *World {
	w := NewWorld(config)
	for _, cfg := range scene {
		w.AddShape(cfg)
	}
	return w
}

// AddShape builds a shape from its configuration and registers it
func (w *World) AddShape(cfg ShapeConfig) *Shape {
	s := NewShape(w.nextID, cfg, w.Config.Gravity)
	w.nextID++
	w.shapes = append(w.shapes, s)
	return s
}

// Shapes returns all shapes in insertion order
func (w *World) Shapes() []*Shape {
	return w.shapes
}

// Shape returns the shape with the given id, or nil
func (w *World) Shape(id int) *Shape {
	for _, s := range w.shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Rest returns the resting history of a shape
func (w *World) Rest(id int) *RestState {
	return w.state.Rest(id)
}

// Collisions returns the collision system, mainly for its probes
func (w *World) Collisions() *CollisionSystem {
	return w.collisions
}

// Tick returns the number of steps taken so far
func (w *World) Tick() int {
	return w.tick
}

// Step advances every shape by one tick: integrate, then detect contacts
func (w *World) Step() {
	w.tick++
	w.collisions.Reset()

	for _, s := range w.shapes {
		if s.Position.Y > w.Config.CullY {
			continue
		}
		rest := w.state.Rest(s.ID)
		Integrate(s, rest)
		w.collisions.Detect(s, rest)
	}
}
