package physics

import "math"

// Resting heuristic thresholds
const (
	// restDeltaTolerance is how close the change in bounce speed must be to the previous change
	restDeltaTolerance = 0.1

	// restSpeedLimit is the vertical speed below which a shape may be declared at rest
	restSpeedLimit = 5.0

	// restUnset seeds the velocity history so the first contact never rests
	restUnset = -1.0
)

// RestState holds the per-shape velocity history used to damp bouncing
type RestState struct {
	// LastVelocityY is the vertical velocity right after the last bounce
	LastVelocityY float64

	// LastVelocityDelta is the change in bounce speed between the last two bounces
	LastVelocityDelta float64

	// Contacts lists the vertex indices that touched another shape this tick
	Contacts []int

	// Displacement is how far the shape moved in the tick that ended in contact
	Displacement float64

	// Resting is true when the last integration zeroed the vertical velocity
	Resting bool
}

// NewRestState returns a rest state with an empty velocity history
func NewRestState() *RestState {
	return &RestState{
		LastVelocityY:     restUnset,
		LastVelocityDelta: restUnset,
	}
}

// InContact reports whether a contact was recorded since the last integration
func (r *RestState) InContact() bool {
	return len(r.Contacts) > 0
}

// recordContact stores a vertex index that landed on another shape
func (r *RestState) recordContact(vertex int) {
	r.Contacts = append(r.Contacts, vertex)
}

// settle applies the resting rules and the bounce to the shape's vertical velocity.
// It must run before gravity is added for the tick.
func (r *RestState) settle(s *Shape) {
	vy := s.Velocity.Y
	r.Resting = false

	if r.InContact() &&
		math.Abs(math.Abs(vy)-math.Abs(r.LastVelocityY)-r.LastVelocityDelta) < restDeltaTolerance &&
		math.Abs(vy) < restSpeedLimit {
		vy = 0
		r.Resting = true
	} else if r.LastVelocityY == 0 && vy > 0 {
		// once at rest a shape does not start falling again
		vy = 0
		r.Resting = true
	}

	if r.InContact() {
		r.Displacement = s.Position.DistanceFrom(s.LastPosition)
		r.LastVelocityDelta = math.Abs(vy) - math.Abs(r.LastVelocityY)
		vy = -vy
		r.LastVelocityY = vy
	}

	s.Velocity.Y = vy
}

// clearContacts forgets the contacts consumed by settle
func (r *RestState) clearContacts() {
	r.Contacts = r.Contacts[:0]
}

// SimulationState owns the resting history of every moving shape
type SimulationState struct {
	rest map[int]*RestState
}

// NewSimulationState creates an empty simulation state
func NewSimulationState() *SimulationState {
	return &SimulationState{rest: make(map[int]*RestState)}
}

// Rest returns the rest state for a shape, creating it on first use
func (st *SimulationState) Rest(id int) *RestState {
	r, ok := st.rest[id]
	if !ok {
		r = NewRestState()
		st.rest[id] = r
	}
	return r
}
