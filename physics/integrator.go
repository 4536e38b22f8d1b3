package physics

// Integrate advances one shape by a single tick.
// The resting and bounce rules run against last tick's contacts before gravity
// is added, then the contact record is cleared.
func Integrate(s *Shape, rest *RestState) {
	if s.Static {
		return
	}

	rest.settle(s)

	s.Velocity = s.Velocity.Plus(s.Acceleration)
	s.LastPosition = s.Position
	s.Position = s.Position.Plus(s.Velocity)
	s.Rotation += s.AngularMomentum

	rest.clearContacts()
}
