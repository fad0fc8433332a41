package physics

// The kinematic driver moves kinematic bodies by rewriting their segment geometry. A rotating
// cage has no velocity of its own: the resolver sees it as infinitely heavy and motionless, so
// the spinning walls push the ball out of penetration but never drag it along tangentially.

// driveKinematic rotates the body's segments by spin*dt about the body position.
func driveKinematic(b *Body, dt float64) {
	if b.spin == 0 {
		return
	}
	b.RotateShapes(b.spin * dt)
}

// RotateShapes rotates every segment attached to b about the body position by angle radians.
// Circles are centered on the body and are unaffected.
func (b *Body) RotateShapes(angle float64) {
	rot := ForAngle(angle)
	for _, s := range b.shapes {
		if s.kind != ShapeSegment {
			continue
		}
		s.a = Rotate(s.a, rot)
		s.b = Rotate(s.b, rot)
	}
}
