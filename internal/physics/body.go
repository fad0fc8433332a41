package physics

import (
	"fmt"
	"math"
)

// BodyType says whether a body is moved by the solver or driven from outside.
type BodyType int

const (
	// BodyDynamic bodies have finite mass and are affected by gravity, damping and impulses.
	BodyDynamic BodyType = iota
	// BodyKinematic bodies have infinite mass. They only emit impulses onto others and are moved
	// by the kinematic driver.
	BodyKinematic
)

func (t BodyType) String() string {
	switch t {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	}
	return fmt.Sprintf("BodyType(%d)", int(t))
}

// Body is a 2D rigid body. Orientation is not tracked: circles are rotation invariant and
// kinematic bodies store their rotation directly in their segment geometry.
type Body struct {
	typ      BodyType
	position Vector
	velocity Vector
	mass     float64
	invMass  float64
	moment   float64
	spin     float64 // rad/s, kinematic only
	shapes   []*Shape
}

// NewDynamicBody returns a dynamic body at position. radius is used for the moment of inertia
// (solid disc). mass and radius must both be > 0.
func NewDynamicBody(position Vector, mass, radius float64) (*Body, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return &Body{
		typ:      BodyDynamic,
		position: position,
		mass:     mass,
		invMass:  1 / mass,
		moment:   MomentForCircle(mass, 0, radius),
	}, nil
}

// NewKinematicBody returns a kinematic body centered at position. Its velocity is always zero.
func NewKinematicBody(position Vector) *Body {
	return &Body{
		typ:      BodyKinematic,
		position: position,
		mass:     math.Inf(1),
		moment:   math.Inf(1),
	}
}

// MomentForCircle returns the moment of inertia of a hollow circle with inner radius r1 and
// outer radius r2. r1 = 0 gives a solid disc.
func MomentForCircle(mass, r1, r2 float64) float64 {
	return mass * (r1*r1 + r2*r2) / 2
}

func (b *Body) Type() BodyType { return b.typ }

func (b *Body) Position() Vector { return b.position }

// SetPosition teleports the body. For kinematic bodies this moves the whole cage.
func (b *Body) SetPosition(p Vector) { b.position = p }

func (b *Body) Velocity() Vector { return b.velocity }

// SetVelocity sets the linear velocity of a dynamic body. Kinematic bodies ignore it.
func (b *Body) SetVelocity(v Vector) {
	if b.typ == BodyKinematic {
		return
	}
	b.velocity = v
}

// Mass returns the body mass, +Inf for kinematic bodies.
func (b *Body) Mass() float64 { return b.mass }

// InverseMass returns 1/mass, 0 for kinematic bodies.
func (b *Body) InverseMass() float64 { return b.invMass }

func (b *Body) Moment() float64 { return b.moment }

// Spin returns the rotation rate applied by the kinematic driver in rad/s.
func (b *Body) Spin() float64 { return b.spin }

// SetSpin sets how fast the kinematic driver rotates this body's segments about the body
// position, in rad/s. It has no effect on dynamic bodies and never enters impulse math.
func (b *Body) SetSpin(radPerSec float64) {
	if b.typ != BodyKinematic {
		return
	}
	b.spin = radPerSec
}

// Shapes returns the shapes attached to the body.
func (b *Body) Shapes() []*Shape {
	return b.shapes
}

// KineticEnergy returns ½mv². Kinematic bodies report 0.
func (b *Body) KineticEnergy() float64 {
	if b.typ == BodyKinematic {
		return 0
	}
	return 0.5 * b.mass * b.velocity.Dot(b.velocity)
}

func (b *Body) String() string {
	return fmt.Sprintf("Body{%s pos=%v vel=%v}", b.typ, b.position, b.velocity)
}

// updateVelocity applies gravity then global damping.
func (b *Body) updateVelocity(gravity Vector, damping, dt float64) {
	b.velocity = b.velocity.Add(gravity.Mul(dt)).Mul(damping)
}

func (b *Body) updatePosition(dt float64) {
	b.position = b.position.Add(b.velocity.Mul(dt))
}

func (b *Body) applyImpulse(j Vector) {
	b.velocity = b.velocity.Add(j.Mul(b.invMass))
}
