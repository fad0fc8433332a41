package physics

import "fmt"

// World owns a set of bodies and their shapes and advances them with Step.
// A World is driven by a single goroutine: nothing inside it locks, and callers must treat it
// as read-only between calls to Step.
type World struct {
	gravity Vector
	damping float64

	bodies []*Body
	shapes []*Shape
	member map[*Body]bool
	owned  map[*Shape]bool

	contacts []Contact // reused every tick
	ticks    uint64
}

// NewWorld returns an empty world with no gravity and no damping (factor 1).
func NewWorld() *World {
	return &World{
		damping: 1,
		member:  make(map[*Body]bool),
		owned:   make(map[*Shape]bool),
	}
}

// SetGravity sets the gravity vector (e.g. (0, 900) for down in screen space).
func (w *World) SetGravity(g Vector) {
	w.gravity = g
}

func (w *World) Gravity() Vector { return w.gravity }

// SetDamping sets the global velocity factor applied to dynamic bodies every tick.
// 1 means no damping; 0.99 keeps 99% of the velocity per tick.
func (w *World) SetDamping(d float64) error {
	if !(d >= 0 && d <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, d)
	}
	w.damping = d
	return nil
}

func (w *World) Damping() float64 { return w.damping }

// AddBody appends a body to the world. Order is preserved for enumeration and contact order.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if w.member[b] {
		return ErrBodyExists
	}
	w.member[b] = true
	w.bodies = append(w.bodies, b)
	return nil
}

// AddShape adds a shape whose body is already in the world.
func (w *World) AddShape(s *Shape) error {
	if s == nil || s.body == nil {
		return ErrNilBody
	}
	if !w.member[s.body] {
		return ErrBodyNotInWorld
	}
	if w.owned[s] {
		return ErrShapeExists
	}
	w.owned[s] = true
	w.shapes = append(w.shapes, s)
	return nil
}

// Add adds a body together with every shape attached to it.
func (w *World) Add(b *Body) error {
	if err := w.AddBody(b); err != nil {
		return err
	}
	for _, s := range b.shapes {
		if err := w.AddShape(s); err != nil {
			return err
		}
	}
	return nil
}

// Bodies returns the bodies in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Shapes returns the shapes in insertion order. The slice must not be modified.
func (w *World) Shapes() []*Shape {
	return w.shapes
}

// Geometry returns a snapshot of every shape's world-space geometry.
func (w *World) Geometry() []Geometry {
	out := make([]Geometry, len(w.shapes))
	for i, s := range w.shapes {
		out[i] = s.Geometry()
	}
	return out
}

// Ticks returns the number of completed steps.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// LastContacts returns the contacts found and resolved by the most recent step, with the
// impulses that were applied. The slice is reused by the next Step.
func (w *World) LastContacts() []Contact {
	return w.contacts
}

// Step advances the simulation by dt seconds:
// kinematic driver, gravity and damping, contact detection, contact resolution, integration.
// A non-positive dt does nothing.
func (w *World) Step(dt float64) {
	if !(dt > 0) {
		return
	}

	for _, b := range w.bodies {
		if b.typ == BodyKinematic {
			driveKinematic(b, dt)
		}
	}

	for _, b := range w.bodies {
		if b.typ == BodyDynamic {
			b.updateVelocity(w.gravity, w.damping, dt)
		}
	}

	w.contacts = detect(w.shapes, w.contacts[:0])

	for i := range w.contacts {
		resolve(&w.contacts[i])
	}

	for _, b := range w.bodies {
		if b.typ == BodyDynamic {
			b.updatePosition(dt)
		}
	}
	w.ticks++
}
