package sim

import (
	"context"
	"fmt"
	"math"

	"hexball/internal/engineconfig"
	"hexball/internal/physics"
)

// Simulation is the ball-in-a-rotating-cage scene: one dynamic ball, one kinematic cage.
// It owns its World; several simulations can run side by side.
type Simulation struct {
	cfg   engineconfig.Config
	world *physics.World
	ball  *physics.Body
	cage  *physics.Body
	dt    float64
}

// State is a summary of the simulation after a tick.
type State struct {
	Tick      uint64
	Position  physics.Vector
	Velocity  physics.Vector
	Speed     float64
	Energy    float64
	Contacts  int
	Contained bool
}

func (s State) String() string {
	return fmt.Sprintf("tick=%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) speed=%.2f energy=%.1f contacts=%d contained=%t",
		s.Tick, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.Speed, s.Energy, s.Contacts, s.Contained)
}

// New builds the world described by cfg. Invalid masses, radii or materials are reported
// here, before the first tick.
func New(cfg engineconfig.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := physics.NewWorld()
	w.SetGravity(physics.Vector{X: cfg.World.GravityX, Y: cfg.World.GravityY})
	if err := w.SetDamping(cfg.World.Damping); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	cage, err := newCage(cfg.Cage)
	if err != nil {
		return nil, fmt.Errorf("cage: %w", err)
	}
	ball, err := newBall(cfg.Ball)
	if err != nil {
		return nil, fmt.Errorf("ball: %w", err)
	}
	for _, b := range []*physics.Body{cage, ball} {
		if err := w.Add(b); err != nil {
			return nil, err
		}
	}
	return &Simulation{cfg: cfg, world: w, ball: ball, cage: cage, dt: cfg.Dt()}, nil
}

func newBall(c engineconfig.BallConfig) (*physics.Body, error) {
	body, err := physics.NewDynamicBody(physics.Vector{X: c.X, Y: c.Y}, c.Mass, c.Radius)
	if err != nil {
		return nil, err
	}
	body.SetVelocity(physics.Vector{X: c.VelocityX, Y: c.VelocityY})
	mat := physics.Material{Restitution: c.Restitution, Friction: c.Friction}
	if _, err := physics.NewCircle(body, c.Radius, mat); err != nil {
		return nil, err
	}
	return body, nil
}

func newCage(c engineconfig.CageConfig) (*physics.Body, error) {
	body := physics.NewKinematicBody(physics.Vector{X: c.X, Y: c.Y})
	mat := physics.Material{Restitution: c.Restitution, Friction: c.Friction}
	if _, err := physics.NewCage(body, c.Sides, c.Radius, c.Thickness, mat); err != nil {
		return nil, err
	}
	body.SetSpin(c.RotationDegPerSec * math.Pi / 180)
	return body, nil
}

// Step advances the simulation by one fixed tick.
func (s *Simulation) Step() {
	s.world.Step(s.dt)
}

func (s *Simulation) World() *physics.World { return s.world }

func (s *Simulation) Ball() *physics.Body { return s.ball }

func (s *Simulation) Cage() *physics.Body { return s.cage }

func (s *Simulation) Config() engineconfig.Config { return s.cfg }

// Dt returns the tick duration in seconds.
func (s *Simulation) Dt() float64 { return s.dt }

// Shapes returns the current geometry of every shape, for drawing.
func (s *Simulation) Shapes() []physics.Geometry {
	return s.world.Geometry()
}

// Contained reports whether the ball center is on the inner side of every cage wall, allowing
// for the wall thickness. Detection only happens at tick boundaries, so a fast enough ball can
// pass through a wall.
func (s *Simulation) Contained() bool {
	p, center := s.ball.Position(), s.cage.Position()
	for _, sh := range s.cage.Shapes() {
		g := sh.Geometry()
		if g.Kind != physics.ShapeSegment {
			continue
		}
		n := g.B.Sub(g.A).Ortho().Normalize()
		if n.Dot(center.Sub(g.A)) < 0 {
			n = n.Mul(-1)
		}
		if p.Sub(g.A).Dot(n) < -g.Radius {
			return false
		}
	}
	return true
}

// State returns a summary of the last completed tick.
func (s *Simulation) State() State {
	v := s.ball.Velocity()
	return State{
		Tick:      s.world.Ticks(),
		Position:  s.ball.Position(),
		Velocity:  v,
		Speed:     v.Norm(),
		Energy:    s.ball.KineticEnergy(),
		Contacts:  len(s.world.LastContacts()),
		Contained: s.Contained(),
	}
}

// Run steps the simulation ticks times without a window, calling report every `every` ticks
// and after the last one. It stops early, between ticks, when ctx is done.
// every <= 0 only reports the final state.
func (s *Simulation) Run(ctx context.Context, ticks, every int, report func(State)) error {
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
		if report != nil && (i == ticks || (every > 0 && i%every == 0)) {
			report(s.State())
		}
	}
	return nil
}
