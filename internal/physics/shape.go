package physics

import (
	"fmt"
	"math"
)

// ShapeKind tags the geometry carried by a Shape. The set is closed.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSegment
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSegment:
		return "segment"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Material holds the surface properties used by the resolver.
// Restitution is in [0,1]; Friction is >= 0.
type Material struct {
	Restitution float64
	Friction    float64
}

func (m Material) validate() error {
	if !(m.Restitution >= 0 && m.Restitution <= 1) || !(m.Friction >= 0) || math.IsInf(m.Friction, 0) {
		return fmt.Errorf("%w: got restitution=%v friction=%v", ErrInvalidMaterial, m.Restitution, m.Friction)
	}
	return nil
}

// Shape is collision geometry owned by exactly one body.
// Circles are centered on the body position. Segment endpoints are offsets from the body
// position; the kinematic driver rotates them in place.
type Shape struct {
	kind ShapeKind
	body *Body
	Material

	radius float64 // circle radius or segment thickness
	a, b   Vector  // segment endpoint offsets
}

// NewCircle attaches a circle of the given radius to body.
func NewCircle(body *Body, radius float64, mat Material) (*Shape, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if err := mat.validate(); err != nil {
		return nil, err
	}
	s := &Shape{kind: ShapeCircle, body: body, Material: mat, radius: radius}
	body.shapes = append(body.shapes, s)
	return s, nil
}

// NewSegment attaches a segment from a to b (offsets from the body position) to body.
// thickness is added to the distance test, like a rounded capsule.
func NewSegment(body *Body, a, b Vector, thickness float64, mat Material) (*Shape, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if !(thickness >= 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThickness, thickness)
	}
	if a == b {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateSegment, a)
	}
	if err := mat.validate(); err != nil {
		return nil, err
	}
	s := &Shape{kind: ShapeSegment, body: body, Material: mat, radius: thickness, a: a, b: b}
	body.shapes = append(body.shapes, s)
	return s, nil
}

// NewCage attaches a closed loop of segments forming a regular polygon centered on the body
// position. Vertex i sits at angle i*2π/sides and segment i joins vertex i to vertex
// (i+1) mod sides. A hexagon is sides = 6.
func NewCage(body *Body, sides int, radius, thickness float64, mat Material) ([]*Shape, error) {
	if sides < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSides, sides)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	step := 2 * math.Pi / float64(sides)
	verts := make([]Vector, sides)
	for i := range verts {
		verts[i] = ForAngle(float64(i) * step).Mul(radius)
	}
	segs := make([]*Shape, 0, sides)
	for i := range verts {
		s, err := NewSegment(body, verts[i], verts[(i+1)%sides], thickness, mat)
		if err != nil {
			body.shapes = body.shapes[:len(body.shapes)-len(segs)]
			return nil, fmt.Errorf("cage side %d: %w", i, err)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

func (s *Shape) Kind() ShapeKind { return s.kind }

func (s *Shape) Body() *Body { return s.body }

// Radius returns the circle radius. For segments it returns the thickness.
func (s *Shape) Radius() float64 { return s.radius }

// Endpoints returns the segment endpoints in world coordinates. For circles both are the center.
func (s *Shape) Endpoints() (Vector, Vector) {
	p := s.body.position
	if s.kind != ShapeSegment {
		return p, p
	}
	return p.Add(s.a), p.Add(s.b)
}

// Geometry is a read-only snapshot of a shape in world coordinates, for rendering.
type Geometry struct {
	Kind     ShapeKind
	BodyType BodyType
	Center   Vector  // circle center; owning body position for segments
	Radius   float64 // circle radius; segment thickness
	A, B     Vector  // segment endpoints
}

// Geometry returns the current world-space geometry of s.
func (s *Shape) Geometry() Geometry {
	g := Geometry{
		Kind:     s.kind,
		BodyType: s.body.typ,
		Center:   s.body.position,
		Radius:   s.radius,
	}
	if s.kind == ShapeSegment {
		g.A, g.B = s.Endpoints()
	}
	return g
}
