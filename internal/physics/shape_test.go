package physics

import (
	"errors"
	"math"
	"testing"
)

var steel = Material{Restitution: 0.9, Friction: 0.5}

func TestNewCircle_Rejects(t *testing.T) {
	body, _ := NewDynamicBody(Vector{}, 1, 15)
	if _, err := NewCircle(body, 0, steel); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("zero radius: err = %v", err)
	}
	if _, err := NewCircle(body, 15, Material{Restitution: 1.2}); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("restitution > 1: err = %v", err)
	}
	if _, err := NewCircle(body, 15, Material{Friction: -0.1}); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("negative friction: err = %v", err)
	}
	if _, err := NewCircle(nil, 15, steel); !errors.Is(err, ErrNilBody) {
		t.Errorf("nil body: err = %v", err)
	}
	if n := len(body.Shapes()); n != 0 {
		t.Errorf("rejected shapes were attached: %d", n)
	}
}

func TestNewSegment_Rejects(t *testing.T) {
	body := NewKinematicBody(Vector{})
	if _, err := NewSegment(body, Vector{X: 1, Y: 1}, Vector{X: 1, Y: 1}, 3, steel); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("zero length: err = %v", err)
	}
	if _, err := NewSegment(body, Vector{X: 0, Y: 0}, Vector{X: 1, Y: 0}, -1, steel); !errors.Is(err, ErrInvalidThickness) {
		t.Errorf("negative thickness: err = %v", err)
	}
}

func TestNewCage_Hexagon(t *testing.T) {
	center := Vector{X: 400, Y: 300}
	body := NewKinematicBody(center)
	segs, err := NewCage(body, 6, 150, 3, steel)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 6 || len(body.Shapes()) != 6 {
		t.Fatalf("got %d segments, %d attached", len(segs), len(body.Shapes()))
	}
	for i, s := range segs {
		a, b := s.Endpoints()
		na, _ := segs[(i+1)%6].Endpoints()
		if !nearVec(b, na, eps) {
			t.Errorf("segment %d does not close onto segment %d: %v vs %v", i, (i+1)%6, b, na)
		}
		if d := distance(a, center); !near(d, 150, eps) {
			t.Errorf("vertex %d at distance %v from center", i, d)
		}
		if l := distance(a, b); !near(l, 150, eps) {
			t.Errorf("side %d length %v, want 150", i, l)
		}
		want := center.Add(ForAngle(float64(i) * math.Pi / 3).Mul(150))
		if !nearVec(a, want, eps) {
			t.Errorf("vertex %d = %v, want %v", i, a, want)
		}
	}
}

func TestNewCage_Rejects(t *testing.T) {
	body := NewKinematicBody(Vector{})
	if _, err := NewCage(body, 2, 150, 3, steel); !errors.Is(err, ErrInvalidSides) {
		t.Errorf("2 sides: err = %v", err)
	}
	if _, err := NewCage(body, 6, 0, 3, steel); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("zero radius: err = %v", err)
	}
	if _, err := NewCage(body, 6, 150, 3, Material{Restitution: 2}); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("bad material: err = %v", err)
	}
	if n := len(body.Shapes()); n != 0 {
		t.Errorf("rejected cage left %d shapes attached", n)
	}
}

func TestShapeGeometry(t *testing.T) {
	ball, _ := NewDynamicBody(Vector{X: 5, Y: 6}, 1, 2)
	circ, _ := NewCircle(ball, 2, steel)
	g := circ.Geometry()
	if g.Kind != ShapeCircle || g.Center != (Vector{X: 5, Y: 6}) || g.Radius != 2 || g.BodyType != BodyDynamic {
		t.Errorf("circle geometry = %+v", g)
	}

	wall := NewKinematicBody(Vector{X: 10, Y: 10})
	seg, _ := NewSegment(wall, Vector{X: -1, Y: 0}, Vector{X: 1, Y: 0}, 3, steel)
	g = seg.Geometry()
	if g.Kind != ShapeSegment || g.A != (Vector{X: 9, Y: 10}) || g.B != (Vector{X: 11, Y: 10}) || g.Radius != 3 {
		t.Errorf("segment geometry = %+v", g)
	}
}
