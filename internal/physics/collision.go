package physics

import "fmt"

// normalEpsilon is the distance under which a contact normal cannot be derived from the
// center offset and the fallback normal is used instead.
const normalEpsilon = 1e-9

// Contact is a single overlap found during one tick. Normal is a unit vector pointing from A
// into B and Depth is the overlap distance (>= 0). For circle/segment contacts A is always the
// segment and B the circle.
//
// NormalImpulse and TangentImpulse are filled in by the resolver; both stay zero when the
// shapes were already separating.
type Contact struct {
	A, B   *Shape
	Point  Vector
	Normal Vector
	Depth  float64

	NormalImpulse  float64
	TangentImpulse float64
}

func (c Contact) String() string {
	return fmt.Sprintf("Contact{%s/%s p=%v n=%v depth=%.4f jn=%.4f jt=%.4f}",
		c.A.kind, c.B.kind, c.Point, c.Normal, c.Depth, c.NormalImpulse, c.TangentImpulse)
}

// detect appends every contact between the shapes to out, in pair order (i<j).
// Shapes on the same body and pairs of infinite-mass bodies never collide.
func detect(shapes []*Shape, out []Contact) []Contact {
	for i, a := range shapes {
		for _, b := range shapes[i+1:] {
			if a.body == b.body || a.body.invMass+b.body.invMass == 0 {
				continue
			}
			if c, ok := Collide(a, b); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// Collide tests two shapes and returns their contact, if any.
func Collide(a, b *Shape) (Contact, bool) {
	switch {
	case a.kind == ShapeCircle && b.kind == ShapeCircle:
		return circleToCircle(a, b)
	case a.kind == ShapeSegment && b.kind == ShapeCircle:
		return circleToSegment(b, a)
	case a.kind == ShapeCircle && b.kind == ShapeSegment:
		return circleToSegment(a, b)
	}
	return Contact{}, false
}

func circleToCircle(a, b *Shape) (Contact, bool) {
	pa, pb := a.body.position, b.body.position
	delta := pb.Sub(pa)
	dist := delta.Norm()
	rsum := a.radius + b.radius
	if dist >= rsum {
		return Contact{}, false
	}
	n := Vector{X: 0, Y: -1}
	if dist > normalEpsilon {
		n = delta.Mul(1 / dist)
	}
	return Contact{
		A:      a,
		B:      b,
		Point:  pa.Add(n.Mul(a.radius)),
		Normal: n,
		Depth:  rsum - dist,
	}, true
}

// circleToSegment projects the circle center onto the segment, clamps it to the segment's
// extent and compares the distance against radius + thickness.
func circleToSegment(circ, seg *Shape) (Contact, bool) {
	center := circ.body.position
	pa, pb := seg.Endpoints()
	closest := ClosestPointOnSegment(center, pa, pb)
	delta := center.Sub(closest)
	dist := delta.Norm()
	rsum := circ.radius + seg.radius
	if dist >= rsum {
		return Contact{}, false
	}
	var n Vector
	if dist > normalEpsilon {
		n = delta.Mul(1 / dist)
	} else {
		n = segmentNormal(seg, closest)
	}
	return Contact{
		A:      seg,
		B:      circ,
		Point:  closest.Add(n.Mul(seg.radius)),
		Normal: n,
		Depth:  rsum - dist,
	}, true
}

// segmentNormal is used when the circle center lies on the segment. It returns the segment's
// perpendicular facing the owning body's position (the inside of a cage), or (0,-1) when
// nothing better is defined.
func segmentNormal(seg *Shape, at Vector) Vector {
	pa, pb := seg.Endpoints()
	n := pb.Sub(pa).Ortho().Normalize()
	if n == (Vector{}) {
		return Vector{X: 0, Y: -1}
	}
	if n.Dot(seg.body.position.Sub(at)) < 0 {
		n = n.Mul(-1)
	}
	return n
}
