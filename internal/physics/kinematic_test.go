package physics

import (
	"math"
	"testing"
)

func endpoints(shapes []*Shape) []Vector {
	var out []Vector
	for _, s := range shapes {
		a, b := s.Endpoints()
		out = append(out, a, b)
	}
	return out
}

func TestRotateShapes_FullTurnIsIdentity(t *testing.T) {
	center := Vector{X: 400, Y: 300}
	cage := NewKinematicBody(center)
	segs, err := NewCage(cage, 6, 150, 3, steel)
	if err != nil {
		t.Fatal(err)
	}
	start := endpoints(segs)

	for i := 0; i < 360; i++ {
		cage.RotateShapes(math.Pi / 180)
		for j, p := range endpoints(segs) {
			if d := distance(p, center); !near(d, 150, 1e-9) {
				t.Fatalf("step %d endpoint %d at radius %v", i, j, d)
			}
		}
	}
	for i, p := range endpoints(segs) {
		if !nearVec(p, start[i], 1e-9) {
			t.Errorf("endpoint %d = %v after 360°, want %v", i, p, start[i])
		}
	}
}

func TestWorldStep_DrivesKinematicRotation(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{X: 0, Y: 900})
	center := Vector{X: 400, Y: 300}
	cage := NewKinematicBody(center)
	segs, _ := NewCage(cage, 6, 150, 3, steel)
	cage.SetSpin(math.Pi / 3) // 1° per tick at 60 Hz
	if err := w.Add(cage); err != nil {
		t.Fatal(err)
	}
	start := endpoints(segs)

	w.Step(dt)
	a, _ := segs[0].Endpoints()
	want := center.Add(ForAngle(math.Pi / 180).Mul(150))
	if !nearVec(a, want, 1e-9) {
		t.Errorf("after one tick vertex 0 = %v, want %v", a, want)
	}

	for i := 1; i < 360; i++ {
		w.Step(dt)
	}
	for i, p := range endpoints(segs) {
		if !nearVec(p, start[i], 1e-9) {
			t.Errorf("endpoint %d = %v after 360 ticks, want %v", i, p, start[i])
		}
	}
	if cage.Position() != center || cage.Velocity() != (Vector{}) {
		t.Errorf("kinematic body integrated: pos=%v vel=%v", cage.Position(), cage.Velocity())
	}
}

func TestRotateShapes_LeavesCirclesAlone(t *testing.T) {
	b := NewKinematicBody(Vector{X: 1, Y: 2})
	c, _ := NewCircle(b, 5, steel)
	b.RotateShapes(1)
	if g := c.Geometry(); g.Center != (Vector{X: 1, Y: 2}) {
		t.Errorf("circle moved to %v", g.Center)
	}
}
