package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"hexball/internal/physics"
)

const (
	// minSegmentWidth keeps hairline walls visible when thickness is tiny.
	minSegmentWidth = 1
	// velocityScale converts px/s to arrow length in px.
	velocityScale  = 0.1
	maxArrowLength = 80
)

var (
	ballColor    = rl.Red
	wallColor    = rl.NewColor(40, 40, 40, 255)
	arrowColor   = rl.NewColor(30, 120, 220, 255)
	staticCircle = rl.NewColor(120, 120, 120, 255)
)

// Scene draws the physics geometry with raylib. It only reads the snapshot it is given.
type Scene struct {
	ShowVelocity bool
}

// New returns a scene; showVelocity draws an arrow on dynamic bodies.
func New(showVelocity bool) *Scene {
	return &Scene{ShowVelocity: showVelocity}
}

// Draw renders every shape: circles filled, segments as lines as wide as their thickness
// allows. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(shapes []physics.Geometry, bodies []*physics.Body) {
	for _, g := range shapes {
		switch g.Kind {
		case physics.ShapeSegment:
			w := float32(2 * g.Radius)
			if w < minSegmentWidth {
				w = minSegmentWidth
			}
			rl.DrawLineEx(vec(g.A), vec(g.B), w, wallColor)
			// Round the joints the way the collision test treats them.
			rl.DrawCircleV(vec(g.A), w/2, wallColor)
			rl.DrawCircleV(vec(g.B), w/2, wallColor)
		case physics.ShapeCircle:
			c := ballColor
			if g.BodyType == physics.BodyKinematic {
				c = staticCircle
			}
			rl.DrawCircleV(vec(g.Center), float32(g.Radius), c)
		}
	}
	if !s.ShowVelocity {
		return
	}
	for _, b := range bodies {
		if b.Type() == physics.BodyDynamic {
			drawVelocity(b.Position(), b.Velocity())
		}
	}
}

// drawVelocity draws an arrow from p along v, clamped to maxArrowLength.
func drawVelocity(p, v physics.Vector) {
	dx, dy := float32(v.X)*velocityScale, float32(v.Y)*velocityScale
	l := math32.Hypot(dx, dy)
	if l < 1 {
		return
	}
	if l > maxArrowLength {
		k := maxArrowLength / l
		dx, dy = dx*k, dy*k
		l = maxArrowLength
	}
	start := vec(p)
	end := rl.NewVector2(start.X+dx, start.Y+dy)
	rl.DrawLineEx(start, end, 2, arrowColor)

	// Arrow head: two short strokes at ±150° from the shaft.
	angle := math32.Atan2(dy, dx)
	head := math32.Min(8, l/2)
	for _, off := range []float32{math32.Pi * 5 / 6, -math32.Pi * 5 / 6} {
		sin, cos := math32.Sincos(angle + off)
		rl.DrawLineEx(end, rl.NewVector2(end.X+cos*head, end.Y+sin*head), 2, arrowColor)
	}
}

func vec(v physics.Vector) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
