package physics

import "math"

// minTangentSpeed is the tangential speed below which no friction impulse is applied.
const minTangentSpeed = 1e-9

// CombineRestitution returns the restitution used for a pair: the smaller of the two.
func CombineRestitution(a, b Material) float64 {
	return math.Min(a.Restitution, b.Restitution)
}

// CombineFriction returns the friction coefficient used for a pair: the product of the two.
func CombineFriction(a, b Material) float64 {
	return a.Friction * b.Friction
}

// resolve applies positional correction and the normal and friction impulses for one contact.
// The overlap is removed entirely, split between the bodies by inverse mass. Impulses are only
// applied while the bodies approach along the normal.
func resolve(c *Contact) {
	a, b := c.A.body, c.B.body
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}
	n := c.Normal

	corr := n.Mul(c.Depth / invSum)
	a.position = a.position.Sub(corr.Mul(a.invMass))
	b.position = b.position.Add(corr.Mul(b.invMass))

	vrel := b.velocity.Sub(a.velocity)
	vn := vrel.Dot(n)
	if vn >= 0 {
		return
	}

	e := CombineRestitution(c.A.Material, c.B.Material)
	jn := -(1 + e) * vn / invSum
	a.applyImpulse(n.Mul(-jn))
	b.applyImpulse(n.Mul(jn))
	c.NormalImpulse = jn

	vrel = b.velocity.Sub(a.velocity)
	vt := vrel.Sub(n.Mul(vrel.Dot(n)))
	speed := vt.Norm()
	if speed < minTangentSpeed {
		return
	}
	t := vt.Mul(1 / speed)
	limit := CombineFriction(c.A.Material, c.B.Material) * jn
	jt := math.Max(-limit, math.Min(-speed/invSum, limit))
	a.applyImpulse(t.Mul(-jt))
	b.applyImpulse(t.Mul(jt))
	c.TangentImpulse = jt
}
