package physics

import "errors"

// Construction errors. Bodies, shapes and worlds reject invalid parameters when they are
// created; nothing is clamped silently.
var (
	ErrInvalidMass       = errors.New("physics: mass must be > 0")
	ErrInvalidRadius     = errors.New("physics: radius must be > 0")
	ErrInvalidThickness  = errors.New("physics: segment thickness must be >= 0")
	ErrDegenerateSegment = errors.New("physics: segment has zero length")
	ErrInvalidMaterial   = errors.New("physics: restitution must be in [0,1] and friction >= 0")
	ErrInvalidSides      = errors.New("physics: cage needs at least 3 sides")
	ErrInvalidDamping    = errors.New("physics: damping must be in [0,1]")
	ErrNilBody           = errors.New("physics: shape has no body")
	ErrBodyExists        = errors.New("physics: body already in world")
	ErrShapeExists       = errors.New("physics: shape already in world")
	ErrBodyNotInWorld    = errors.New("physics: shape's body is not in world")
)
