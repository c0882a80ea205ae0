package fixed

// Vec2 is a 2D point or vector with Q31.32 fixed-point components.
//
// Vec2 is a small value type (two int64 words) so, unlike the teacher's
// Vec3 (a float32 slice, passed around with destination out-parameters to
// avoid allocating on tight 3D loops), operations here return new values
// directly — idiomatic for a type this size, and it keeps every geometry
// predicate a pure function of its inputs, which matters for determinism
// review.
type Vec2 struct {
	X, Y T
}

// Equality is bit-exact, as required by spec §3.
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X.Add(o.X), v.Y.Add(o.Y)} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s T) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }

// Lerp returns the point t of the way from v to o (t in [0,1]).
func (v Vec2) Lerp(o Vec2, t T) Vec2 {
	return Vec2{
		v.X.Add(o.X.Sub(v.X).Mul(t)),
		v.Y.Add(o.Y.Sub(v.Y).Mul(t)),
	}
}

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{v.X.Add(o.X).Mul(Half), v.Y.Add(o.Y).Mul(Half)}
}

// Dot returns the dot product v . o.
func (v Vec2) Dot(o Vec2) T { return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)) }

// Cross returns the Z component of the 3D cross product (v x o), i.e. the
// signed area of the parallelogram spanned by v and o. Positive means o is
// counter-clockwise from v.
func (v Vec2) Cross(o Vec2) T { return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)) }

// LenSqr returns the squared length of v.
func (v Vec2) LenSqr() T { return v.Dot(v) }

// Len returns the length of v.
func (v Vec2) Len() T { return v.LenSqr().Sqrt() }

// DistSqr returns the squared distance between v and o.
func (v Vec2) DistSqr(o Vec2) T { return v.Sub(o).LenSqr() }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) T { return v.Sub(o).Len() }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself (wrap/clamp semantics, no panics, per spec §4.1).
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X.Div(l), v.Y.Div(l)}
}

// Vec2FromFloat64 builds a Vec2 from float64 coordinates. Test/CLI boundary
// only — see FromFloat64.
func Vec2FromFloat64(x, y float64) Vec2 {
	return Vec2{FromFloat64(x), FromFloat64(y)}
}

// Float64 returns the (x, y) float64 approximation of v, for display only.
func (v Vec2) Float64() (x, y float64) { return v.X.Float64(), v.Y.Float64() }
