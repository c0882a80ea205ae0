// Package fixed implements a Q31.32 fixed-point scalar type.
//
// All arithmetic is exact 64-bit integer math: no operation ever touches a
// float, so a build or a query run twice on the same inputs — on any
// platform, on any CPU — produces bit-identical results. That property is
// the entire reason this package exists: games and simulations that run
// networked lockstep cannot tolerate the platform-dependent rounding of
// IEEE 754 arithmetic inside geometry predicates.
package fixed

import "fmt"

// T is a 64-bit signed fixed-point number with 32 integer bits and 32
// fractional bits (Q31.32). The raw representation is value * 2^32.
type T int64

const fracBits = 32

// One is the fixed-point representation of 1.0.
const One T = 1 << fracBits

// Zero is the additive identity.
const Zero T = 0

// Half is the fixed-point representation of 0.5.
const Half T = One / 2

// FromInt converts an integer to its fixed-point representation.
func FromInt(i int) T {
	return T(i) << fracBits
}

// FromFloat64 converts a float64 to T, truncating toward zero any part
// finer than one ULP (2^-32).
//
// Never call this from a geometry predicate or a pathfinding cost: it
// exists for test fixtures, CLI input parsing and debug output, where a
// human supplies decimal literals that must become fixed-point once, at
// the boundary.
func FromFloat64(f float64) T {
	return T(f * float64(One))
}

// Float64 returns the floating-point approximation of x, for display only.
func (x T) Float64() float64 {
	return float64(x) / float64(One)
}

// Add returns x+y. 64-bit wraparound is exact and silent, matching the
// contract in spec §4.1: no operation traps or saturates.
func (x T) Add(y T) T { return x + y }

// Sub returns x-y.
func (x T) Sub(y T) T { return x - y }

// Neg returns -x.
func (x T) Neg() T { return -x }

// Abs returns the absolute value of x.
func (x T) Abs() T {
	if x < 0 {
		return -x
	}
	return x
}

// Mul returns x*y, computed via a 128-bit intermediate product so no
// precision is lost before the result is shifted back down to Q31.32.
// Rounding is round-half-up, detected on bit 31 of the low 64 bits of the
// full 128-bit product (spec §4.1).
func (x T) Mul(y T) T {
	hi, lo := mul64(int64(x), int64(y))
	// The true product is hi:lo interpreted as a 128-bit signed integer
	// scaled by 2^64; we want it scaled by 2^32, i.e. shift right by 32.
	result := (hi << 32) | int64(uint64(lo)>>32)
	// round-half-up on the bit immediately below the new LSB
	if lo&(1<<31) != 0 {
		result++
	}
	return T(result)
}

// mul64 returns the 128-bit signed product of a and b as (hi, lo), with lo
// interpreted as unsigned and hi as the signed high word — i.e. the
// standard two-word representation of a 128-bit two's complement value.
func mul64(a, b int64) (hi, lo int64) {
	// Decompose into unsigned 64-bit multiply (math/bits.Mul64 style,
	// reimplemented locally to avoid a dependency on bit widths the
	// standard library already guarantees) then correct the sign.
	var neg bool
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
		neg = !neg
	}
	if b < 0 {
		ub = -ub
		neg = !neg
	}
	uhi, ulo := mulu64(ua, ub)
	if neg {
		// two's complement negate the 128-bit (uhi, ulo) pair
		ulo = ^ulo + 1
		uhi = ^uhi
		if ulo == 0 {
			uhi++
		}
	}
	return int64(uhi), int64(ulo)
}

// mulu64 returns the 128-bit unsigned product of a and b as (hi, lo).
func mulu64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	lo = (t << 32) | w0
	hi = aHi*bHi + w2 + k
	return hi, lo
}

// Div returns x/y using fixed-point long division with explicit sign
// handling; dividing by zero returns zero rather than panicking (spec
// §4.1: "all failures are modeled as wrap/clamp — no exceptions").
func (x T) Div(y T) T {
	if y == 0 {
		return 0
	}
	neg := (x < 0) != (y < 0)
	ux, uy := uint64(x.Abs()), uint64(y.Abs())

	// (ux << 32) / uy, computed without overflowing by splitting the shift.
	hi, lo := mulu64(ux, uint64(One))
	q, _ := divu128(hi, lo, uy)
	if neg {
		return -T(q)
	}
	return T(q)
}

// divu128 divides the 128-bit unsigned value (hi, lo) by y, returning the
// quotient and remainder. The quotient fits in 64 bits whenever hi < y,
// which holds for every Div whose true result is representable in Q31.32;
// otherwise the quotient bits above 64 are dropped, so the result wraps.
func divu128(hi, lo, y uint64) (q, r uint64) {
	if hi == 0 {
		return lo / y, lo % y
	}
	// Long division, one bit at a time. Slow but simple and exact; Div is
	// not on any hot geometry path (those use Mul/Add/Sub/compare only).
	r = 0
	for i := 127; i >= 0; i-- {
		r <<= 1
		var bit uint64
		if i >= 64 {
			bit = (hi >> uint(i-64)) & 1
		} else {
			bit = (lo >> uint(i)) & 1
		}
		r |= bit
		if r >= y {
			r -= y
			q |= 1 << uint(i)
		}
	}
	return q, r
}

// Sqrt returns the representable value nearest to the true root of x, for
// x >= 0 (the integer root, rounded to nearest on its last bit). Negative inputs return 0 (wrap/clamp semantics, no
// exceptions, per spec §4.1). Computed with a digit-by-digit integer
// square root over the fixed-point representation so the result is exact
// and platform-independent.
func (x T) Sqrt() T {
	if x <= 0 {
		return 0
	}
	// We want sqrt(x/2^32) * 2^32 = sqrt(x * 2^32). Compute the integer
	// square root of (x << 32) using the binary digit-by-digit method,
	// then round the final bit per spec ("after a final rounding step").
	op := uint64(x)
	// op << 32 may overflow 64 bits for large x, so operate in two halves
	// using the 128-bit shift helper.
	hi := op >> 32
	lo := op << 32
	root, rem := isqrt128(hi, lo)
	// final round-to-nearest: rem = op - root^2, and (root+1/2)^2 =
	// root^2 + root + 1/4, so the true root is past root+1/2 exactly when
	// rem > root; in that case bump the root up by one ULP.
	if rem > root {
		root++
	}
	return T(root)
}

// isqrt128 computes floor(sqrt(hi:lo)) where hi:lo is a 128-bit unsigned
// integer, using the standard binary (digit-by-digit) integer square root
// algorithm generalized to two words.
func isqrt128(hi, lo uint64) (root, rem uint64) {
	for i := 0; i < 64; i++ {
		rem = (rem << 2) | ((hi >> 62) & 3)
		hi = (hi << 2) | (lo >> 62)
		lo <<= 2
		root <<= 1
		cand := (root << 1) | 1
		if rem >= cand {
			rem -= cand
			root |= 1
		}
	}
	return root, rem
}

// Cmp returns -1, 0 or 1 if x is less than, equal to, or greater than y.
func (x T) Cmp(y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// String renders x as a decimal, e.g. "3.500000".
func (x T) String() string {
	sign := ""
	v := x
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v) >> fracBits
	frac := (int64(v) & (int64(One) - 1)) * 1000000 >> fracBits
	return fmt.Sprintf("%s%d.%06d", sign, whole, frac)
}
