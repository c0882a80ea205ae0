package navmesh

import "fmt"

// ErrorKind identifies a BuildError variant (spec §6).
type ErrorKind int

const (
	// ErrTooFewBoundaryVertices: the boundary polygon has fewer than 3
	// vertices.
	ErrTooFewBoundaryVertices ErrorKind = iota
	// ErrOverlappingObstacles: two obstacle polygons overlap (spec §4.3
	// step 1).
	ErrOverlappingObstacles
	// ErrEmptyTriangulation: carving and filtering removed every triangle.
	ErrEmptyTriangulation
	// ErrConstraintRecoveryFailed: a constraint edge could not be
	// recovered within the iteration bound of spec §4.3 step 4.
	ErrConstraintRecoveryFailed
	// ErrDecodeHeader: Decode was given data with a bad magic number or an
	// unsupported version (the serialization supplement of SPEC_FULL §4).
	ErrDecodeHeader
)

// BuildError is returned by Build/BuildFromRect/Decode on failure (spec
// §6, §7 "Input errors"). It satisfies the error interface; callers that
// need to distinguish variants switch on Kind rather than string-matching
// Error().
type BuildError struct {
	Kind ErrorKind

	// A, B identify the two overlapping obstacle indices, set only for
	// ErrOverlappingObstacles.
	A, B int
	// Edge identifies the constraint edge that could not be recovered, set
	// only for ErrConstraintRecoveryFailed.
	Edge [2]int
	// Detail is a human-readable explanation.
	Detail string
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case ErrTooFewBoundaryVertices:
		return "navmesh: boundary polygon needs at least 3 vertices"
	case ErrOverlappingObstacles:
		return fmt.Sprintf("navmesh: obstacles %d and %d overlap: %s", e.A, e.B, e.Detail)
	case ErrEmptyTriangulation:
		return "navmesh: triangulation produced no triangles"
	case ErrConstraintRecoveryFailed:
		return fmt.Sprintf("navmesh: could not recover constraint edge %v: %s", e.Edge, e.Detail)
	case ErrDecodeHeader:
		return fmt.Sprintf("navmesh: decode failed: %s", e.Detail)
	default:
		return "navmesh: build error"
	}
}

// Is makes BuildError comparable against sentinel Kind-only values via
// errors.Is, e.g. errors.Is(err, &BuildError{Kind: ErrEmptyTriangulation}).
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
