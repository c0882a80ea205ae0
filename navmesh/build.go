package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

// defaultSnapTolerance is the distance below which two input vertices are
// unified into a single triangulator vertex (spec §4.3 step 2), used when
// BuildOptions.SnapTolerance is zero.
var defaultSnapTolerance = fixed.FromFloat64(1e-4)

// BuildOptions configures Build/BuildFromRect (spec §6 "Build surface").
// The zero value subdivides to no particular target (MaxTriangleCount <= 0
// disables subdivision) and snaps vertices with defaultSnapTolerance.
type BuildOptions struct {
	// MaxTriangleCount bounds triangle count from below: subdivision runs
	// until this many triangles exist or a pass makes no progress (spec
	// §4.4). Zero or negative disables subdivision.
	MaxTriangleCount int

	// SnapTolerance is the distance below which two input vertices are
	// unified into a single triangulator vertex (spec §4.3 step 2). Zero
	// or negative uses defaultSnapTolerance.
	SnapTolerance float64
}

// Build triangulates boundary minus obstacles, with walkable polygons
// contributing Steiner points, into a finalized NavMesh (spec §4.3-4.5,
// §6).
func Build(boundary geom.Polygon, obstacles, walkables []geom.Polygon, opts BuildOptions, logger Logger) (*NavMesh, error) {
	if len(boundary) < 3 {
		return nil, &BuildError{Kind: ErrTooFewBoundaryVertices}
	}
	if err := validateObstacles(obstacles); err != nil {
		return nil, err
	}

	snapTolerance := defaultSnapTolerance
	if opts.SnapTolerance > 0 {
		snapTolerance = fixed.FromFloat64(opts.SnapTolerance)
	}
	points, constraints := collectVertices(boundary, obstacles, walkables, snapTolerance)

	tris := delaunayTriangulate(points)
	if len(tris) == 0 {
		return nil, &BuildError{Kind: ErrEmptyTriangulation}
	}

	tris = recoverConstraints(points, tris, constraints, logger)
	tris = carveHoles(points, tris, obstacles)
	tris = removeExterior(points, tris, boundary)
	tris = filterDegenerate(points, tris)
	if len(tris) == 0 {
		return nil, &BuildError{Kind: ErrEmptyTriangulation}
	}

	if opts.MaxTriangleCount > 0 {
		points, tris = subdivide(points, tris, opts.MaxTriangleCount)
	}

	raw := make([]rawTriangle, len(tris))
	for i, t := range tris {
		raw[i] = rawTriangle{points[t[0]], points[t[1]], points[t[2]]}
	}
	return finalize(raw, logger)
}

// BuildFromRect is a convenience wrapper over Build for a rectangular
// boundary (spec §6 "Build surface").
func BuildFromRect(min, max fixed.Vec2, obstacles, walkables []geom.Polygon, opts BuildOptions, logger Logger) (*NavMesh, error) {
	boundary := geom.Polygon{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
	return Build(boundary, obstacles, walkables, opts, logger)
}

// collectVertices gathers boundary, obstacle and walkable-polygon vertices
// as a single deduplicated point set (spec §4.3 step 2), and returns the
// directed constraint edges (boundary + obstacle edges) that the
// triangulation must contain, re-indexed into that point set. Two vertices
// within snapTolerance of each other are unified.
func collectVertices(boundary geom.Polygon, obstacles, walkables []geom.Polygon, snapTolerance fixed.T) ([]fixed.Vec2, []edgeOrdered) {
	var points []fixed.Vec2

	intern := func(p fixed.Vec2) int32 {
		for i, q := range points {
			if p.Sub(q).LenSqr() <= snapTolerance.Mul(snapTolerance) {
				return int32(i)
			}
		}
		points = append(points, p)
		return int32(len(points) - 1)
	}

	var constraints []edgeOrdered

	boundaryIdx := make([]int32, len(boundary))
	for i, p := range boundary {
		boundaryIdx[i] = intern(p)
	}
	for i := range boundaryIdx {
		constraints = append(constraints, edgeOrdered{boundaryIdx[i], boundaryIdx[(i+1)%len(boundaryIdx)]})
	}

	for _, ob := range obstacles {
		idx := make([]int32, len(ob))
		for i, p := range ob {
			idx[i] = intern(p)
		}
		for i := range idx {
			constraints = append(constraints, edgeOrdered{idx[i], idx[(i+1)%len(idx)]})
		}
	}

	for _, wp := range walkables {
		for _, p := range wp {
			intern(p) // Steiner points only: no constraint edges.
		}
	}

	return points, constraints
}
