package navmesh

import (
	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
)

// validateObstacles rejects the build if any two obstacle polygons overlap
// (spec §4.3 step 1).
func validateObstacles(obstacles []geom.Polygon) error {
	for i := 0; i < len(obstacles); i++ {
		for j := i + 1; j < len(obstacles); j++ {
			if geom.Overlaps(obstacles[i], obstacles[j]) {
				return &BuildError{
					Kind:   ErrOverlappingObstacles,
					A:      i,
					B:      j,
					Detail: "obstacle polygons intersect or contain one another",
				}
			}
		}
	}
	return nil
}

// carveHoles removes every triangle whose centroid lies inside an obstacle
// polygon (spec §4.3 step 5).
func carveHoles(verts []fixed.Vec2, tris []triIndices, obstacles []geom.Polygon) []triIndices {
	if len(obstacles) == 0 {
		return tris
	}
	kept := make([]triIndices, 0, len(tris))
	for _, t := range tris {
		c := geom.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]}.Centroid()
		inHole := false
		for _, ob := range obstacles {
			if ob.Contains(c) {
				inHole = true
				break
			}
		}
		if !inHole {
			kept = append(kept, t)
		}
	}
	return kept
}

// removeExterior removes every triangle whose centroid lies outside the
// boundary polygon (spec §4.3 step 6).
func removeExterior(verts []fixed.Vec2, tris []triIndices, boundary geom.Polygon) []triIndices {
	kept := make([]triIndices, 0, len(tris))
	for _, t := range tris {
		c := geom.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]}.Centroid()
		if boundary.Contains(c) {
			kept = append(kept, t)
		}
	}
	return kept
}

// filterDegenerate removes triangles with duplicate vertices or |area|
// below the epsilon geom.Triangle.Degenerate uses (spec §4.3 step 7).
func filterDegenerate(verts []fixed.Vec2, tris []triIndices) []triIndices {
	kept := make([]triIndices, 0, len(tris))
	for _, t := range tris {
		geo := geom.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]}
		if !geo.Degenerate() {
			kept = append(kept, t)
		}
	}
	return kept
}
