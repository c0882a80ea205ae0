package cmd

import (
	"fmt"

	"github.com/arl/navmesh2d/fixed"
	"github.com/arl/navmesh2d/geom"
	"github.com/aurelien-rainone/gobj"
)

// loadScene reads a Wavefront .obj scene file: its first face is the
// boundary polygon, every other face is an obstacle (SPEC_FULL §3 "Domain
// stack wiring": `github.com/aurelien-rainone/gobj`). Faces are read on the
// ground plane (X, Z), matching the teacher's own Y-up OBJ convention in
// recast/meshloaderobj.go.
func loadScene(path string) (boundary geom.Polygon, obstacles []geom.Polygon, err error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scene %q: %w", path, err)
	}
	polys := obj.Polys()
	if len(polys) == 0 {
		return nil, nil, fmt.Errorf("scene %q has no faces", path)
	}

	toPolygon := func(p gobj.Polygon) geom.Polygon {
		poly := make(geom.Polygon, len(p))
		for i, vx := range p {
			poly[i] = fixed.Vec2FromFloat64(vx.X(), vx.Z())
		}
		return poly
	}

	boundary = toPolygon(polys[0])
	for _, p := range polys[1:] {
		obstacles = append(obstacles, toPolygon(p))
	}
	return boundary, obstacles, nil
}
