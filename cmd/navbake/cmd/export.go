package cmd

import (
	"fmt"
	"io"

	"github.com/arl/navmesh2d/navmesh"
	"github.com/aurelien-rainone/gogeo/f32/d3"
)

// exportDebugOBJ writes m's triangle soup as a Wavefront .obj to w, for
// inspection in any off-the-shelf 3D viewer (SPEC_FULL §3 "Domain stack
// wiring": `github.com/aurelien-rainone/gogeo/f32/d3`). The deterministic
// FixedVec2 core never imports gogeo itself; this conversion is the CLI's
// boundary to a float32 3D vector, ground-plane Y-up to match the scene
// loader's convention.
func exportDebugOBJ(w io.Writer, m *navmesh.NavMesh) error {
	verts := make([]d3.Vec3, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		p := m.GetVertex(i)
		x, y := p.Float64()
		verts[i] = d3.NewVec3XYZ(float32(x), 0, float32(y))
	}

	for _, vx := range verts {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", vx.X(), vx.Y(), vx.Z()); err != nil {
			return err
		}
	}
	for i := 0; i < m.TriangleCount(); i++ {
		tr := m.GetTriangle(i)
		// OBJ face indices are 1-based.
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", tr.V[0]+1, tr.V[1]+1, tr.V[2]+1); err != nil {
			return err
		}
	}
	return nil
}
