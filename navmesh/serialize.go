package navmesh

import (
	"encoding/binary"
	"io"

	"github.com/arl/navmesh2d/fixed"
)

// navMeshMagic and navMeshVersion frame every encoded mesh so a corrupt or
// foreign file fails fast at Decode rather than silently misreading (spec
// §6 "Persisted state layout"; the framing itself is a SPEC_FULL
// supplement grounded on detour/mesh.go's navMeshSetMagic/
// navMeshSetVersion header).
const (
	navMeshMagic   uint32 = 0x4e4d3244 // "NM2D"
	navMeshVersion uint32 = 1
)

type fileHeader struct {
	Magic         uint32
	Version       uint32
	VertexCount   uint32
	TriangleCount uint32
}

// Encode writes a mesh as two arrays — vertices and triangles (vertex +
// neighbor indices) — ahead of which a small magic/version header is
// written (spec §6). The grid and caches are not persisted; Decode
// reconstructs them.
func Encode(w io.Writer, m *NavMesh) error {
	hdr := fileHeader{
		Magic:         navMeshMagic,
		Version:       navMeshVersion,
		VertexCount:   uint32(len(m.vertices)),
		TriangleCount: uint32(len(m.triangles)),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	for _, v := range m.vertices {
		if err := binary.Write(w, binary.LittleEndian, int64(v.X)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int64(v.Y)); err != nil {
			return err
		}
	}
	for _, t := range m.triangles {
		if err := binary.Write(w, binary.LittleEndian, &t.V); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, &t.N); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a mesh previously written by Encode, validates the header,
// and runs the grid/cache reconstruction finalize() would run at the end
// of a fresh build — so a decoded mesh behaves identically to one built in
// this process (spec §6 "Bit-exact round-trip").
func Decode(r io.Reader) (*NavMesh, error) {
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, &BuildError{Kind: ErrDecodeHeader, Detail: err.Error()}
	}
	if hdr.Magic != navMeshMagic {
		return nil, &BuildError{Kind: ErrDecodeHeader, Detail: "bad magic number"}
	}
	if hdr.Version != navMeshVersion {
		return nil, &BuildError{Kind: ErrDecodeHeader, Detail: "unsupported version"}
	}

	vertices := make([]fixed.Vec2, hdr.VertexCount)
	for i := range vertices {
		var x, y int64
		if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
			return nil, &BuildError{Kind: ErrDecodeHeader, Detail: err.Error()}
		}
		if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
			return nil, &BuildError{Kind: ErrDecodeHeader, Detail: err.Error()}
		}
		vertices[i] = fixed.Vec2{X: fixed.T(x), Y: fixed.T(y)}
	}

	triangles := make([]NavTriangle, hdr.TriangleCount)
	for i := range triangles {
		if err := binary.Read(r, binary.LittleEndian, &triangles[i].V); err != nil {
			return nil, &BuildError{Kind: ErrDecodeHeader, Detail: err.Error()}
		}
		if err := binary.Read(r, binary.LittleEndian, &triangles[i].N); err != nil {
			return nil, &BuildError{Kind: ErrDecodeHeader, Detail: err.Error()}
		}
	}

	m := &NavMesh{vertices: vertices, triangles: triangles}
	m.buildGrid()
	m.buildCaches()
	return m, nil
}
