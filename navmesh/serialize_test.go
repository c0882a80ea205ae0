package navmesh

import (
	"bytes"
	"testing"

	"github.com/arl/navmesh2d/geom"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	obstacle := geom.Polygon{v(4, 4), v(6, 4), v(6, 6), v(4, 6)}
	m, err := Build(boundary, []geom.Polygon{obstacle}, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.TriangleCount() != m.TriangleCount() || decoded.VertexCount() != m.VertexCount() {
		t.Fatalf("counts differ: (%d,%d) vs (%d,%d)",
			decoded.TriangleCount(), decoded.VertexCount(), m.TriangleCount(), m.VertexCount())
	}
	for i := 0; i < m.TriangleCount(); i++ {
		if decoded.GetTriangle(i) != m.GetTriangle(i) {
			t.Fatalf("triangle %d differs after round-trip: %v vs %v", i, decoded.GetTriangle(i), m.GetTriangle(i))
		}
	}
	for i := 0; i < m.VertexCount(); i++ {
		if decoded.GetVertex(i) != m.GetVertex(i) {
			t.Fatalf("vertex %d differs after round-trip: %v vs %v", i, decoded.GetVertex(i), m.GetVertex(i))
		}
	}
}

func TestDecodeRoundTripQueryIsBitExact(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	m, err := Build(boundary, nil, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := NewPathQuery(m).FindPath(v(1, 1), v(9, 9))
	got := NewPathQuery(decoded).FindPath(v(1, 1), v(9, 9))
	if want.Success != got.Success || want.Length != got.Length || len(want.Path) != len(got.Path) {
		t.Fatalf("decoded mesh produced a different path: %+v vs %+v", want, got)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	_, err := Decode(&buf)
	if err == nil {
		t.Fatal("expected bad-magic decode to fail")
	}
	be, ok := err.(*BuildError)
	if !ok || be.Kind != ErrDecodeHeader {
		t.Fatalf("expected ErrDecodeHeader, got %v", err)
	}
}

func TestDecodeRejectsTruncatedStream(t *testing.T) {
	boundary := geom.Polygon{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	m, err := Build(boundary, nil, nil, BuildOptions{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	if _, err := Decode(truncated); err == nil {
		t.Fatal("expected truncated stream to fail decoding")
	}
}
