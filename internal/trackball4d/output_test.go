package trackball4d

import (
	"bufio"
	"encoding/binary"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrames(t *testing.T) []Frame {
	t.Helper()
	o := newRotatable(t, "octa", Hyperoctahedron, NewProjector(), Rot4{XY: 0.3})
	f1, err := o.Step(Sample{})
	require.NoError(t, err)
	// failed frame: no projections
	f2 := Frame{Object: "octa", Edges: f1.Edges}
	return []Frame{f1, f2}
}

func TestSaveWireframeGIF(t *testing.T) {
	frames := sampleFrames(t)
	path := filepath.Join(t.TempDir(), "gifs", "out.gif")
	require.NoError(t, SaveWireframeGIF(frames, path, 64, 7))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	assert.Equal(t, []int{7, 7}, g.Delay)
	assert.Equal(t, 64, g.Image[0].Rect.Dx())

	painted := func(i int) int {
		n := 0
		for _, px := range g.Image[i].Pix {
			if px != 0 {
				n++
			}
		}
		return n
	}
	assert.Greater(t, painted(0), 0)
	assert.Zero(t, painted(1))
}

func TestSaveWireframeGIFTooSmall(t *testing.T) {
	assert.Error(t, SaveWireframeGIF(nil, filepath.Join(t.TempDir(), "x.gif"), 4, 1))
}

func TestDrawLineEndpoints(t *testing.T) {
	frames := []Frame{{
		Projected: []mgl64.Vec3{{-1, -1, 0}, {1, 1, 0}},
		Edges:     []Edge{{A: 0, B: 1, Color: Red}},
	}}
	path := filepath.Join(t.TempDir(), "diag.gif")
	require.NoError(t, SaveWireframeGIF(frames, path, 21, 1))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	img := g.Image[0]
	red := edgeColorIndex(Red)
	// half = 10, scale = 9: (-1,-1) -> (1, 19), (1,1) -> (19, 1)
	assert.Equal(t, red, img.ColorIndexAt(1, 19))
	assert.Equal(t, red, img.ColorIndexAt(19, 1))
	assert.Equal(t, red, img.ColorIndexAt(10, 10))
	assert.Equal(t, uint8(0), img.ColorIndexAt(1, 1))
	// edges keep their exact colour class, no blended pixels
	for _, px := range img.Pix {
		assert.Contains(t, []uint8{0, red}, px)
	}
}

func TestSaveRawFrames(t *testing.T) {
	frames := sampleFrames(t)
	path := filepath.Join(t.TempDir(), "raw", "frames.raw")
	require.NoError(t, SaveRawFrames(frames, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := bufio.NewReader(f)

	var count, nv int32
	require.NoError(t, binary.Read(r, binary.LittleEndian, &count))
	assert.Equal(t, int32(2), count)

	require.NoError(t, binary.Read(r, binary.LittleEndian, &nv))
	require.Equal(t, int32(8), nv)
	body := make([]float64, 3*nv)
	require.NoError(t, binary.Read(r, binary.LittleEndian, body))
	for i, p := range frames[0].Projected {
		assert.Equal(t, []float64{p[0], p[1], p[2]}, body[3*i:3*i+3])
	}

	require.NoError(t, binary.Read(r, binary.LittleEndian, &nv))
	assert.Equal(t, int32(0), nv)
	_, err = r.ReadByte()
	assert.Error(t, err, "trailing bytes")
}

func TestSyncCloseReportsErrors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var got error
	syncClose(f, &got)
	assert.ErrorIs(t, got, os.ErrClosed)

	// an earlier error wins
	first := errors.New("write failed")
	got = first
	syncClose(f, &got)
	assert.Same(t, first, got)

	f, err = os.Create(filepath.Join(t.TempDir(), "y"))
	require.NoError(t, err)
	got = nil
	syncClose(f, &got)
	assert.NoError(t, got)
}
