package trackball4d

import (
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"
)

// SaveRawFrames dumps the projected vertices of every frame, little-endian:
//
//	int32 frameCount
//	per frame: int32 vertexCount, then vertexCount*3 float64 (x, y, z)
//
// Frames without projections (a failed step) are written with vertexCount 0.
func SaveRawFrames(frames []Frame, path string) (err error) {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer syncClose(f, &err)

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(len(frames))); err != nil {
		return err
	}
	for _, fr := range frames {
		if err := binary.Write(w, binary.LittleEndian, int32(len(fr.Projected))); err != nil {
			return err
		}
		if len(fr.Projected) == 0 {
			continue
		}
		buf := make([]float64, 0, 3*len(fr.Projected))
		for _, p := range fr.Projected {
			buf = append(buf, p[0], p[1], p[2])
		}
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return err
		}
	}
	return w.Flush()
}

// syncClose syncs and closes f, keeping the first error in *err.
func syncClose(f *os.File, err *error) {
	if serr := f.Sync(); *err == nil {
		*err = serr
	}
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
}
