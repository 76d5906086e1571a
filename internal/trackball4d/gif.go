package trackball4d

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"path/filepath"
)

// wirePalette: index 0 background, 1 plain edges, then one entry per EdgeColor.
var wirePalette = color.Palette{
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0x20, 0x20, 0x20, 0xff},
	color.RGBA{0x00, 0xa0, 0x00, 0xff}, // green
	color.RGBA{0xd0, 0x00, 0x00, 0xff}, // red
	color.RGBA{0x00, 0x40, 0xe0, 0xff}, // blue
	color.RGBA{0xe0, 0xc0, 0x00, 0xff}, // yellow
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0x80, 0x80, 0x80, 0xff}, // grey
}

func edgeColorIndex(c EdgeColor) uint8 {
	if c == NoColor || int(c)+1 >= len(wirePalette) {
		return 1
	}
	return uint8(c) + 1
}

// SaveWireframeGIF writes one GIF frame per entry of frames, drawing each
// projected edge onto the view-space XY plane (Y up).
// All frames share one scale so motion stays comparable between them.
// delay is in 100ths of a second (e.g., 4 => 25 fps).
func SaveWireframeGIF(frames []Frame, path string, size, delay int) (err error) {
	if size < 8 {
		return fmt.Errorf("gif size must be >= 8, got %d", size)
	}
	// 1) global extent over all frames
	extent := 0.0
	for _, f := range frames {
		for _, p := range f.Projected {
			extent = math.Max(extent, math.Max(math.Abs(p[0]), math.Abs(p[1])))
		}
	}
	if extent == 0 {
		extent = 1 // avoid div-by-zero, frames are blank anyway
	}
	half := Real(size-1) / 2
	scale := 0.9 * half / extent
	toPix := func(x, y Real) (int, int) {
		return int(math.Round(half + x*scale)), int(math.Round(half - y*scale))
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, f := range frames {
		img := image.NewPaletted(image.Rect(0, 0, size, size), wirePalette)
		// 2) edges; a frame without projections (failed step) stays blank
		if len(f.Projected) > 0 {
			for _, e := range f.Edges {
				x0, y0 := toPix(f.Projected[e.A][0], f.Projected[e.A][1])
				x1, y1 := toPix(f.Projected[e.B][0], f.Projected[e.B][1])
				drawLine(img, x0, y0, x1, y1, edgeColorIndex(e.Color))
			}
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer syncClose(f, &err)
	return gif.EncodeAll(f, out)
}

// drawLine is Bresenham; pixels outside img are dropped.
func drawLine(img *image.Paletted, x0, y0, x1, y1 int, idx uint8) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if (image.Point{x0, y0}).In(img.Rect) {
			img.SetColorIndex(x0, y0, idx)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
