package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// DefaultScale is the edge length in pixels of one rendered module.
// Both the raster and vector paths use it unless a caller overrides.
const DefaultScale = 10

// Raster draws a QR bit matrix into a new RGBA image. Each true cell is
// painted as a scale×scale block of the foreground color on a background-
// filled canvas of moduleCount×scale pixels per side.
//
// Row/column iteration order does not affect the result — blocks never
// overlap, so the pixel output is the same whichever way the matrix is
// walked.
func Raster(matrix [][]bool, fg, bg color.RGBA, scale int) (*image.RGBA, error) {
	moduleCount := len(matrix)
	if moduleCount == 0 {
		return nil, fmt.Errorf("empty QR matrix")
	}
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d (must be >= 1)", scale)
	}

	side := moduleCount * scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	// Fill the whole canvas with the background first; only dark modules
	// are painted afterwards.
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for row, cells := range matrix {
		if len(cells) != moduleCount {
			return nil, fmt.Errorf("QR matrix is not square: row %d has %d cells, want %d",
				row, len(cells), moduleCount)
		}
		for col, dark := range cells {
			if !dark {
				continue
			}
			block := image.Rect(col*scale, row*scale, (col+1)*scale, (row+1)*scale)
			draw.Draw(img, block, image.NewUniform(fg), image.Point{}, draw.Src)
		}
	}

	return img, nil
}

// WriteRasterPNG renders the matrix with Raster and writes it to path as
// a PNG file.
//
// The write is not atomic: a crash mid-write can leave a partial file.
// That is an accepted property of this tool, not something to paper over
// with temp-file renames.
func WriteRasterPNG(path string, matrix [][]bool, fg, bg color.RGBA, scale int) error {
	img, err := Raster(matrix, fg, bg, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG %s: %w", path, err)
	}
	return nil
}
