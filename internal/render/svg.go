package render

import (
	"fmt"
	"os"
	"strings"
)

// SVG builds a self-contained vector rendering of a QR bit matrix.
//
// The viewBox is one unit per module and the width/height attributes apply
// the scale, so the file stays small (one <rect> per dark module, unit
// sized) while rendering at moduleCount×scale pixels by default.
//
// The vector output is always black-on-white. Custom colors are a raster-
// only feature, matching the generation pipeline this replaces.
func SVG(matrix [][]bool, scale int) (string, error) {
	n := len(matrix)
	if n == 0 {
		return "", fmt.Errorf("empty QR matrix")
	}
	if scale < 1 {
		return "", fmt.Errorf("invalid scale %d (must be >= 1)", scale)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		n, n, n*scale, n*scale,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#fff"/>`, n, n))

	for y, cells := range matrix {
		if len(cells) != n {
			return "", fmt.Errorf("QR matrix is not square: row %d has %d cells, want %d",
				y, len(cells), n)
		}
		for x, dark := range cells {
			if dark {
				sb.WriteString(fmt.Sprintf(
					`<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x, y))
			}
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// WriteSVG renders the matrix with SVG and writes it to path.
// Like the raster path, the write is not atomic.
func WriteSVG(path string, matrix [][]bool, scale int) error {
	content, err := SVG(matrix, scale)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
