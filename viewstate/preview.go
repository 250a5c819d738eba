package viewstate

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// preview box in terminal cells
const (
	PreviewCols = 32
	PreviewRows = 12
)

// Preview draws img with upper half blocks, two pixels per cell, so that
// it fits into cols x rows cells. Unlike Resize the aspect ratio is kept.
func Preview(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ``
	}
	srcB := img.Bounds()
	if srcB.Empty() {
		return ``
	}
	w, h := fitSize(srcB.Dx(), srcB.Dy(), cols, rows*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, srcB, draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			st := lipgloss.NewStyle().Foreground(termColor(dst.RGBAAt(x, y)))
			if y+1 < h {
				st = st.Background(termColor(dst.RGBAAt(x, y+1)))
			}
			b.WriteString(st.Render(`▀`))
		}
	}
	return b.String()
}

// WithPreview returns a copy of d carrying a preview of img.
func (d Details) WithPreview(img image.Image) Details {
	d.Preview = Preview(img, PreviewCols, PreviewRows)
	return d
}

// fitSize scales w x h down into maxW x maxH, sides are at least 1.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	if int64(w)*int64(maxH) > int64(h)*int64(maxW) {
		return maxW, max(1, int(int64(h)*int64(maxW)/int64(w)))
	}
	return max(1, int(int64(w)*int64(maxH)/int64(h))), maxH
}

func termColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf(`#%02x%02x%02x`, c.R, c.G, c.B))
}
