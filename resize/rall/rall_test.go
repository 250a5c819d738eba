package rall_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgresize/resize/rall"
)

func testImages() map[string]image.Image {
	rect := image.Rect(0, 0, 40, 30)
	rgba := image.NewRGBA(rect)
	nrgba := image.NewNRGBA(rect)
	gray := image.NewGray(rect)
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 128, A: 255}
			rgba.Set(x, y, c)
			nrgba.Set(x, y, c)
			gray.Set(x, y, c)
		}
	}
	return map[string]image.Image{
		`rgba`:   rgba,
		`nrgba`:  nrgba,
		`gray`:   gray,
		`ycbcr`:  image.NewYCbCr(rect, image.YCbCrSubsampleRatio444),
		`offset`: rgba.SubImage(image.Rect(5, 5, 35, 25)),
	}
}

// output sizes are the contract, the filters are not
func TestResizersExactSize(t *testing.T) {
	sizes := []image.Point{{X: 20, Y: 10}, {X: 1, Y: 1}, {X: 97, Y: 13}, {X: 80, Y: 90}}
	for _, name := range rall.Names() {
		rsz, err := rall.ByName(name)
		require.NoError(t, err, name)
		for imgName, img := range testImages() {
			for _, size := range sizes {
				m, err := rsz.Resize(img, size)
				if name == `rez` && err != nil {
					// rez refuses some conversions, callers fall back
					continue
				}
				require.NoError(t, err, "%s %s %v", name, imgName, size)
				require.NotNil(t, m)
				assert.Equal(t, size, m.Bounds().Size(), "%s %s", name, imgName)
			}
		}
	}
}

func TestByName(t *testing.T) {
	rsz, err := rall.ByName(``)
	require.NoError(t, err)
	assert.NotNil(t, rsz)
	_, err = rall.ByName(` NFNT `)
	assert.NoError(t, err)
	_, err = rall.ByName(`caire`)
	assert.Error(t, err)
	assert.Contains(t, rall.Names(), rall.DefaultName)
}
