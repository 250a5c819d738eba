package imgproc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNamerStrictlyIncreasing(t *testing.T) {
	ticks := []int64{5, 5, 5, 3, 10, 10}
	var i int
	n := newNamer(func() time.Time {
		ms := ticks[i%len(ticks)]
		i++
		return time.UnixMilli(ms)
	})
	var got []string
	for range ticks {
		got = append(got, n.next())
	}
	assert.Equal(t, []string{
		`resized_image_5.jpg`,
		`resized_image_6.jpg`,
		`resized_image_7.jpg`,
		`resized_image_8.jpg`,
		`resized_image_10.jpg`,
		`resized_image_11.jpg`,
	}, got)
}
