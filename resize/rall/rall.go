// Package rall looks up all resamplers by name.
package rall

import (
	"maps"
	"slices"
	"strings"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/resize/bild"
	"github.com/srlehn/imgresize/resize/gift"
	"github.com/srlehn/imgresize/resize/imaging"
	"github.com/srlehn/imgresize/resize/nfnt"
	"github.com/srlehn/imgresize/resize/rdefault"
	"github.com/srlehn/imgresize/resize/rez"
	"github.com/srlehn/imgresize/resize/xdraw"
)

// DefaultName is an unfiltered stretch.
const DefaultName = `nearest`

var resizers = map[string]func() imgproc.Resizer{
	`nearest`:        xdraw.NearestNeighbor,
	`approxbilinear`: xdraw.ApproxBiLinear,
	`bilinear`:       xdraw.BiLinear,
	`catmullrom`:     xdraw.CatmullRom,
	`auto`:           func() imgproc.Resizer { return &rdefault.Resizer{} },
	`nfnt`:           func() imgproc.Resizer { return &nfnt.Resizer{} },
	`imaging`:        func() imgproc.Resizer { return &imaging.Resizer{} },
	`gift`:           func() imgproc.Resizer { return &gift.Resizer{} },
	`bild`:           func() imgproc.Resizer { return &bild.Resizer{} },
	`rez`:            func() imgproc.Resizer { return rez.Resizer{} },
	`builtin`:        imgproc.ResizerDefault,
}

// Names returns the sorted resampler names.
func Names() []string { return slices.Sorted(maps.Keys(resizers)) }

// ByName returns a new resampler, an empty name selects DefaultName.
func ByName(name string) (imgproc.Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		name = DefaultName
	}
	newResizer, ok := resizers[name]
	if !ok {
		return nil, errors.New(`unknown resampler "` + name + `", available: ` + strings.Join(Names(), `, `))
	}
	return newResizer(), nil
}
