// Package imgresize reads image metadata and writes stretched copies
// of images into a cache directory.
//
//	a, err := imgresize.Resize(`photo.jpg`, 200, 100)
package imgresize

import (
	"sync"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/resize/xdraw"
	"github.com/srlehn/imgresize/resolve/fsresolver"
	"github.com/srlehn/imgresize/store/cachedir"
)

var (
	// chosen defaults
	resolver imgproc.Resolver = fsresolver.New(``)
	store    imgproc.Store    = cachedir.New(``)
	resizer  imgproc.Resizer  = xdraw.NearestNeighbor()
)

var (
	DefaultConfig = imgproc.Options{
		imgproc.SetResolver(resolver),
		imgproc.SetStore(store),
		imgproc.SetResizer(resizer),
	}
)

var (
	procMu     sync.Mutex
	procActive *imgproc.Processor
)

// Processor returns the shared processor built from DefaultConfig.
func Processor() (*imgproc.Processor, error) {
	procMu.Lock()
	defer procMu.Unlock()
	if procActive != nil {
		return procActive, nil
	}
	p, err := imgproc.NewProcessor(DefaultConfig)
	if err != nil {
		return nil, err
	}
	procActive = p
	return procActive, nil
}

// ReadMetadata reads dimensions, size and name of the image at ref.
func ReadMetadata(ref string) (*imgproc.Metadata, error) {
	p, err := Processor()
	if err != nil {
		return nil, err
	}
	return p.ReadMetadata(imgproc.Reference(ref))
}

// Resize stretches the image at ref to width×height.
func Resize(ref string, width, height int) (*imgproc.Artifact, error) {
	p, err := Processor()
	if err != nil {
		return nil, err
	}
	return p.Resize(imgproc.Reference(ref), imgproc.ResizeRequest{Width: width, Height: height})
}

// CleanUp closes the package level processor.
func CleanUp() error {
	procMu.Lock()
	defer procMu.Unlock()
	if procActive == nil {
		return nil
	}
	err := procActive.Close()
	procActive = nil
	return err
}
