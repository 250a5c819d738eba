// Package viewstate turns processor results into immutable values
// for the rendering layers.
package viewstate

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/srlehn/imgresize/imgproc"
)

// Details is what the details screen shows for one image.
type Details struct {
	Ref        imgproc.Reference
	Width      int
	Height     int
	Resolution string // "<w> x <h> (<size>)"
	Size       string
	Name       string // empty if unknown
	MIMEType   string
	Resized    bool
	Preview    string // half block rendering, empty if none
}

// FromMetadata describes the image at ref, md may be nil.
func FromMetadata(ref imgproc.Reference, md *imgproc.Metadata) Details {
	if md == nil {
		return Details{Ref: ref}
	}
	d := Details{
		Ref:      ref,
		Width:    md.Width,
		Height:   md.Height,
		Size:     SizeString(md.Size),
		MIMEType: md.MIMEType,
	}
	if md.HasDisplayName {
		d.Name = md.DisplayName
	}
	d.Resolution = strconv.Itoa(md.Width) + ` x ` + strconv.Itoa(md.Height) + ` (` + d.Size + `)`
	return d
}

// FromArtifact describes a freshly written resize result.
func FromArtifact(a *imgproc.Artifact, md *imgproc.Metadata) Details {
	if a == nil {
		return Details{}
	}
	d := FromMetadata(a.Reference(), md)
	d.Resized = true
	return d
}

// SizeString formats a byte count, 0 is unknown.
func SizeString(size int64) string {
	if size <= 0 {
		return `unknown size`
	}
	return humanize.IBytes(uint64(size))
}

var (
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			Padding(0, 1)
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleFaint = lipgloss.NewStyle().Faint(true)
)

// Render draws the details as a bordered block.
func (d Details) Render() string {
	title := `Image`
	if d.Resized {
		title = `Resized image`
	}
	lines := []string{styleTitle.Render(title)}
	if len(d.Preview) > 0 {
		lines = append(lines, d.Preview)
	}
	lines = append(lines, d.Resolution)
	if len(d.Name) > 0 {
		lines = append(lines, d.Name)
	}
	if len(d.MIMEType) > 0 {
		lines = append(lines, styleFaint.Render(d.MIMEType))
	}
	lines = append(lines, styleFaint.Render(string(d.Ref)))
	return styleBox.Render(strings.Join(lines, "\n"))
}

// Plain is the undecorated single line form.
func (d Details) Plain() string {
	s := d.Resolution
	if len(d.Name) > 0 {
		s += ` ` + d.Name
	}
	return s
}
