// Package tui is a two screen terminal UI: pick an image, then show its
// details and resize it. It only renders viewstate values, all domain
// work happens in imgproc on background commands.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/viewstate"
)

// ImageExtensions are offered by the picker.
var ImageExtensions = []string{`.jpg`, `.jpeg`, `.png`, `.gif`, `.bmp`, `.tif`, `.tiff`, `.webp`}

type screen uint8

const (
	screenPicker screen = iota
	screenDetails
)

type metadataMsg struct {
	details viewstate.Details
	err     error
}

type resizedMsg struct {
	details viewstate.Details
	err     error
}

var _ tea.Model = (*Model)(nil)

type Model struct {
	proc    *imgproc.Processor
	picker  filepicker.Model
	width   textinput.Model
	height  textinput.Model
	spin    spinner.Model
	screen  screen
	dialog  bool
	busy    bool
	details viewstate.Details
	resized *viewstate.Details
	err     error
}

// New starts in the picker at dir.
func New(p *imgproc.Processor, dir string) *Model {
	fp := filepicker.New()
	fp.AllowedTypes = ImageExtensions
	if len(dir) > 0 {
		fp.CurrentDirectory = dir
	}
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 6
		ti.Width = 8
		ti.Prompt = placeholder + `: `
		return ti
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Model{
		proc:   p,
		picker: fp,
		width:  newInput(`Width`),
		height: newInput(`Height`),
		spin:   sp,
	}
}

// Run blocks until the user quits.
func Run(p *imgproc.Processor, dir string, opts ...tea.ProgramOption) error {
	if p == nil {
		return errors.NilParam()
	}
	if _, err := tea.NewProgram(New(p, dir), opts...).Run(); err != nil {
		return errors.New(err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return m.picker.Init() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == `ctrl+c` {
			return m, tea.Quit
		}
		if m.dialog {
			return m.updateDialog(msg)
		}
		if m.screen == screenDetails {
			return m.updateDetails(msg)
		}
		if msg.String() == `q` {
			return m, tea.Quit
		}
	case metadataMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.details = msg.details
		m.resized = nil
		m.screen = screenDetails
		return m, nil
	case resizedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		d := msg.details
		m.resized = &d
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	switch {
	case m.screen == screenPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			return m, tea.Batch(cmd, m.startMetadata(imgproc.Reference(path)))
		}
		return m, cmd
	case m.dialog:
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m *Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case `q`:
		return m, tea.Quit
	case `esc`, `backspace`:
		m.screen = screenPicker
		m.err = nil
		m.resized = nil
		return m, nil
	case `r`:
		m.dialog = true
		m.err = nil
		m.width.Reset()
		m.height.Reset()
		m.height.Blur()
		return m, tea.Batch(m.width.Focus(), textinput.Blink)
	}
	return m, nil
}

func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case `esc`:
		m.dialog = false
		m.err = nil
		return m, nil
	case `tab`, `shift+tab`, `up`, `down`:
		if m.width.Focused() {
			m.width.Blur()
			return m, m.height.Focus()
		}
		m.height.Blur()
		return m, m.width.Focus()
	case `enter`:
		req, err := viewstate.ParseRequest(m.width.Value(), m.height.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.dialog = false
		m.err = nil
		return m, m.startResize(req)
	}
	if msg.Type == tea.KeyRunes && !isDigits(msg.Runes) {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmdW, cmdH tea.Cmd
	m.width, cmdW = m.width.Update(msg)
	m.height, cmdH = m.height.Update(msg)
	return m, tea.Batch(cmdW, cmdH)
}

func (m *Model) startMetadata(ref imgproc.Reference) tea.Cmd {
	m.busy = true
	p := m.proc
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		img, md, err := p.ReadImage(ref)
		if err != nil {
			return metadataMsg{err: err}
		}
		return metadataMsg{details: viewstate.FromMetadata(ref, md).WithPreview(img)}
	})
}

// startResize resizes and re-reads the metadata of the written file.
func (m *Model) startResize(req imgproc.ResizeRequest) tea.Cmd {
	m.busy = true
	p := m.proc
	ref := m.details.Ref
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		a, err := p.Resize(ref, req)
		if err != nil {
			return resizedMsg{err: err}
		}
		md, err := p.ReadMetadata(a.Reference())
		if err != nil {
			return resizedMsg{err: err}
		}
		return resizedMsg{details: viewstate.FromArtifact(a, md).WithPreview(a.Image)}
	})
}

var (
	styleHeader = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	styleErr    = lipgloss.NewStyle().Foreground(lipgloss.Color(`9`))
	styleHelp   = lipgloss.NewStyle().Faint(true).MarginTop(1)
	styleDialog = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true).
			Padding(0, 1)
)

func (m *Model) View() string {
	var b strings.Builder
	switch m.screen {
	case screenPicker:
		b.WriteString(styleHeader.Render(`Pick an image`) + "\n")
		b.WriteString(m.picker.View())
	case screenDetails:
		views := []string{m.details.Render()}
		if m.resized != nil {
			views = append(views, m.resized.Render())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
		if m.dialog {
			b.WriteString("\n" + styleDialog.Render(lipgloss.JoinVertical(lipgloss.Left,
				`Enter new width and height`,
				m.width.View(),
				m.height.View(),
			)))
		}
	}
	if m.busy {
		b.WriteString("\n" + m.spin.View() + ` working…`)
	}
	if m.err != nil {
		b.WriteString("\n" + styleErr.Render(m.err.Error()))
	}
	b.WriteString("\n" + styleHelp.Render(m.help()))
	return b.String()
}

func (m *Model) help() string {
	switch {
	case m.dialog:
		return `tab switch field • enter resize • esc cancel`
	case m.screen == screenDetails:
		return `r resize • esc back • q quit`
	default:
		return `enter select • q quit`
	}
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}
