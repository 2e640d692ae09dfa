package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/lapackgen"
	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/wrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	protoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type declInfo struct {
	name      string
	prototype string
	wrapper   string
}

type modelState int

const (
	stateSelectDecl modelState = iota
	statePreview
)

type interactiveModel struct {
	err      error
	filename string
	outFile  string
	opts     lapackgen.Options
	status   string
	decls    []declInfo
	viewport viewport.Model
	selected int
	width    int
	height   int
	ready    bool
	state    modelState
}

func newInteractiveModel(filename, outFile string, opts lapackgen.Options) *interactiveModel {
	if outFile == "" {
		outFile = strings.TrimSuffix(filename, ".h") + ".go"
	}
	return &interactiveModel{
		filename: filename,
		outFile:  outFile,
		opts:     opts,
		state:    stateSelectDecl,
	}
}

type loadedMsg struct {
	err   error
	decls []declInfo
}

type writtenMsg struct {
	err  error
	path string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadHeader
}

func (m *interactiveModel) loadHeader() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	decls, err := cdecl.ParseAll(string(data))
	if err != nil {
		return loadedMsg{err: err}
	}

	infos := make([]declInfo, 0, len(decls))
	for _, d := range decls {
		w, err := wrap.Wrap(d)
		if err != nil {
			return loadedMsg{err: err}
		}
		infos = append(infos, declInfo{
			name:      d.Name,
			prototype: d.Prototype(),
			wrapper:   w,
		})
	}
	return loadedMsg{decls: infos}
}

func (m *interactiveModel) writeFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return writtenMsg{err: err}
	}
	out, err := lapackgen.Generate(string(data), m.opts)
	if err != nil {
		return writtenMsg{err: err}
	}
	if err := os.WriteFile(m.outFile, []byte(out), 0o644); err != nil {
		return writtenMsg{err: err}
	}
	return writtenMsg{path: m.outFile}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectDecl && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectDecl && m.selected < len(m.decls)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectDecl && len(m.decls) > 0 {
				m.viewport.SetContent(m.previewContent())
				m.viewport.GotoTop()
				m.state = statePreview
			}

		case "esc":
			if m.state == statePreview {
				m.state = stateSelectDecl
			}

		case "w":
			return m, m.writeFile
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.decls = msg.decls

	case writtenMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("write failed: %v", msg.err))
		} else {
			m.status = statusStyle.Render("wrote " + msg.path)
		}
	}

	if m.state == statePreview {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) previewContent() string {
	d := m.decls[m.selected]
	return protoStyle.Render(d.prototype) + "\n\n" + d.wrapper
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("lapackgen " + m.filename))
	b.WriteByte('\n')

	switch m.state {
	case stateSelectDecl:
		if len(m.decls) == 0 {
			b.WriteString("\nLoading...\n")
			break
		}
		b.WriteByte('\n')
		for i, d := range m.decls {
			line := fmt.Sprintf("%s -> %s", d.name, wrap.Name(d.name))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(helpStyle.Render("enter: preview • w: write " + m.outFile + " • q: quit"))

	case statePreview:
		if m.ready {
			b.WriteString(m.viewport.View())
		}
		b.WriteByte('\n')
		b.WriteString(helpStyle.Render("esc: back • w: write " + m.outFile + " • q: quit"))
	}

	if m.status != "" {
		b.WriteByte('\n')
		b.WriteString(m.status)
	}
	return b.String()
}

func runInteractive(filename, outFile string, opts lapackgen.Options) error {
	p := tea.NewProgram(newInteractiveModel(filename, outFile, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
