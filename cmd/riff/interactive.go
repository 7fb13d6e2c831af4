package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/riff-kit/riff"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	chunkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// leafPreviewMax caps the hex view of a leaf payload.
const leafPreviewMax = 512

type browserModel struct {
	err      error
	root     riff.Chunk
	leaf     *riff.Leaf
	filename string
	notice   string
	stack    []*riff.Container
	search   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateSearch
	stateLeaf
)

func newBrowserModel(filename string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "fourcc"
	ti.Prompt = "find: "
	ti.Width = 16
	ti.CharLimit = 4
	return &browserModel{
		filename: filename,
		search:   ti,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err  error
	root riff.Chunk
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *browserModel) loadFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	root, err := riff.Parse(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{root: root}
}

func (m *browserModel) current() *riff.Container {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateSearch {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateBrowse
				m.search.Blur()
				m.notice = ""
			case "enter":
				m.jumpToMatch()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if cur := m.current(); m.state == stateBrowse && cur != nil && m.selected < cur.Len()-1 {
				m.selected++
			}

		case "enter":
			if m.state != stateBrowse {
				break
			}
			cur := m.current()
			if cur == nil || cur.Len() == 0 {
				break
			}
			child, err := cur.Child(m.selected)
			if err != nil {
				break
			}
			switch v := child.(type) {
			case *riff.Container:
				m.stack = append(m.stack, v)
				m.selected = 0
			case *riff.Leaf:
				m.leaf = v
				m.state = stateLeaf
			}

		case "esc":
			switch m.state {
			case stateLeaf:
				if len(m.stack) > 0 {
					m.leaf = nil
					m.state = stateBrowse
				}
			case stateBrowse:
				if len(m.stack) > 1 {
					m.stack = m.stack[:len(m.stack)-1]
					m.selected = 0
				}
			}

		case "/":
			if m.state == stateBrowse && m.current() != nil {
				m.state = stateSearch
				m.search.SetValue("")
				m.notice = ""
				m.search.Focus()
				return m, textinput.Blink
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.root
		switch v := msg.root.(type) {
		case *riff.Container:
			m.stack = []*riff.Container{v}
		case *riff.Leaf:
			m.leaf = v
			m.state = stateLeaf
		}
	}

	return m, nil
}

// jumpToMatch moves the cursor to the first child matching the search
// box, by name or by container alt name.
func (m *browserModel) jumpToMatch() {
	key, err := riff.NewFourCC(m.search.Value())
	if err != nil {
		m.notice = "tags are exactly 4 characters"
		return
	}

	cur := m.current()
	child, err := cur.Find(key)
	if err != nil {
		m.notice = fmt.Sprintf("no chunk %q here", key)
		return
	}
	for i := 0; i < cur.Len(); i++ {
		if c, cerr := cur.Child(i); cerr == nil && c == child {
			m.selected = i
			break
		}
	}
	m.state = stateBrowse
	m.search.Blur()
	m.notice = ""
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.root == nil {
		return "Loading file..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("RIFF Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateLeaf:
		b.WriteString(chunkStyle.Render(m.leaf.Name().String()))
		b.WriteString(" ")
		b.WriteString(sizeStyle.Render(bytefmt.ByteSize(uint64(m.leaf.Size()))))
		b.WriteString("\n\n")
		b.WriteString(hexView(m.leaf.Data()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))

	case stateBrowse:
		m.viewList(&b)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • / find • esc up • q quit"))

	case stateSearch:
		m.viewList(&b)
		b.WriteString("\n")
		b.WriteString(m.search.View())
		if m.notice != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(m.notice))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	}

	return b.String()
}

func (m *browserModel) viewList(b *strings.Builder) {
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	cur := m.current()
	if cur.Len() == 0 {
		b.WriteString(helpStyle.Render("  (no children)"))
		b.WriteString("\n")
		return
	}

	for i := 0; i < cur.Len(); i++ {
		child, err := cur.Child(i)
		if err != nil {
			continue
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + m.formatChunk(child)))
		} else {
			b.WriteString("  " + m.formatChunk(child))
		}
		b.WriteString("\n")
	}
}

func (m *browserModel) breadcrumb() string {
	parts := make([]string, len(m.stack))
	for i, c := range m.stack {
		parts[i] = c.Name().String() + " [" + c.AltName().String() + "]"
	}
	return tagStyle.Render(strings.Join(parts, " / "))
}

func (m *browserModel) formatChunk(c riff.Chunk) string {
	size := sizeStyle.Render(bytefmt.ByteSize(uint64(c.Size())))
	switch v := c.(type) {
	case *riff.Container:
		count := fmt.Sprintf("%d children", v.Len())
		if v.Len() == 1 {
			count = "1 child"
		}
		return chunkStyle.Render(v.Name().String()) + " [" + tagStyle.Render(v.AltName().String()) + "] " + size + ", " + count
	case *riff.Leaf:
		return chunkStyle.Render(v.Name().String()) + " " + size
	default:
		return c.Name().String()
	}
}

func hexView(data []byte) string {
	if len(data) == 0 {
		return helpStyle.Render("(empty payload)")
	}

	shown := data
	var rest int
	if len(shown) > leafPreviewMax {
		rest = len(shown) - leafPreviewMax
		shown = shown[:leafPreviewMax]
	}

	s := hex.Dump(shown)
	if rest > 0 {
		s += helpStyle.Render(fmt.Sprintf("(+%s more)", bytefmt.ByteSize(uint64(rest))))
	}
	return s
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
