package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gostkin/pointers/handle"
	"github.com/gostkin/pointers/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sharedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type handleKind int

const (
	kindShared handleKind = iota
	kindWeak
)

// entry is one handle the user holds in the playground.
type entry struct {
	name   string
	kind   handleKind
	shared *handle.Shared[box]
	weak   *handle.Weak[box]
}

type box struct {
	label string
}

type playState int

const (
	stateList playState = iota
	stateNaming
)

type playModel struct {
	registry *track.Registry
	entries  []*entry
	log      []string
	input    textinput.Model
	selected int
	state    playState
	nextN    int
}

func runInteractive() error {
	reg := track.New()
	handle.Subscribe(reg)
	defer handle.Unsubscribe(reg)

	ti := textinput.New()
	ti.Placeholder = "value label"
	ti.CharLimit = 24

	m := &playModel{registry: reg, input: ti}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateNaming {
			return m.updateNaming(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *playModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		label := m.input.Value()
		if label == "" {
			label = fmt.Sprintf("value-%d", m.nextN)
			m.nextN++
		}
		m.newShared(label)
		m.input.Reset()
		m.input.Blur()
		m.state = stateList
		return m, nil
	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.state = stateList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.dropAll()
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}

	case "n":
		m.state = stateNaming
		m.input.Focus()

	case "c":
		if e := m.current(); e != nil {
			m.clone(e)
		}

	case "w":
		if e := m.current(); e != nil && e.kind == kindShared {
			m.downgrade(e)
		}

	case "l":
		if e := m.current(); e != nil && e.kind == kindWeak {
			m.lock(e)
		}

	case "d":
		if e := m.current(); e != nil {
			m.drop(e)
		}
	}
	return m, nil
}

func (m *playModel) current() *entry {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return nil
	}
	return m.entries[m.selected]
}

func (m *playModel) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
	if len(m.log) > 8 {
		m.log = m.log[len(m.log)-8:]
	}
}

func (m *playModel) newShared(label string) {
	s := handle.NewSharedDrop(&box{label: label}, func(b *box) {
		m.logf("destructor ran for %q", b.label)
	})
	m.entries = append(m.entries, &entry{name: label, kind: kindShared, shared: s})
	m.logf("adopted %q, use count 1", label)
}

func (m *playModel) clone(e *entry) {
	switch e.kind {
	case kindShared:
		c := e.shared.Clone()
		m.entries = append(m.entries, &entry{name: e.name, kind: kindShared, shared: c})
		m.logf("cloned %q, use count %d", e.name, c.UseCount())
	case kindWeak:
		c := e.weak.Clone()
		m.entries = append(m.entries, &entry{name: e.name, kind: kindWeak, weak: c})
		m.logf("cloned weak %q", e.name)
	}
}

func (m *playModel) downgrade(e *entry) {
	w := e.shared.Downgrade()
	m.entries = append(m.entries, &entry{name: e.name, kind: kindWeak, weak: w})
	m.logf("downgraded %q, still %d owner(s)", e.name, w.UseCount())
}

func (m *playModel) lock(e *entry) {
	s := e.weak.Lock()
	if s.Empty() {
		m.logf("lock on %q failed: expired", e.name)
		return
	}
	m.entries = append(m.entries, &entry{name: e.name, kind: kindShared, shared: s})
	m.logf("locked %q, use count %d", e.name, s.UseCount())
}

func (m *playModel) drop(e *entry) {
	switch e.kind {
	case kindShared:
		e.shared.Drop()
		m.logf("dropped shared %q", e.name)
	case kindWeak:
		e.weak.Drop()
		m.logf("dropped weak %q", e.name)
	}
	m.entries = append(m.entries[:m.selected], m.entries[m.selected+1:]...)
	if m.selected >= len(m.entries) && m.selected > 0 {
		m.selected--
	}
}

func (m *playModel) dropAll() {
	for _, e := range m.entries {
		switch e.kind {
		case kindShared:
			e.shared.Drop()
		case kindWeak:
			e.weak.Drop()
		}
	}
	m.entries = nil
}

func (m *playModel) View() string {
	s := titleStyle.Render("handle playground") + "\n\n"

	if m.state == stateNaming {
		s += "New shared value:\n\n"
		s += m.input.View() + "\n\n"
		s += helpStyle.Render("enter: adopt • esc: cancel")
		return s
	}

	if len(m.entries) == 0 {
		s += helpStyle.Render("no handles yet — press n to adopt a value") + "\n"
	}
	for i, e := range m.entries {
		line := m.entryLine(e)
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}

	s += "\n" + titleStyle.Render("live allocations") + "\n"
	m.registry.Each(func(a track.Allocation) bool {
		line := fmt.Sprintf("  #%d strong=%d weak=%d", a.ID, a.Strong, a.Weak)
		if a.Destroyed {
			line += deadStyle.Render(" (destroyed, block pinned)")
		}
		s += line + "\n"
		return true
	})

	if len(m.log) > 0 {
		s += "\n"
		for _, l := range m.log {
			s += helpStyle.Render("  "+l) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("n: new • c: clone • w: downgrade • l: lock • d: drop • q: quit")
	return s
}

func (m *playModel) entryLine(e *entry) string {
	switch e.kind {
	case kindWeak:
		if e.weak.Expired() {
			return deadStyle.Render(fmt.Sprintf("  weak   %-16s expired", e.name))
		}
		return weakStyle.Render(fmt.Sprintf("  weak   %-16s owners=%d", e.name, e.weak.UseCount()))
	default:
		return sharedStyle.Render(fmt.Sprintf("  shared %-16s owners=%d", e.name, e.shared.UseCount()))
	}
}
