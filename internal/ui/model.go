package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/kosakata/internal/vocab"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// chromeLines is the number of rows View spends outside the entry list.
const chromeLines = 9

// Model owns Bubble Tea state for browsing a classified word list.
type Model struct {
	ctx    context.Context
	reader *vocab.Reader
	input  string

	report   vocab.Report
	tab      int
	selected int
	height   int

	filter    textinput.Model
	filtering bool

	loading    bool
	statusLine string
	errorLine  string
}

type reportLoadedMsg struct {
	report vocab.Report
	err    error
}

// NewModel seeds a Bubble Tea model that browses the entries of input.
func NewModel(ctx context.Context, reader *vocab.Reader, input string) Model {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter entries"

	var report vocab.Report
	if reader != nil {
		report = reader.Classifier().Group(nil)
	}

	return Model{
		ctx:        ctx,
		reader:     reader,
		input:      input,
		report:     report,
		filter:     filter,
		loading:    true,
		statusLine: fmt.Sprintf("Loading %s...", input),
	}
}

// Init loads the word list.
func (m Model) Init() tea.Cmd {
	return m.loadReportCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	case reportLoadedMsg:
		return m.handleReportLoaded(msg)
	default:
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right", "l", "tab":
		return m.switchTab(1), nil
	case "left", "h", "shift+tab":
		return m.switchTab(-1), nil
	case "down", "j":
		if m.selected < len(m.visibleEntries())-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "g", "home":
		m.selected = 0
	case "G", "end":
		if n := len(m.visibleEntries()); n > 0 {
			m.selected = n - 1
		}
	case "/":
		m.filtering = true
		m.errorLine = ""
		return m, m.filter.Focus()
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.selected = 0
			m.statusLine = "Filter cleared."
		}
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.statusLine = fmt.Sprintf("%d match%s.", len(m.visibleEntries()), pluralES(len(m.visibleEntries())))
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.selected = 0
		m.statusLine = "Filter cleared."
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.selected = 0
	return m, cmd
}

func (m Model) switchTab(delta int) Model {
	n := len(m.report.Groups)
	if n == 0 {
		return m
	}
	m.tab = ((m.tab+delta)%n + n) % n
	m.selected = 0
	m.errorLine = ""
	group := m.report.Groups[m.tab]
	m.statusLine = fmt.Sprintf("%s: %d entr%s.", group.Label, len(group.Entries), plural(len(group.Entries)))
	return m
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Reloading %s...", m.input)
	m.errorLine = ""
	return m, m.loadReportCmd()
}

func (m Model) handleReportLoaded(msg reportLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", m.input, msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.report = msg.report
	if m.tab >= len(m.report.Groups) {
		m.tab = 0
	}
	if n := len(m.visibleEntries()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Loaded %d entr%s.", m.report.Total(), plural(m.report.Total()))
	return m, nil
}

func (m Model) loadReportCmd() tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	input := m.input
	return func() tea.Msg {
		report, err := reader.Report(ctx, input)
		return reportLoadedMsg{report: report, err: err}
	}
}

// visibleEntries returns the current tab's entries that match the filter.
func (m Model) visibleEntries() []string {
	if m.tab < 0 || m.tab >= len(m.report.Groups) {
		return nil
	}
	entries := m.report.Groups[m.tab].Entries
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return entries
	}

	var matched []string
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), query) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.input))
	b.WriteString("\n")

	tabs := make([]string, 0, len(m.report.Groups))
	for i, group := range m.report.Groups {
		label := fmt.Sprintf("%s (%d)", group.Label, len(group.Entries))
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	entries := m.visibleEntries()
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(entries) == 0:
		b.WriteString("(no entries)\n")
	default:
		start, end := m.window(len(entries))
		for i := start; i < end; i++ {
			line := fmt.Sprintf("%d. %s", i+1, entries[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteByte('\n')
		}
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n")
		b.WriteString(m.filter.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("<-/h ->/l group  j/k select  g/G top/bottom  / filter  esc clear  r reload  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// window returns the slice of entry rows that fits the terminal and keeps the
// selection visible.
func (m Model) window(n int) (int, int) {
	rows := n
	if m.height > chromeLines {
		rows = min(n, m.height-chromeLines)
	}
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	return start, min(start+rows, n)
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func pluralES(count int) string {
	if count == 1 {
		return ""
	}
	return "es"
}
