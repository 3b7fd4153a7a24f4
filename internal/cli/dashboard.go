package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/chart"
	"github.com/alexanderramin/dmaicboard/internal/cli/formatter"
	"github.com/alexanderramin/dmaicboard/internal/contract"
	"github.com/alexanderramin/dmaicboard/internal/report"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabPhases
	tabOwners
	tabCompletion
	tabCharts
	tabData
	tabInspect
	tabCount
)

var tabTitles = [tabCount]string{"Overview", "Phases", "Owners", "Completion", "Charts", "Data", "Inspect"}

func (t dashboardTab) String() string {
	if t < 0 || t >= tabCount {
		return ""
	}
	return tabTitles[t]
}

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reload, k.Quit}
}

// dashboardViewportKeyMap only scrolls on arrow and page keys so letters
// stay free for tab navigation.
func dashboardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// reportLoadedMsg carries the result of a report generation.
type reportLoadedMsg struct {
	resp *contract.ReportResponse
	err  error
}

type reportLoader func(ctx context.Context) (*contract.ReportResponse, error)

// ── model ────────────────────────────────────────────────────────────────────

// headerLines and footerLines are the rows taken by the tab bar and the
// key hints around the viewport.
const (
	headerLines = 2
	footerLines = 2
)

// dashboardModel is a tabbed, scrollable view over one report.
type dashboardModel struct {
	load    reportLoader
	keys    dashboardKeyMap
	vp      viewport.Model
	tab     dashboardTab
	resp    *contract.ReportResponse
	err     error
	loading bool
	width   int
	height  int
}

func newDashboardModel(load reportLoader) dashboardModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashboardViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return dashboardModel{
		load:    load,
		keys:    defaultDashboardKeys(),
		vp:      vp,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadReport()
}

func (m dashboardModel) loadReport() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		resp, err := load(context.Background())
		return reportLoadedMsg{resp: resp, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-headerLines-footerLines, 1)
		m.refresh()
		return m, nil

	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setTab((m.tab + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setTab((m.tab + tabCount - 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			m.refresh()
			return m, m.loadReport()
		}
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] < '1'+byte(tabCount) {
			m.setTab(dashboardTab(s[0] - '1'))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *dashboardModel) setTab(t dashboardTab) {
	if t == m.tab {
		return
	}
	m.tab = t
	m.refresh()
	m.vp.GotoTop()
}

// refresh re-renders the active tab into the viewport.
func (m *dashboardModel) refresh() {
	m.vp.SetContent(m.content())
}

func (m dashboardModel) content() string {
	switch {
	case m.loading:
		return formatter.Dim("Loading activity log…")
	case m.err != nil:
		return formatter.StyleRed.Render(FormatError(m.err)) + "\n" + formatter.Dim("press r to retry")
	case m.resp == nil:
		return formatter.Dim("No data")
	}

	r := m.resp.Report
	switch m.tab {
	case tabOverview:
		return formatter.FormatIndicators(r.Indicators) + "\n" + formatter.FormatWarnings(m.resp.Warnings)
	case tabPhases:
		return formatter.FormatPhaseTable(r.Phases)
	case tabOwners:
		return formatter.FormatOwnerTable(r.Owners)
	case tabCompletion:
		return formatter.FormatCompletionTable(r.Completion)
	case tabCharts:
		width := max(m.width-30, 10)
		specs := chart.All(r)
		parts := make([]string, len(specs))
		for i, spec := range specs {
			parts[i] = formatter.FormatChart(spec, width)
		}
		return strings.Join(parts, "\n")
	case tabData:
		return formatter.FormatPrepared(m.resp.Prepared.Table, 0)
	case tabInspect:
		return formatter.FormatStatusMappings(report.StatusMappings(r.Records))
	}
	return ""
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	sepWidth := max(m.width, 20)
	b.WriteString(formatter.Dim(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

var activeTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)

func (m dashboardModel) tabBar() string {
	parts := make([]string, 0, tabCount)
	for t := dashboardTab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, formatter.Dim(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m dashboardModel) helpLine() string {
	hints := make([]string, 0, 5)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	hints = append(hints, scrollIndicator(m.vp))
	return strings.Join(hints, "  ")
}

// scrollIndicator returns a dim scroll position string for the help line.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
