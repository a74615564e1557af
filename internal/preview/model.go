// Package preview is an interactive terminal view of a rebuilt chat log.
// Switching tabs re-runs passes against the same snapshot so scroll
// restoration can be watched as it happens.
package preview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"cleanchat/internal/config"
	"cleanchat/internal/engine"
	"cleanchat/internal/logging"
	"cleanchat/internal/report"
	"cleanchat/internal/textmetrics"
	"cleanchat/internal/types"
)

const (
	minWidth       = 20
	minHeight      = 4
	chromeRows     = 2
	ellipsis       = "…"
	defaultTitle   = "cleanchat"
	helpStatusText = "1-7 tab  x close  w hop  h host  y copy  r rebuild  q quit"
)

var cycleTabs = []types.ChatTab{
	types.ChatTabAll,
	types.ChatTabGame,
	types.ChatTabPublic,
	types.ChatTabPrivate,
	types.ChatTabChannel,
	types.ChatTabClan,
	types.ChatTabTrade,
}

type Options struct {
	Engine   *engine.Engine
	Snapshot types.Snapshot
	Tab      types.ChatTab
	Title    string
	Logger   logging.Logger
}

// ReloadMsg carries freshly loaded settings into a running preview.
type ReloadMsg struct {
	Settings config.Settings
	Err      error
}

type Model struct {
	engine   *engine.Engine
	logger   logging.Logger
	source   types.Snapshot
	title    string
	tab      types.ChatTab
	lastOpen types.ChatTab
	result   engine.Result
	viewport viewport.Model
	width    int
	height   int
	showHost bool
	status   string
	failed   bool
	ready    bool
}

func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	eng := opts.Engine
	if eng == nil {
		eng = engine.New(engine.Options{Logger: logger, Policy: types.DefaultPolicy()})
	}
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		engine:   eng,
		logger:   logger,
		source:   types.CloneSnapshot(opts.Snapshot),
		title:    title,
		tab:      opts.Tab,
		lastOpen: types.ChatTabAll,
		viewport: viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		width:    80,
		height:   20 + chromeRows,
		status:   helpStatusText,
	}
	if opts.Tab != types.ChatTabClosed {
		m.lastOpen = opts.Tab
	}
	m.rebuild()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Result() engine.Result {
	return m.result
}

func (m *Model) Tab() types.ChatTab {
	return m.tab
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case ReloadMsg:
		m.reload(msg)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6", "7":
		m.switchTab(types.TabOf(int(key[0] - '1')))
		return m, nil
	case "tab":
		m.switchTab(nextTab(m.tab))
		return m, nil
	case "x":
		if m.tab == types.ChatTabClosed {
			m.switchTab(m.lastOpen)
		} else {
			m.switchTab(types.ChatTabClosed)
		}
		return m, nil
	case "h":
		m.showHost = !m.showHost
		m.refreshContent()
		return m, nil
	case "r":
		m.rebuild()
		m.setStatus("rebuilt", false)
		return m, nil
	case "y":
		m.copyTranscript()
		return m, nil
	case "w":
		m.engine.OnGameState(types.GameStateHopping)
		m.rebuild()
		m.setStatus("world hop: scroll reset", false)
		return m, nil
	}

	before := m.viewport.YOffset()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if after := m.viewport.YOffset(); after != before && !m.result.Skipped {
		m.engine.OnScroll(m.result.ScrollHeight, after*textmetrics.LineHeight)
	}
	return m, cmd
}

func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	header := headerStyle.Render(m.fit(fmt.Sprintf("%s  [%s]", m.title, m.tab)))
	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.statusLine()))
	return v
}

func (m *Model) resize(width, height int) {
	m.width = max(width, minWidth)
	m.height = max(height, minHeight)
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(m.height - chromeRows)
	m.refreshContent()
}

func (m *Model) switchTab(tab types.ChatTab) {
	if tab == m.tab {
		return
	}
	if tab != types.ChatTabClosed {
		m.lastOpen = tab
	}
	m.tab = tab
	m.rebuild()
}

// rebuild runs a pass with the current viewport offset standing in for the
// host's scroll offset.
func (m *Model) rebuild() {
	snap := types.CloneSnapshot(m.source)
	if m.ready && snap.Container != nil {
		snap.Container.ScrollY = m.viewport.YOffset() * textmetrics.LineHeight
	}
	m.result = m.engine.Rebuild(snap, m.tab)
	m.ready = true
	m.refreshContent()
	if !m.result.Skipped {
		m.viewport.SetYOffset(m.result.ScrollY / textmetrics.LineHeight)
	}
	m.logger.Debug("preview_rebuilt",
		logging.F("tab", m.tab.String()),
		logging.F("skipped", m.result.Skipped),
		logging.F("scroll_y", m.result.ScrollY),
	)
}

func (m *Model) reload(msg ReloadMsg) {
	if msg.Err != nil {
		m.logger.Warn("preview_reload_failed", logging.Err(msg.Err))
		m.setStatus("config reload failed: "+msg.Err.Error(), true)
		return
	}
	m.engine.SetPolicy(msg.Settings.Policy(), msg.Settings.BlockRules())
	m.rebuild()
	m.setStatus("config reloaded", false)
}

func (m *Model) copyTranscript() {
	text := strings.Join(m.lines(), "\n")
	method, err := copyTextToClipboard(text)
	if err != nil {
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	m.setStatus("copied transcript ("+method.String()+")", false)
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// lines returns the plain transcript currently on display, oldest first.
func (m *Model) lines() []string {
	if m.showHost || m.result.Skipped {
		return report.Transcript(m.source)
	}
	visible := m.result.Visible()
	out := make([]string, 0, len(visible))
	for _, g := range visible {
		if g.Text != "" {
			out = append(out, g.Text)
		}
	}
	return out
}

func (m *Model) refreshContent() {
	if m.showHost || m.result.Skipped {
		m.viewport.SetContent(m.renderLines(report.Transcript(m.source), hostStyle, nil))
		return
	}
	visible := m.result.Visible()
	texts := make([]string, 0, len(visible))
	edited := make([]bool, 0, len(visible))
	for _, g := range visible {
		if g.Text == "" {
			continue
		}
		texts = append(texts, g.Text)
		edited = append(edited, g.Removed || g.Substituted)
	}
	m.viewport.SetContent(m.renderLines(texts, lineStyle, edited))
}

func (m *Model) renderLines(texts []string, style lipgloss.Style, edited []bool) string {
	if len(texts) == 0 {
		return emptyStyle.Render("(empty log)")
	}
	rendered := make([]string, 0, len(texts))
	for i, text := range texts {
		s := style
		if i < len(edited) && edited[i] {
			s = editedStyle
		}
		rendered = append(rendered, s.Render(m.fit(text)))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) fit(text string) string {
	if runewidth.StringWidth(text) <= m.width {
		return text
	}
	return runewidth.Truncate(text, m.width, ellipsis)
}

func (m *Model) statusLine() string {
	var parts []string
	if m.result.Skipped {
		parts = append(parts, "skipped: "+strings.ReplaceAll(m.result.Reason, "_", " "))
	} else {
		s := m.result.Stats
		parts = append(parts,
			fmt.Sprintf("lines %d", s.Groups),
			fmt.Sprintf("edited %d", s.Edited),
			fmt.Sprintf("hidden %d", s.Hidden),
			fmt.Sprintf("scroll %d/%d", m.result.ScrollY, m.result.ScrollHeight),
		)
	}
	if m.showHost {
		parts = append(parts, "host view")
	}
	line := statusStyle.Render(strings.Join(parts, "  "))
	if m.result.Scrollbar.Restored && !m.result.Skipped {
		line += " " + restoreStyle.Render("restored")
	}
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		line += "  " + style.Render(m.status)
	}
	line = xansi.Truncate(line, m.width, "")
	if pad := m.width - xansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func nextTab(tab types.ChatTab) types.ChatTab {
	for i, candidate := range cycleTabs {
		if candidate == tab {
			return cycleTabs[(i+1)%len(cycleTabs)]
		}
	}
	return types.ChatTabAll
}
