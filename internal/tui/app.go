package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/briefing"
	"github.com/matheuskafuri/grid7/internal/capability"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/logging"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/matheuskafuri/grid7/internal/signal"
	"github.com/matheuskafuri/grid7/internal/state"
	"github.com/matheuskafuri/grid7/internal/store"
	"github.com/matheuskafuri/grid7/internal/subscribe"
	"github.com/matheuskafuri/grid7/internal/timeline"
)

type mode int

const (
	modeSplash mode = iota
	modeBrowse
	modeDetail
	modeSubscribe
	modeHelp
)

// cardHeight is the rendered height of one feed card, borders included.
const cardHeight = 5

type App struct {
	cfg       *config.Config
	store     *store.Store
	refresher *refresh.Coordinator
	launches  []news.LaunchEvent
	weights   signal.SourceWeights
	logger    *log.Logger
	now       func() time.Time

	flow      *subscribe.Flow
	subEvents chan subscribe.Status
	subStatus subscribe.Status

	narrator  *capability.Narrator
	clipboard capability.Clipboard
	sharer    capability.Sharer
	opener    capability.Opener

	st           state.State
	mode         mode
	cursor       int
	launchCursor int
	detailScroll int
	showSignal   bool

	width  int
	height int

	// Sub-components
	emailInput textinput.Model
	spinner    spinner.Model

	// State
	splash      time.Duration
	refreshing  bool
	subscribing bool
	inputErr    string
	notice      string
	err         error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg       *config.Config
	Store     *store.Store
	Refresher *refresh.Coordinator
	Launches  []news.LaunchEvent
	Flow      *subscribe.Flow
	Narrator  *capability.Narrator
	Clipboard capability.Clipboard
	Sharer    capability.Sharer
	Opener    capability.Opener
	Logger    *log.Logger
	// Category preselects a feed filter.
	Category   news.Category
	SkipSplash bool
	Now        func() time.Time
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "operative@example.com"
	ti.Prompt = keyStyle.Render("@ ")
	ti.CharLimit = 254

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{}
	}
	st := state.New(cfg.GetPageSize())
	if opts.Category != "" {
		st.SelectCategory(opts.Category)
	}

	a := &App{
		cfg:        cfg,
		store:      opts.Store,
		refresher:  opts.Refresher,
		launches:   opts.Launches,
		weights:    signal.Weights(cfg.Sources),
		logger:     opts.Logger,
		now:        opts.Now,
		flow:       opts.Flow,
		narrator:   opts.Narrator,
		clipboard:  opts.Clipboard,
		sharer:     opts.Sharer,
		opener:     opts.Opener,
		st:         st,
		mode:       modeSplash,
		emailInput: ti,
		spinner:    sp,
		splash:     cfg.SplashDurationValue(),
	}
	if opts.SkipSplash {
		a.mode = modeBrowse
	}
	if a.store == nil {
		a.store = store.New(nil)
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.clipboard == nil {
		a.clipboard = capability.SystemClipboard{}
	}
	if a.sharer == nil {
		a.sharer = capability.TerminalSharer{}
	}
	if a.opener == nil {
		a.opener = capability.Browser{}
	}
	if a.flow != nil {
		a.subEvents = make(chan subscribe.Status, 16)
		events := a.subEvents
		a.flow.OnChange(func(s subscribe.Status) {
			select {
			case events <- s:
			default:
			}
		})
		a.subStatus = a.flow.Status()
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.waitForSubscribe()}
	if a.mode == modeSplash {
		cmds = append(cmds, a.spinner.Tick, tea.Tick(a.splash, func(time.Time) tea.Msg {
			return splashDoneMsg{}
		}))
	} else {
		cmds = append(cmds, a.autoRefresh())
	}
	return tea.Batch(cmds...)
}

// Commands

func (a *App) autoRefresh() tea.Cmd {
	if a.refresher == nil {
		return nil
	}
	r := a.refresher
	a.refreshing = true
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		out, err := r.AutoRefresh(context.Background())
		return refreshDoneMsg{outcome: out, err: err}
	})
}

func (a *App) manualRefresh() tea.Cmd {
	if a.refresher == nil {
		return nil
	}
	if a.refresher.Refreshing() {
		a.notice = "Refresh already in progress"
		return nil
	}
	r := a.refresher
	a.refreshing = true
	a.notice = ""
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		out, err := r.Refresh(context.Background())
		return refreshDoneMsg{outcome: out, err: err}
	})
}

// waitForSubscribe delivers the next subscription status change.
func (a *App) waitForSubscribe() tea.Cmd {
	if a.subEvents == nil {
		return nil
	}
	events := a.subEvents
	return func() tea.Msg {
		return subscribeStatusMsg{status: <-events}
	}
}

func (a *App) submit(address string) tea.Cmd {
	flow, articles := a.flow, a.store.Articles()
	a.subscribing = true
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		return subscribeDoneMsg{err: flow.Submit(context.Background(), address, articles)}
	})
}

func (a *App) speak(art news.Article) tea.Cmd {
	n := a.narrator
	return func() tea.Msg {
		if n == nil {
			return noticeMsg{text: "Speech is not available on this system"}
		}
		on, err := n.Toggle(art)
		switch {
		case errors.Is(err, capability.ErrUnsupported):
			return noticeMsg{text: "Speech is not available on this system"}
		case err != nil:
			return errMsg{err: err}
		case on:
			return noticeMsg{text: "Reading: " + truncateStr(art.Title, 48)}
		default:
			return noticeMsg{text: "Stopped reading"}
		}
	}
}

func (a *App) share(art news.Article) tea.Cmd {
	s, c := a.sharer, a.clipboard
	return func() tea.Msg {
		copied, err := capability.ShareOrCopy(s, c, art)
		switch {
		case err != nil:
			return errMsg{err: err}
		case copied:
			return noticeMsg{text: "Copied to clipboard"}
		default:
			return noticeMsg{text: "Shared"}
		}
	}
}

func (a *App) open(art news.Article) tea.Cmd {
	o := a.opener
	return func() tea.Msg {
		if err := o.Open(art.Link()); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) busy() bool {
	return a.mode == modeSplash || a.refreshing || a.subscribing
}

// visible returns the paged articles for the active category.
func (a *App) visible() ([]news.Article, bool) {
	return a.st.Visible(a.store.Articles())
}

func (a *App) upcoming() []news.LaunchEvent {
	return timeline.Upcoming(a.launches, a.now())
}

func (a *App) current() (news.Article, bool) {
	vis, _ := a.visible()
	if a.cursor < 0 || a.cursor >= len(vis) {
		return news.Article{}, false
	}
	return vis[a.cursor], true
}

func (a *App) clampCursor() {
	vis, _ := a.visible()
	if a.cursor >= len(vis) {
		a.cursor = len(vis) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) leaveSplash() tea.Cmd {
	a.mode = modeBrowse
	return a.autoRefresh()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.emailInput.Width = min(msg.Width-16, 48)
		return a, nil

	case splashDoneMsg:
		if a.mode != modeSplash {
			return a, nil
		}
		return a, a.leaveSplash()

	case refreshDoneMsg:
		if a.refresher != nil {
			a.refreshing = a.refresher.Refreshing()
		} else {
			a.refreshing = false
		}
		a.handleRefreshDone(msg)
		return a, nil

	case subscribeStatusMsg:
		a.subStatus = msg.status
		return a, a.waitForSubscribe()

	case subscribeDoneMsg:
		a.subscribing = false
		if a.flow != nil {
			a.subStatus = a.flow.Status()
		}
		if msg.err != nil && !errors.Is(msg.err, subscribe.ErrInvalidAddress) {
			a.logger.Warn("subscription failed", "err", msg.err)
			if a.mode != modeSubscribe {
				a.notice = subscribe.FailureMessage
			}
		} else if msg.err == nil && a.mode != modeSubscribe {
			a.notice = a.subStatus.Message
		}
		return a, nil

	case noticeMsg:
		a.notice = msg.text
		a.err = nil
		return a, nil

	case errMsg:
		a.logger.Warn("action failed", "err", msg.err)
		a.err = msg.err
		a.notice = ""
		return a, nil

	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleRefreshDone(msg refreshDoneMsg) {
	switch {
	case errors.Is(msg.err, refresh.ErrInFlight), errors.Is(msg.err, refresh.ErrAutoRefreshed):
		return
	case msg.err != nil:
		a.err = msg.err
		return
	}

	out := msg.outcome
	a.clampCursor()
	a.err = nil
	switch out.Status {
	case refresh.StatusMerged:
		a.notice = fmt.Sprintf("Uplink synced · %d new", out.Added)
	case refresh.StatusPartial:
		a.notice = fmt.Sprintf("Partial sync · %d new · %d sources failed", out.Added, len(out.Errors))
	case refresh.StatusEmpty:
		a.notice = "No new intelligence"
	case refresh.StatusFailed:
		a.notice = ""
		a.err = fmt.Errorf("uplink failed: %w", out.Err())
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, a.quit()
	}

	switch a.mode {
	case modeSplash:
		return a, a.leaveSplash()
	case modeHelp:
		a.mode = modeBrowse
		return a, nil
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeSubscribe:
		return a.handleSubscribeKey(msg)
	}
	return a.handleBrowseKey(msg)
}

func (a *App) quit() tea.Cmd {
	if a.narrator != nil {
		if err := a.narrator.Stop(); err != nil {
			a.logger.Debug("stopping speech", "err", err)
		}
	}
	return tea.Quit
}

func (a *App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, a.quit()
	case "?":
		a.mode = modeHelp
		return a, nil
	case "1":
		a.st.SwitchTab(state.TabNews)
		return a, nil
	case "2":
		a.st.SwitchTab(state.TabLaunches)
		return a, nil
	case "tab":
		if a.st.Tab() == state.TabNews {
			a.st.SwitchTab(state.TabLaunches)
		} else {
			a.st.SwitchTab(state.TabNews)
		}
		return a, nil
	case "r":
		return a, a.manualRefresh()
	case "s":
		return a, a.openSubscribe()
	}

	if a.st.Tab() == state.TabLaunches {
		switch msg.String() {
		case "up", "k":
			if a.launchCursor > 0 {
				a.launchCursor--
			}
		case "down", "j":
			if a.launchCursor < len(a.upcoming())-1 {
				a.launchCursor++
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "left", "h":
		a.st.SelectCategory(nextCategory(a.st.Category(), -1))
		a.cursor = 0
	case "right", "l":
		a.st.SelectCategory(nextCategory(a.st.Category(), 1))
		a.cursor = 0
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		vis, _ := a.visible()
		if a.cursor < len(vis)-1 {
			a.cursor++
		}
	case "m", " ":
		if _, more := a.visible(); more {
			a.st.LoadMore()
		}
	case "enter":
		if art, ok := a.current(); ok {
			a.st.Select(art)
			a.detailScroll = 0
			a.mode = modeDetail
		}
	case "p":
		if art, ok := a.current(); ok {
			return a, a.speak(art)
		}
	case "c":
		if art, ok := a.current(); ok {
			return a, a.share(art)
		}
	case "o":
		if art, ok := a.current(); ok {
			return a, a.open(art)
		}
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	art, ok := a.st.Selected()
	if !ok {
		a.mode = modeBrowse
		return a, nil
	}
	switch msg.String() {
	case "esc", "q", "backspace":
		a.st.ClearSelection()
		a.mode = modeBrowse
	case "up", "k":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
	case "down", "j":
		a.detailScroll++
	case "i":
		a.showSignal = !a.showSignal
	case "p":
		return a, a.speak(art)
	case "c":
		return a, a.share(art)
	case "o":
		return a, a.open(art)
	}
	return a, nil
}

func (a *App) openSubscribe() tea.Cmd {
	if a.flow == nil {
		a.notice = "Newsletter is not configured"
		return nil
	}
	a.mode = modeSubscribe
	a.inputErr = ""
	if a.subStatus.Phase == subscribe.Idle {
		a.emailInput.SetValue("")
	}
	return a.emailInput.Focus()
}

func (a *App) closeSubscribe() {
	a.emailInput.Blur()
	a.mode = modeBrowse
}

func (a *App) handleSubscribeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.subStatus.Phase {
	case subscribe.Generating, subscribe.Sending:
		// The send carries on in the background.
		if msg.String() == "esc" {
			a.closeSubscribe()
		}
		return a, nil

	case subscribe.Sent:
		switch msg.String() {
		case "enter", "esc":
			a.flow.Reset()
			a.subStatus = a.flow.Status()
			a.closeSubscribe()
		}
		return a, nil

	case subscribe.Failed:
		switch msg.String() {
		case "r":
			a.flow.Retry()
			a.subStatus = a.flow.Status()
			return a, a.emailInput.Focus()
		case "esc":
			a.flow.Reset()
			a.subStatus = a.flow.Status()
			a.closeSubscribe()
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.closeSubscribe()
		return a, nil
	case "enter":
		address := strings.TrimSpace(a.emailInput.Value())
		if !subscribe.ValidAddress(address) {
			a.inputErr = "Enter a valid email address"
			return a, nil
		}
		a.inputErr = ""
		a.subStatus = subscribe.Status{Phase: subscribe.Generating, Address: address}
		return a, a.submit(address)
	}

	var cmd tea.Cmd
	a.emailInput, cmd = a.emailInput.Update(msg)
	return a, cmd
}

// View

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.mode {
	case modeSplash:
		return renderSplash(a.width, a.height, a.spinner.View())
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "any key to return")
	case modeDetail:
		art, _ := a.st.Selected()
		speaking := a.narrator != nil && a.narrator.Speaking(art.ID)
		var b *signal.Breakdown
		if a.showSignal {
			bd := signal.ScoreWithBreakdown(signal.Input{
				Title:     art.Title,
				Summary:   art.Summary,
				Source:    art.Source,
				Published: art.Timestamp,
			}, a.weights)
			b = &bd
		}
		return a.withBottomBar(renderDetail(art, b, speaking, a.width, a.height-1, a.detailScroll), "esc close")
	case modeSubscribe:
		st := a.subStatus
		if st.Phase == subscribe.Idle && a.inputErr != "" {
			st.Message = a.inputErr
		}
		return a.withBottomBar(renderSubscribe(st, a.emailInput.View(), a.spinner.View(), a.width, a.height-1), "")
	}

	header := a.renderHeader()
	var body string
	var hints string
	if a.st.Tab() == state.TabLaunches {
		bodyHeight := max(a.height-lipgloss.Height(header)-1, 1)
		upcoming := a.upcoming()
		body = renderLaunches(upcoming, a.launchCursor, a.width, bodyHeight, a.now())
		hints = "tab news  ↑/↓ move  r refresh  s subscribe  ? help  q quit"
	} else {
		header = lipgloss.JoinVertical(lipgloss.Left, header, renderCategoryBar(a.st.Category(), a.width))
		bodyHeight := max(a.height-lipgloss.Height(header)-1, 1)
		body = a.renderFeed(bodyHeight)
		hints = "←/→ category  enter open  m more  r refresh  s subscribe  ? help"
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return a.withBottomBar(content, hints)
}

func (a *App) renderHeader() string {
	now := a.now()
	vis, _ := a.visible()
	h := briefing.NewHeader(now, vis, a.store.Articles())

	title := headerStyle.Render("GRID7") + "  " + renderTabs(a.st.Tab())
	date := headerDateStyle.Render(now.Format("Mon Jan 2") + " ")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(date), 1)
	top := title + strings.Repeat(" ", gap) + date

	meta := fmt.Sprintf("%s · %d articles", h.Greeting, h.Count)
	if h.ActiveSources != "" {
		meta += " · " + h.ActiveSources
	}
	lines := []string{top, headerMetaStyle.Render(truncateStr(meta, a.width-2))}
	if h.Trending != "" {
		lines = append(lines, headerMetaStyle.Render(truncateStr("Trending: "+h.Trending, a.width-2)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFeed(height int) string {
	vis, more := a.visible()
	if len(vis) == 0 {
		return lipglossCenter("No articles in this category", a.width, height)
	}

	room := height
	if more {
		room--
	}
	start, end := visibleRange(len(vis), a.cursor, room, cardHeight)
	now := a.now()

	var b strings.Builder
	for i := start; i < end; i++ {
		speaking := a.narrator != nil && a.narrator.Speaking(vis[i].ID)
		b.WriteString(renderCard(briefing.NewCard(vis[i]), i == a.cursor, speaking, a.width, now))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if more {
		b.WriteString("\n" + helpDimStyle.Render(fmt.Sprintf("  m load more · showing %d", len(vis))))
	}
	return b.String()
}

// withBottomBar pads content to fill the screen and appends the status bar.
func (a *App) withBottomBar(content, hints string) string {
	contentHeight := strings.Count(content, "\n") + 1
	if pad := a.height - contentHeight - 1; pad > 0 {
		content += strings.Repeat("\n", pad)
	}

	left := ""
	switch {
	case a.refreshing:
		left = " " + a.spinner.View() + " syncing uplink..."
	case a.err != nil:
		left = " " + errorStyle.Render(truncateStr(a.err.Error(), a.width/2))
	case a.notice != "":
		left = " " + noticeStyle.Render(truncateStr(a.notice, a.width/2))
	}
	if a.subscribing && a.mode != modeSubscribe {
		left += " " + helpDimStyle.Render("· transmitting briefing")
	}

	return content + "\n" + renderBottomBar(left, hints, a.width)
}

func (a *App) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"1 / 2 / tab", "switch between news and launches"},
		{"←/→ h/l", "previous / next category"},
		{"↑/↓ j/k", "move selection"},
		{"enter", "open article"},
		{"i", "signal breakdown (in article)"},
		{"m", "load more articles"},
		{"p", "read article aloud / stop"},
		{"c", "share or copy article"},
		{"o", "open article in browser"},
		{"r", "refresh from live sources"},
		{"s", "subscribe to the newsletter"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n" + headerStyle.Render("GRID7 keys") + "\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Width(14).Render(r.key), itemBodyStyle.Render(r.desc)))
	}
	return b.String()
}

// Run starts the TUI and blocks until it exits.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
