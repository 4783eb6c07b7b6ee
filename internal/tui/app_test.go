package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/matheuskafuri/grid7/internal/capability"
	"github.com/matheuskafuri/grid7/internal/config"
	"github.com/matheuskafuri/grid7/internal/feed"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/matheuskafuri/grid7/internal/state"
	"github.com/matheuskafuri/grid7/internal/store"
	"github.com/matheuskafuri/grid7/internal/subscribe"
)

var testNow = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type stubFetcher struct {
	release chan struct{}
	result  feed.FetchResult
}

func (f *stubFetcher) FetchLive(ctx context.Context) feed.FetchResult {
	if f.release != nil {
		<-f.release
	}
	return f.result
}

type stubDispatcher struct {
	err  error
	sent []string
}

func (d *stubDispatcher) Send(ctx context.Context, address, body string) error {
	d.sent = append(d.sent, address)
	return d.err
}

type stubClipboard struct{ text string }

func (c *stubClipboard) Copy(text string) error {
	c.text = text
	return nil
}

type stubOpener struct{ urls []string }

func (o *stubOpener) Open(rawURL string) error {
	o.urls = append(o.urls, rawURL)
	return nil
}

type stubSpeaker struct {
	mu     sync.Mutex
	next   capability.Handle
	active map[capability.Handle]bool
}

func (s *stubSpeaker) Speak(text string) (capability.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		s.active = make(map[capability.Handle]bool)
	}
	s.next++
	s.active[s.next] = true
	return s.next, nil
}

func (s *stubSpeaker) Cancel(h capability.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, h)
	return nil
}

func (s *stubSpeaker) Active(h capability.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[h]
}

func testArticles(n int) []news.Article {
	cats := news.StoredCategories()
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			ID:        fmt.Sprint("a", i),
			Title:     fmt.Sprint("Headline ", i),
			Summary:   "Summary text",
			Category:  cats[i%len(cats)],
			Source:    "Wire",
			Timestamp: testNow.Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

type fixture struct {
	app       *App
	store     *store.Store
	refresher *refresh.Coordinator
	fetcher   *stubFetcher
	clipboard *stubClipboard
	opener    *stubOpener
}

func newFixture(t *testing.T, n int, opts RunOpts) *fixture {
	t.Helper()
	logger := log.New(io.Discard)
	s := store.New(testArticles(n))
	f := &stubFetcher{result: feed.FetchResult{
		Articles: []news.Article{{ID: "live-1", Title: "Fresh intel", Category: news.AI, Timestamp: testNow}},
	}}
	r := refresh.New(s, f, logger)
	clip := &stubClipboard{}
	op := &stubOpener{}

	opts.Cfg = &config.Config{PageSize: 6}
	opts.Store = s
	opts.Refresher = r
	opts.Logger = logger
	opts.Clipboard = clip
	opts.Opener = op
	opts.Now = func() time.Time { return testNow }
	if opts.Launches == nil {
		opts.Launches = news.SeedLaunches()
	}

	app := NewApp(opts)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &fixture{app: app, store: s, refresher: r, fetcher: f, clipboard: clip, opener: op}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and any batched commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// press sends a key and feeds every resulting message back into the app.
func press(a *App, k string) {
	_, cmd := a.Update(key(k))
	for _, msg := range collect(cmd) {
		a.Update(msg)
	}
}

func TestSplashTimerStartsAutoRefresh(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{})
	a := fx.app
	if a.mode != modeSplash {
		t.Fatalf("mode = %v, want splash", a.mode)
	}

	_, cmd := a.Update(splashDoneMsg{})
	if a.mode != modeBrowse {
		t.Fatalf("mode = %v, want browse", a.mode)
	}
	if !a.refreshing {
		t.Error("leaving the splash should start the automatic refresh")
	}

	var done bool
	for _, msg := range collect(cmd) {
		if _, ok := msg.(refreshDoneMsg); ok {
			done = true
		}
		a.Update(msg)
	}
	if !done {
		t.Fatal("expected a refreshDoneMsg")
	}
	if a.refreshing {
		t.Error("refreshing should clear once the fetch settles")
	}
	if fx.store.Articles()[0].ID != "live-1" {
		t.Error("fetched article should lead the feed")
	}
	if !strings.Contains(a.notice, "1 new") {
		t.Errorf("notice = %q", a.notice)
	}

	// A late timer after a key already dismissed the splash is ignored.
	if _, cmd := a.Update(splashDoneMsg{}); cmd != nil {
		t.Error("splash timer after dismissal should be a no-op")
	}
}

func TestKeyDismissesSplash(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{})
	_, cmd := fx.app.Update(key("x"))
	if fx.app.mode != modeBrowse {
		t.Fatalf("mode = %v, want browse", fx.app.mode)
	}
	if cmd == nil {
		t.Error("dismissing the splash should refresh")
	}
}

func TestAutoRefreshOnlyOnce(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	a := fx.app
	for _, msg := range collect(a.Init()) {
		a.Update(msg)
	}
	before := fx.store.Len()

	// A second automatic refresh is refused and leaves the feed alone.
	for _, msg := range collect(a.autoRefresh()) {
		a.Update(msg)
	}
	if fx.store.Len() != before {
		t.Errorf("store grew from %d to %d", before, fx.store.Len())
	}
	if a.refreshing {
		t.Error("refused refresh should not leave the spinner running")
	}
}

func TestCategorySelectResetsPaging(t *testing.T) {
	fx := newFixture(t, 24, RunOpts{SkipSplash: true})
	a := fx.app

	press(a, "m")
	if got := a.st.VisibleCount(); got != 12 {
		t.Fatalf("after load more VisibleCount = %d, want 12", got)
	}
	press(a, "down")
	press(a, "down")

	press(a, "right")
	if a.st.Category() != news.AI {
		t.Errorf("category = %s, want AI", a.st.Category())
	}
	if got := a.st.VisibleCount(); got != 6 {
		t.Errorf("category change should reset paging, VisibleCount = %d", got)
	}
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}

	press(a, "left")
	press(a, "left")
	if a.st.Category() != news.Other {
		t.Errorf("left from All should wrap to Other, got %s", a.st.Category())
	}
}

func TestLoadMoreStopsAtEnd(t *testing.T) {
	fx := newFixture(t, 8, RunOpts{SkipSplash: true})
	a := fx.app

	press(a, "m")
	vis, more := a.visible()
	if len(vis) != 8 || more {
		t.Fatalf("visible = %d more = %v", len(vis), more)
	}
	press(a, "m")
	if got := a.st.VisibleCount(); got != 12 {
		t.Errorf("load more past the end should be ignored, VisibleCount = %d", got)
	}
}

func TestPreselectedCategory(t *testing.T) {
	fx := newFixture(t, 12, RunOpts{SkipSplash: true, Category: news.Gadgets})
	vis, _ := fx.app.visible()
	for _, art := range vis {
		if art.Category != news.Gadgets {
			t.Errorf("article %s has category %s", art.ID, art.Category)
		}
	}
}

func TestRefreshKeyDroppedWhileInFlight(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	fx.fetcher.release = make(chan struct{})

	done, err := fx.refresher.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	_, cmd := fx.app.Update(key("r"))
	if cmd != nil {
		t.Error("refresh key should be dropped while a fetch is in flight")
	}
	if !strings.Contains(fx.app.notice, "already") {
		t.Errorf("notice = %q", fx.app.notice)
	}

	close(fx.fetcher.release)
	<-done

	press(fx.app, "r")
	if fx.app.refreshing {
		t.Error("manual refresh should settle")
	}
}

func TestRefreshFailureShowsError(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	fx.fetcher.result = feed.FetchResult{Errors: []error{errors.New("ai: quota exceeded")}}

	press(fx.app, "r")
	if fx.app.err == nil || !strings.Contains(fx.app.err.Error(), "quota") {
		t.Errorf("err = %v", fx.app.err)
	}
	if fx.store.Len() != 3 {
		t.Error("failed refresh should leave the feed unchanged")
	}
}

func TestDetailOpenAndClose(t *testing.T) {
	fx := newFixture(t, 6, RunOpts{SkipSplash: true})
	a := fx.app

	press(a, "down")
	press(a, "enter")
	if a.mode != modeDetail {
		t.Fatalf("mode = %v, want detail", a.mode)
	}
	sel, ok := a.st.Selected()
	if !ok || sel.ID != "a1" {
		t.Fatalf("selected = %+v, %v", sel, ok)
	}
	if !strings.Contains(a.View(), "Headline 1") {
		t.Error("detail view should show the article title")
	}

	press(a, "i")
	if !strings.Contains(a.View(), "recency") {
		t.Error("signal breakdown should be shown after toggling")
	}

	press(a, "o")
	if len(fx.opener.urls) != 1 || fx.opener.urls[0] != sel.Link() {
		t.Errorf("opened %v", fx.opener.urls)
	}

	press(a, "esc")
	if a.mode != modeBrowse {
		t.Errorf("mode = %v, want browse", a.mode)
	}
	if _, ok := a.st.Selected(); ok {
		t.Error("closing the detail should clear the selection")
	}
}

func TestShareFallsBackToClipboard(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	press(fx.app, "c")

	art := fx.store.Articles()[0]
	if fx.clipboard.text != capability.ShareText(art) {
		t.Errorf("clipboard = %q", fx.clipboard.text)
	}
	if fx.app.notice != "Copied to clipboard" {
		t.Errorf("notice = %q", fx.app.notice)
	}
}

func TestSpeakToggles(t *testing.T) {
	n := capability.NewNarrator(&stubSpeaker{})
	fx := newFixture(t, 3, RunOpts{SkipSplash: true, Narrator: n})

	press(fx.app, "p")
	if !n.Speaking("a0") {
		t.Fatal("first press should start reading")
	}
	if !strings.HasPrefix(fx.app.notice, "Reading") {
		t.Errorf("notice = %q", fx.app.notice)
	}

	press(fx.app, "p")
	if n.Speaking("a0") {
		t.Error("second press should stop reading")
	}
}

func TestSpeakUnavailable(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	press(fx.app, "p")
	if !strings.Contains(fx.app.notice, "not available") {
		t.Errorf("notice = %q", fx.app.notice)
	}
}

func TestSubscribeFlow(t *testing.T) {
	d := &stubDispatcher{}
	flow := subscribe.New(nil, d, log.New(io.Discard))
	fx := newFixture(t, 5, RunOpts{SkipSplash: true, Flow: flow})
	a := fx.app

	press(a, "s")
	if a.mode != modeSubscribe {
		t.Fatalf("mode = %v, want subscribe", a.mode)
	}

	a.emailInput.SetValue("not-an-email")
	press(a, "enter")
	if a.inputErr == "" || a.subStatus.Phase != subscribe.Idle {
		t.Fatalf("invalid address should stay idle with an error, got %+v %q", a.subStatus, a.inputErr)
	}

	a.emailInput.SetValue("operative@grid7.net")
	press(a, "enter")
	if a.subStatus.Phase != subscribe.Sent {
		t.Fatalf("phase = %v, want sent", a.subStatus.Phase)
	}
	if len(d.sent) != 1 || d.sent[0] != "operative@grid7.net" {
		t.Errorf("dispatched to %v", d.sent)
	}
	if !strings.Contains(a.View(), "operative@grid7.net") {
		t.Error("sent view should name the address")
	}

	press(a, "enter")
	if a.mode != modeBrowse || a.subStatus.Phase != subscribe.Idle {
		t.Errorf("after dismissal mode = %v phase = %v", a.mode, a.subStatus.Phase)
	}
}

func TestSubscribeRetryAfterFailure(t *testing.T) {
	d := &stubDispatcher{err: errors.New("rejected")}
	flow := subscribe.New(nil, d, log.New(io.Discard))
	fx := newFixture(t, 5, RunOpts{SkipSplash: true, Flow: flow})
	a := fx.app

	press(a, "s")
	a.emailInput.SetValue("operative@grid7.net")
	press(a, "enter")
	if a.subStatus.Phase != subscribe.Failed {
		t.Fatalf("phase = %v, want error", a.subStatus.Phase)
	}
	if !strings.Contains(a.View(), subscribe.FailureMessage) {
		t.Error("failure view should show the failure message")
	}

	press(a, "r")
	if a.subStatus.Phase != subscribe.Idle || a.mode != modeSubscribe {
		t.Errorf("retry should return to the form, phase = %v mode = %v", a.subStatus.Phase, a.mode)
	}
}

func TestSubscribeWithoutFlow(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	press(fx.app, "s")
	if fx.app.mode != modeBrowse {
		t.Error("subscribe should not open without a flow")
	}
}

func TestLaunchesTab(t *testing.T) {
	fx := newFixture(t, 3, RunOpts{SkipSplash: true})
	a := fx.app

	press(a, "2")
	if a.st.Tab() != state.TabLaunches {
		t.Fatalf("tab = %v", a.st.Tab())
	}
	upcoming := a.upcoming()
	if len(upcoming) == 0 {
		t.Fatal("expected upcoming launches")
	}
	view := a.View()
	if !strings.Contains(view, upcoming[0].ProductName) {
		t.Error("launch view should list the next launch")
	}
	for _, e := range a.launches {
		if e.Date.Before(testNow.Truncate(24*time.Hour)) && strings.Contains(view, e.ProductName) {
			t.Errorf("past launch %s rendered", e.ProductName)
		}
	}

	press(a, "tab")
	if a.st.Tab() != state.TabNews {
		t.Error("tab should switch back to news")
	}
}

func TestFeedView(t *testing.T) {
	fx := newFixture(t, 8, RunOpts{SkipSplash: true})
	view := fx.app.View()
	for _, want := range []string{"GRID7", "Headline 0", "load more"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
