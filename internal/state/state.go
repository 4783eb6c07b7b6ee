package state

import (
	"github.com/matheuskafuri/grid7/internal/browse"
	"github.com/matheuskafuri/grid7/internal/news"
)

type Tab int

const (
	TabNews Tab = iota
	TabLaunches
)

func (t Tab) String() string {
	if t == TabLaunches {
		return "launches"
	}
	return "news"
}

// State is the reader's view of the feed: which tab and category are
// active, how far they have paged, and which article is open.
type State struct {
	tab      Tab
	category news.Category
	pager    browse.Pager
	selected *news.Article
}

func New(pageSize int) State {
	return State{tab: TabNews, category: news.All, pager: browse.NewPager(pageSize)}
}

func (s State) Tab() Tab                { return s.tab }
func (s State) Category() news.Category { return s.category }
func (s State) VisibleCount() int       { return s.pager.Visible() }

// SelectCategory switches the filter and always returns to the first page,
// even when c is already active.
func (s *State) SelectCategory(c news.Category) {
	s.category = c
	s.pager.Reset()
}

func (s *State) LoadMore() {
	s.pager.LoadMore()
}

// Visible applies the category filter and page window to articles.
func (s State) Visible(articles []news.Article) ([]news.Article, bool) {
	return browse.Window(browse.Filter(articles, s.category), s.pager.Visible())
}

func (s *State) Select(a news.Article) {
	s.selected = &a
}

func (s *State) ClearSelection() {
	s.selected = nil
}

// Selected returns the open article, if any.
func (s State) Selected() (news.Article, bool) {
	if s.selected == nil {
		return news.Article{}, false
	}
	return *s.selected, true
}

func (s *State) SwitchTab(t Tab) {
	s.tab = t
}
