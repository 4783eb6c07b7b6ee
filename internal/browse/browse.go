// Package browse narrows the article list to what a reader sees: the
// active category, then the current page window.
package browse

import "github.com/matheuskafuri/grid7/internal/news"

// DefaultPageSize is the number of cards shown per page.
const DefaultPageSize = 6

// Filter returns the articles in category c, preserving order. news.All
// returns articles as-is.
func Filter(articles []news.Article, c news.Category) []news.Article {
	if c == news.All {
		return articles
	}
	var out []news.Article
	for _, a := range articles {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

// Window returns the first visibleCount articles and whether more remain.
func Window(filtered []news.Article, visibleCount int) ([]news.Article, bool) {
	if visibleCount < 0 {
		visibleCount = 0
	}
	n := min(visibleCount, len(filtered))
	return filtered[:n], visibleCount < len(filtered)
}

// Pager tracks how many cards are visible.
type Pager struct {
	size    int
	visible int
}

// NewPager returns a pager showing one page of the given size. A size
// below 1 falls back to DefaultPageSize.
func NewPager(size int) Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return Pager{size: size, visible: size}
}

// Visible returns the current visible count.
func (p Pager) Visible() int { return p.visible }

// PageSize returns the page increment.
func (p Pager) PageSize() int { return p.size }

// LoadMore extends the window by one page.
func (p *Pager) LoadMore() { p.visible += p.size }

// Reset returns the window to the first page.
func (p *Pager) Reset() { p.visible = p.size }
