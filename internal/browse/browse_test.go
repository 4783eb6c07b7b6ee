package browse

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/matheuskafuri/grid7/internal/news"
)

func sample() []news.Article {
	cats := []news.Category{news.AI, news.OS, news.AI, news.Gadgets, news.Other, news.AI, news.OS}
	out := make([]news.Article, len(cats))
	for i, c := range cats {
		out[i] = news.Article{ID: fmt.Sprintf("a%d", i), Title: fmt.Sprintf("T%d", i), Category: c}
	}
	return out
}

func TestFilterAllIsIdentity(t *testing.T) {
	articles := sample()
	got := Filter(articles, news.All)
	if !reflect.DeepEqual(got, articles) {
		t.Errorf("Filter(All) changed the collection")
	}
	if len(Filter(nil, news.All)) != 0 {
		t.Error("Filter(nil, All) should be empty")
	}
}

func TestFilterPartition(t *testing.T) {
	articles := sample()
	for _, c := range news.StoredCategories() {
		got := Filter(articles, c)
		for _, a := range got {
			if a.Category != c {
				t.Errorf("Filter(%s) returned %s article %s", c, a.Category, a.ID)
			}
		}
		// subsequence check: indexes into the original must increase
		last := -1
		for _, a := range got {
			idx := -1
			for i, o := range articles {
				if o.ID == a.ID {
					idx = i
				}
			}
			if idx <= last {
				t.Errorf("Filter(%s) broke original order at %s", c, a.ID)
			}
			last = idx
		}
	}
	if got := len(Filter(articles, news.AI)); got != 3 {
		t.Errorf("expected 3 AI articles, got %d", got)
	}
}

func TestWindow(t *testing.T) {
	articles := sample() // 7 items
	tests := []struct {
		n        int
		wantLen  int
		wantMore bool
	}{
		{0, 0, true},
		{1, 1, true},
		{6, 6, true},
		{7, 7, false},
		{12, 7, false},
		{-3, 0, true},
	}
	for _, tt := range tests {
		visible, more := Window(articles, tt.n)
		if len(visible) != tt.wantLen {
			t.Errorf("Window(7, %d) len = %d, want %d", tt.n, len(visible), tt.wantLen)
		}
		if more != tt.wantMore {
			t.Errorf("Window(7, %d) hasMore = %v, want %v", tt.n, more, tt.wantMore)
		}
	}

	visible, more := Window(nil, 6)
	if len(visible) != 0 || more {
		t.Errorf("Window(nil, 6) = %d items, more=%v", len(visible), more)
	}
}

func TestWindowKeepsOrder(t *testing.T) {
	articles := sample()
	visible, _ := Window(articles, 3)
	if !reflect.DeepEqual(visible, articles[:3]) {
		t.Error("Window should return a prefix of its input")
	}
}

func TestPager(t *testing.T) {
	p := NewPager(0)
	if p.Visible() != DefaultPageSize {
		t.Fatalf("expected default %d, got %d", DefaultPageSize, p.Visible())
	}
	p.LoadMore()
	p.LoadMore()
	if p.Visible() != 18 {
		t.Errorf("expected 18 after two loads, got %d", p.Visible())
	}
	p.Reset()
	if p.Visible() != 6 {
		t.Errorf("expected reset to 6, got %d", p.Visible())
	}

	p = NewPager(4)
	p.LoadMore()
	if p.Visible() != 8 || p.PageSize() != 4 {
		t.Errorf("custom page size: visible=%d size=%d", p.Visible(), p.PageSize())
	}
}
