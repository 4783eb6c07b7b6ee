package news

import (
	"strings"
	"time"
)

// Category is an article classification. All is a filter sentinel and is
// never stored on an Article.
type Category string

const (
	All     Category = "All"
	AI      Category = "AI"
	OS      Category = "OS"
	Gadgets Category = "Gadgets"
	Other   Category = "Other"
)

// Categories returns every category in display order, All first.
func Categories() []Category {
	return []Category{All, AI, OS, Gadgets, Other}
}

// StoredCategories returns the categories an Article may carry.
func StoredCategories() []Category {
	return []Category{AI, OS, Gadgets, Other}
}

// ParseCategory maps a supplier label to a stored category. Labels outside
// the stored set, All included, coerce to Other.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	for _, c := range StoredCategories() {
		if strings.EqualFold(string(c), label) {
			return c
		}
	}
	return Other
}

// Article is a single feed item.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Source    string    `json:"source"`
	URL       string    `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Score     float64   `json:"score,omitempty"` // 0 means unscored
}

// Link returns the article URL, or a web search for it when none is known.
func (a Article) Link() string {
	if a.URL != "" {
		return a.URL
	}
	return SearchURL(a.Title, a.Source)
}
