package store

import (
	"sync"

	"github.com/matheuskafuri/grid7/internal/news"
)

// Merge returns incoming followed by existing, keeping only the first
// article seen for each title. Neither input is modified.
func Merge(existing, incoming []news.Article) []news.Article {
	if len(incoming) == 0 {
		return existing
	}

	out := make([]news.Article, 0, len(incoming)+len(existing))
	seen := make(map[string]bool, len(incoming)+len(existing))
	for _, batch := range [][]news.Article{incoming, existing} {
		for _, a := range batch {
			if seen[a.Title] {
				continue
			}
			seen[a.Title] = true
			out = append(out, a)
		}
	}
	return out
}

// Store holds the current article list. Writers swap in a new slice; a
// snapshot returned by Articles is never mutated afterwards.
type Store struct {
	mu       sync.RWMutex
	articles []news.Article
}

// New creates a store seeded with a copy of seed.
func New(seed []news.Article) *Store {
	articles := make([]news.Article, len(seed))
	copy(articles, seed)
	return &Store{articles: articles}
}

// Articles returns the current snapshot.
func (s *Store) Articles() []news.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles
}

// Len returns the number of stored articles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Merge merge-inserts incoming and returns how many articles the store
// grew by.
func (s *Store) Merge(incoming []news.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.articles)
	s.articles = Merge(s.articles, incoming)
	return len(s.articles) - before
}
