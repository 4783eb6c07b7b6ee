package signal

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/matheuskafuri/grid7/internal/config"
)

// SourceWeights maps source names to their weight (0.0–1.0).
type SourceWeights map[string]float64

// Input holds the data needed to score a feed item.
type Input struct {
	Title     string
	Summary   string
	Source    string
	Published time.Time
}

// Weights builds SourceWeights from configured sources. Sources without a
// weight are left out and score at the default.
func Weights(sources []config.Source) SourceWeights {
	w := SourceWeights{}
	for _, s := range sources {
		if s.Weight > 0 {
			w[s.Name] = math.Min(s.Weight, 1)
		}
	}
	return w
}

// Breakdown shows how each component contributed to the final score.
type Breakdown struct {
	Recency        float64
	SourceWeight   float64
	Depth          float64
	KeywordDensity float64
	Final          float64
}

const (
	weightRecency  = 0.30
	weightSource   = 0.25
	weightDepth    = 0.25
	weightKeywords = 0.20
)

// Score computes a signal score (0.0–10.0) for a feed item.
func Score(input Input, weights SourceWeights) float64 {
	return ScoreWithBreakdown(input, weights).Final
}

// ScoreWithBreakdown computes a signal score with component details.
func ScoreWithBreakdown(input Input, weights SourceWeights) Breakdown {
	b := Breakdown{
		Recency:        recencyScore(input.Published),
		SourceWeight:   sourceScore(input.Source, weights),
		Depth:          depthScore(input.Summary),
		KeywordDensity: keywordScore(input.Title, input.Summary),
	}
	raw := b.Recency*weightRecency +
		b.SourceWeight*weightSource +
		b.Depth*weightDepth +
		b.KeywordDensity*weightKeywords
	b.Final = math.Round(raw*100) / 10 // scale to 0.0–10.0
	return b
}

// recencyScore returns exponential decay: 1.0 at publish, ~0.5 at 24h, ~0.1 at 72h.
func recencyScore(published time.Time) float64 {
	if published.IsZero() {
		return 0.0
	}
	hours := time.Since(published).Hours()
	if hours < 0 {
		hours = 0
	}
	// decay constant: ln(0.5)/24 ≈ -0.02888
	return math.Exp(-0.02888 * hours)
}

// sourceScore looks up the source weight, defaulting to 0.5.
func sourceScore(source string, weights SourceWeights) float64 {
	if weights == nil {
		return 0.5
	}
	if w, ok := weights[source]; ok {
		return w
	}
	return 0.5
}

// depthScore scores based on summary word count. Feed summaries are
// short, so the bands sit lower than for long-form posts.
func depthScore(summary string) float64 {
	words := len(strings.Fields(summary))
	switch {
	case words >= 60:
		return 1.0
	case words >= 25:
		return 0.6
	default:
		return 0.2
	}
}

// newsKeywords are high-signal terms for consumer tech coverage.
var newsKeywords = map[string]bool{
	"launch": true, "launches": true, "unveils": true, "announces": true,
	"leak": true, "leaks": true, "exclusive": true, "breaking": true,
	"release": true, "rollout": true, "update": true, "beta": true,
	"ai": true, "llm": true, "gpt": true, "gemini": true, "model": true,
	"smartphone": true, "chip": true, "processor": true, "gpu": true,
	"windows": true, "android": true, "ios": true, "macos": true,
	"vulnerability": true, "exploit": true, "breach": true, "ransomware": true,
	"patch": true, "zero-day": true, "malware": true,
	"price": true, "benchmark": true, "specs": true, "foldable": true,
	"battery": true, "camera": true, "display": true,
}

// keywordScore returns the density of news keywords (0.0–1.0).
func keywordScore(title, description string) float64 {
	text := strings.ToLower(title + " " + description)
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
		})
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return 0.0
	}

	hits := 0
	for _, w := range words {
		if newsKeywords[w] {
			hits++
		}
	}
	density := float64(hits) / float64(len(words))
	// Normalize: 10%+ keyword density = 1.0
	score := density * 10
	if score > 1.0 {
		score = 1.0
	}
	return score
}
