package classify

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/matheuskafuri/grid7/internal/news"
)

var categoryKeywords = map[news.Category][]string{
	news.AI: {
		"ai", "artificial intelligence", "machine learning", "deep learning", "neural",
		"llm", "gpt", "gemini", "chatgpt", "openai", "anthropic", "copilot",
		"model", "chatbot", "agent", "inference", "transformer", "nvidia",
	},
	news.OS: {
		"windows", "macos", "ios", "ipados", "android", "linux", "kernel",
		"operating system", "update", "patch", "beta", "release", "app",
		"whatsapp", "instagram", "browser", "chrome", "security", "vulnerability",
		"exploit", "malware", "ransomware", "zero-day",
	},
	news.Gadgets: {
		"smartphone", "phone", "iphone", "pixel", "galaxy", "oneplus", "realme",
		"samsung", "xiaomi", "tablet", "laptop", "wearable", "watch", "earbuds",
		"headset", "vision pro", "console", "switch", "playstation", "xbox",
		"chip", "processor", "gpu", "camera", "battery", "foldable",
	},
}

// Aliases maps short CLI flags to categories.
var Aliases = map[string]news.Category{
	"all":      news.All,
	"ai":       news.AI,
	"os":       news.OS,
	"software": news.OS,
	"gadgets":  news.Gadgets,
	"hardware": news.Gadgets,
	"other":    news.Other,
}

// ResolveAlias maps a CLI alias or category label to a Category.
func ResolveAlias(alias string) (news.Category, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if cat, ok := Aliases[alias]; ok {
		return cat, nil
	}
	valid := make([]string, 0, len(Aliases))
	for k := range Aliases {
		valid = append(valid, k)
	}
	sort.Strings(valid)
	return "", fmt.Errorf("unknown category %q (valid: %s)", alias, strings.Join(valid, ", "))
}

// Classify picks a stored category for an item from its title and summary.
// Title keywords are weighted 2x. Returns Other when nothing matches.
func Classify(title, description string) news.Category {
	titleTokens := tokenize(title)
	descTokens := tokenize(description)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	bestCat := news.Other
	bestScore := 0

	// StoredCategories order breaks ties: AI, OS, Gadgets.
	for _, cat := range news.StoredCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if !strings.Contains(kw, " ") {
				for _, t := range titleTokens {
					if t == kw {
						score += 2
					}
				}
				for _, t := range descTokens {
					if t == kw {
						score++
					}
				}
			} else {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(descLower, kw) {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}
	return bestCat
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
