// Package analytics provides the word-level text statistics the uniqueness
// scorer and the importer share: stopword filtering, word frequencies, and
// vocabulary ratios.
package analytics

import (
	"sort"
	"strings"
)

// stopwords are ignored in frequency and vocabulary analysis. The tail of
// the list covers listing-copy noise words that would otherwise dominate
// every rendered page.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"around": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "even": {}, "ever": {},
	"every": {}, "everyone": {}, "everything": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {},

	"just": {},

	"like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "might": {},
	"more": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},

	"per": {}, "perhaps": {},

	"rather": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"something": {}, "still": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {}, "toward": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},

	// Listing-copy noise
	"home": {}, "homes": {}, "house": {}, "houses": {}, "property": {},
	"properties": {}, "listing": {}, "listings": {}, "real": {}, "estate": {},
	"buyer": {}, "buyers": {}, "seller": {}, "sellers": {}, "market": {},
	"price": {}, "prices": {}, "area": {}, "city": {}, "local": {},
	"contact": {}, "call": {}, "today": {},
}

// IsStopword reports whether a word is filtered from analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// normalize lowercases a token and strips everything but letters and digits
// from its edges.
func normalize(word string) string {
	return strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return ('a' > r || r > 'z') && ('0' > r || r > '9')
	})
}

// WordFrequency counts non-stopword occurrences in text.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(text) {
		word = normalize(word)
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// WordCount counts whitespace-delimited words, stopwords included.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// UniqueWordRatio is distinct words over total words, both stopword-filtered,
// in [0,1]. Higher means richer vocabulary. Empty text scores 0.
func UniqueWordRatio(text string) float64 {
	total := 0
	distinct := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		word = normalize(word)
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		total++
		distinct[word] = struct{}{}
	}
	if total == 0 {
		return 0
	}
	return float64(len(distinct)) / float64(total)
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopwords, most frequent first.
func TopNWords(text string, n int) []string {
	frequencies := WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	if len(counts) < n {
		n = len(counts)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].Word
	}
	return top
}
