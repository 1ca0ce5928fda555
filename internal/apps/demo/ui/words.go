package ui

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

var (
	defaultWords = []string{
		"apple", "apricot", "avocado", "banana", "blackberry", "blueberry",
		"cantaloupe", "cherry", "coconut", "cranberry", "date", "dragonfruit",
		"fig", "grape", "grapefruit", "guava", "kiwi", "lemon", "lime", "lychee",
		"mango", "melon", "nectarine", "orange", "papaya", "peach", "pear",
		"pineapple", "plum", "pomegranate", "raspberry", "strawberry", "tangerine",
		"watermelon",
	}
	defaultTags = []string{"fresh", "dried", "frozen", "canned"}
)

const defaultLimit = 8

// filterWords returns the words matching query, best matches first.
func filterWords(words []string, query string) []string {
	if query == "" {
		return words
	}
	matches := fuzzy.Find(query, words)
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.Str
	}
	return res
}

// suggest returns the word closest to query by edit distance.
func suggest(words []string, query string) string {
	query = strings.ToLower(query)
	best, bestDist := "", -1
	for _, w := range words {
		d := levenshtein.ComputeDistance(query, strings.ToLower(w))
		if bestDist < 0 || d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	return n
}

type tagCycle struct {
	tags []string
	next int
}

func (c *tagCycle) Next() string {
	if len(c.tags) == 0 {
		return ""
	}
	tag := c.tags[c.next%len(c.tags)]
	c.next++
	return tag
}
