package analysis

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

const entityTopN = 5

var (
	peoplePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	orgPattern    = regexp.MustCompile(`\b[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*\s+(?:Inc|Corp|LLC|Ltd|Company|Bank|Group)\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b20\d{2}\b`),
		regexp.MustCompile(`\b19\d{2}\b`),
		regexp.MustCompile(`\bQ[1-4]-?20\d{2}\b`),
		regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},\s+20\d{2}\b`),
	}

	locationHints = []string{
		"New York",
		"London",
		"Mumbai",
		"Delhi",
		"Singapore",
		"San Francisco",
		"Tokyo",
	}
)

// EntityExtractor locates people, organizations, dates, and locations with
// pattern heuristics.
type EntityExtractor struct {
	maxInput int
}

func NewEntityExtractor(maxInput int) *EntityExtractor {
	return &EntityExtractor{maxInput: maxInput}
}

func (e *EntityExtractor) Name() string { return TaskEntities }

func (e *EntityExtractor) Analyze(ctx context.Context, text string) (Result, error) {
	text = clampRunes(text, e.maxInput)
	sentences := splitSentences(text)

	return EntitiesResult{
		People:        buildEntities(countMatches(peoplePattern.FindAllString(text, -1)), sentences, ""),
		Organizations: buildEntities(countMatches(orgPattern.FindAllString(text, -1)), sentences, "company"),
		Dates:         buildEntities(countMatches(collectDates(text)), sentences, "date"),
		Locations:     buildEntities(countMatches(collectLocations(text)), sentences, "location"),
	}, nil
}

func collectDates(text string) []string {
	var matches []string
	for _, p := range datePatterns {
		matches = append(matches, p.FindAllString(text, -1)...)
	}
	return matches
}

func collectLocations(text string) []string {
	var matches []string
	for _, loc := range locationHints {
		for i := 0; i < strings.Count(text, loc); i++ {
			matches = append(matches, loc)
		}
	}
	return matches
}

func countMatches(matches []string) map[string]int {
	counts := make(map[string]int, len(matches))
	for _, m := range matches {
		counts[m]++
	}
	return counts
}

// buildEntities keeps the most-mentioned names and attaches the first
// sentence containing each one as context.
func buildEntities(counts map[string]int, sentences []string, entityType string) []Entity {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > entityTopN {
		names = names[:entityTopN]
	}

	entities := make([]Entity, 0, len(names))
	for _, name := range names {
		context := ""
		for _, sentence := range sentences {
			if strings.Contains(sentence, name) {
				context = sentence
				break
			}
		}
		entities = append(entities, Entity{
			Name:     name,
			Mentions: counts[name],
			Context:  context,
			Type:     entityType,
		})
	}
	return entities
}
