package analysis

import (
	"context"
)

// Task names. These are also the keys of a job's results map and of the
// results object on the wire.
const (
	TaskSummary   = "summary"
	TaskEntities  = "entities"
	TaskSentiment = "sentiment"
)

// Result is the structured output of a single analyzer. The implementations
// form a closed set so aggregation and wire serialization can switch over
// them exhaustively.
type Result interface {
	isResult()
}

// SummaryResult holds a condensed version of the document.
type SummaryResult struct {
	Text       string
	KeyPoints  []string
	Confidence float64
}

func (SummaryResult) isResult() {}

// Entity is a single named thing found in the document.
type Entity struct {
	Name     string
	Mentions int
	Context  string
	Role     string
	Type     string
}

// EntitiesResult groups extracted entities by kind.
type EntitiesResult struct {
	People        []Entity
	Organizations []Entity
	Dates         []Entity
	Locations     []Entity
}

func (EntitiesResult) isResult() {}

// SentimentResult describes the overall tone of the document.
type SentimentResult struct {
	Tone       string
	Confidence float64
	Formality  string
	KeyPhrases []string
}

func (SentimentResult) isResult() {}

// Analyzer is one analysis capability: given document text, produce a
// structured result or fail. Implementations own any internal bound on their
// work; callers impose none.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, text string) (Result, error)
}

// Default returns the standard analyzer set: summary, entities, sentiment.
// maxInputChars clamps how much of the document each analyzer reads.
func Default(maxInputChars int) []Analyzer {
	return []Analyzer{
		NewSummarizer(maxInputChars),
		NewEntityExtractor(maxInputChars),
		NewSentimentAnalyzer(maxInputChars),
	}
}
