package analysis

import (
	"context"
	"strings"
)

const (
	summaryMaxSentences = 3
	summaryMaxKeyPoints = 5
	summaryMaxWords     = 150
)

// Summarizer condenses the document into a short summary with key points.
type Summarizer struct {
	maxInput int
}

func NewSummarizer(maxInput int) *Summarizer {
	return &Summarizer{maxInput: maxInput}
}

func (s *Summarizer) Name() string { return TaskSummary }

func (s *Summarizer) Analyze(ctx context.Context, text string) (Result, error) {
	text = strings.TrimSpace(clampRunes(text, s.maxInput))
	if text == "" {
		return SummaryResult{KeyPoints: []string{}}, nil
	}

	sentences := splitSentences(text)

	n := summaryMaxSentences
	if len(sentences) < n {
		n = len(sentences)
	}
	summary := strings.Join(sentences[:n], " ")
	if words := strings.Fields(summary); len(words) > summaryMaxWords {
		summary = strings.Join(words[:summaryMaxWords], " ") + "..."
	}

	k := summaryMaxKeyPoints
	if len(sentences) < k {
		k = len(sentences)
	}
	keyPoints := make([]string, k)
	copy(keyPoints, sentences[:k])

	confidence := 0.5 + float64(len(summary))/float64(len(text))
	if confidence > 0.95 {
		confidence = 0.95
	}

	return SummaryResult{
		Text:       summary,
		KeyPoints:  keyPoints,
		Confidence: round2(confidence),
	}, nil
}
