package analysis

import (
	"context"
	"regexp"
	"strings"
)

const sentimentMaxPhrases = 3

var tokenPattern = regexp.MustCompile(`[a-zA-Z']+`)

var positiveWords = map[string]bool{
	"growth":    true,
	"improved":  true,
	"record":    true,
	"strong":    true,
	"positive":  true,
	"bullish":   true,
	"expansion": true,
	"profit":    true,
	"increase":  true,
	"exceeded":  true,
	"resilient": true,
}

var negativeWords = map[string]bool{
	"decline":    true,
	"drop":       true,
	"loss":       true,
	"negative":   true,
	"weak":       true,
	"missed":     true,
	"risk":       true,
	"volatility": true,
	"uncertain":  true,
	"downturn":   true,
	"slowdown":   true,
}

// SentimentAnalyzer scores tone and formality with a word lexicon.
type SentimentAnalyzer struct {
	maxInput int
}

func NewSentimentAnalyzer(maxInput int) *SentimentAnalyzer {
	return &SentimentAnalyzer{maxInput: maxInput}
}

func (s *SentimentAnalyzer) Name() string { return TaskSentiment }

func (s *SentimentAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	text = clampRunes(text, s.maxInput)
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	positiveHits, negativeHits := 0, 0
	informal := false
	for _, token := range tokens {
		if positiveWords[token] {
			positiveHits++
		}
		if negativeWords[token] {
			negativeHits++
		}
		if strings.Contains(token, "'") {
			informal = true
		}
	}

	tone := "neutral"
	switch {
	case positiveHits > negativeHits:
		tone = "positive"
	case negativeHits > positiveHits:
		tone = "negative"
	}

	totalTokens := len(tokens)
	if totalTokens == 0 {
		totalTokens = 1
	}
	confidence := 0.5 + float64(positiveHits+negativeHits)/float64(totalTokens)*10
	if confidence > 0.95 {
		confidence = 0.95
	}

	formality := "formal"
	if informal {
		formality = "informal"
	}

	return SentimentResult{
		Tone:       tone,
		Confidence: round2(confidence),
		Formality:  formality,
		KeyPhrases: supportingPhrases(text, tone),
	}, nil
}

// supportingPhrases picks up to three sentences backing the detected tone.
// A neutral tone accepts any sentence.
func supportingPhrases(text, tone string) []string {
	phrases := make([]string, 0, sentimentMaxPhrases)
	for _, sentence := range splitSentences(text) {
		lowered := strings.ToLower(sentence)
		match := tone == "neutral"
		if tone == "positive" {
			for word := range positiveWords {
				if strings.Contains(lowered, word) {
					match = true
					break
				}
			}
		}
		if tone == "negative" {
			for word := range negativeWords {
				if strings.Contains(lowered, word) {
					match = true
					break
				}
			}
		}
		if match {
			phrases = append(phrases, sentence)
		}
		if len(phrases) >= sentimentMaxPhrases {
			break
		}
	}
	return phrases
}
