package analysis

import (
	"context"
	"testing"
)

func TestSentimentTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		tone string
	}{
		{
			name: "positive",
			text: "Record growth and strong profit. The expansion exceeded every target.",
			tone: "positive",
		},
		{
			name: "negative",
			text: "A sharp decline and heavy loss. The downturn and volatility continue.",
			tone: "negative",
		},
		{
			name: "neutral",
			text: "The meeting is scheduled for Tuesday. Attendance is expected.",
			tone: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSentimentAnalyzer(6000)
			res, err := s.Analyze(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sentiment, ok := res.(SentimentResult)
			if !ok {
				t.Fatalf("expected SentimentResult got %T", res)
			}
			if sentiment.Tone != tt.tone {
				t.Fatalf("expected tone %q got %q", tt.tone, sentiment.Tone)
			}
			if sentiment.Confidence < 0.5 || sentiment.Confidence > 0.95 {
				t.Fatalf("confidence out of range: %v", sentiment.Confidence)
			}
			if len(sentiment.KeyPhrases) == 0 || len(sentiment.KeyPhrases) > 3 {
				t.Fatalf("expected 1-3 key phrases got %d", len(sentiment.KeyPhrases))
			}
		})
	}
}

func TestSentimentFormality(t *testing.T) {
	s := NewSentimentAnalyzer(6000)

	res, _ := s.Analyze(context.Background(), "We can't say it isn't working.")
	if res.(SentimentResult).Formality != "informal" {
		t.Fatalf("expected informal for contractions")
	}

	res, _ = s.Analyze(context.Background(), "The quarterly report is attached.")
	if res.(SentimentResult).Formality != "formal" {
		t.Fatalf("expected formal without contractions")
	}
}
