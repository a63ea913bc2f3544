package docapi

import (
	"math"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
)

// FromOutcomes maps settled task outcomes onto the wire results object.
// Unknown task names are dropped; the three known slots cover the configured
// analyzer set.
func FromOutcomes(outcomes map[string]job.TaskOutcome) AnalysisResults {
	var res AnalysisResults
	for name, out := range outcomes {
		secs := roundSeconds(out.Elapsed.Seconds())

		if !out.OK() {
			switch name {
			case analysis.TaskSummary:
				res.Summary = &SummaryPayload{Error: out.Err, ProcessingTimeSeconds: secs}
			case analysis.TaskEntities:
				res.Entities = &EntitiesPayload{Error: out.Err, ProcessingTimeSeconds: secs}
			case analysis.TaskSentiment:
				res.Sentiment = &SentimentPayload{Error: out.Err, ProcessingTimeSeconds: secs}
			}
			continue
		}

		switch v := out.Value.(type) {
		case analysis.SummaryResult:
			res.Summary = &SummaryPayload{
				Text:                  v.Text,
				KeyPoints:             v.KeyPoints,
				Confidence:            v.Confidence,
				ProcessingTimeSeconds: secs,
			}
		case analysis.EntitiesResult:
			res.Entities = &EntitiesPayload{
				People:                entityItems(v.People),
				Organizations:         entityItems(v.Organizations),
				Dates:                 entityItems(v.Dates),
				Locations:             entityItems(v.Locations),
				ProcessingTimeSeconds: secs,
			}
		case analysis.SentimentResult:
			res.Sentiment = &SentimentPayload{
				Tone:                  v.Tone,
				Confidence:            v.Confidence,
				Formality:             v.Formality,
				KeyPhrases:            v.KeyPhrases,
				ProcessingTimeSeconds: secs,
			}
		}
	}
	return res
}

func entityItems(entities []analysis.Entity) []EntityItem {
	if len(entities) == 0 {
		return nil
	}
	items := make([]EntityItem, len(entities))
	for i, e := range entities {
		items[i] = EntityItem{
			Name:     e.Name,
			Mentions: e.Mentions,
			Context:  e.Context,
			Role:     e.Role,
			Type:     e.Type,
		}
	}
	return items
}

// RoundSeconds trims durations to millisecond precision for the wire.
func RoundSeconds(seconds float64) float64 { return roundSeconds(seconds) }

func roundSeconds(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}
