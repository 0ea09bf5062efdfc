// ABOUTME: Mood/sentiment anomaly labels and journal statistics
// ABOUTME: Flags entries where self-reported mood and text sentiment disagree
package analysis

import (
	"github.com/harper/moodjournal/internal/db"
)

const (
	// AnomalyMasking marks a high mood written with negative text.
	AnomalyMasking = "Masking?"
	// AnomalyOverCritical marks a low mood written with positive text.
	AnomalyOverCritical = "Over-Critical"
)

// Anomaly returns a label when mood and sentiment disagree, or "".
func Anomaly(mood int, sentiment float64) string {
	if mood >= 7 && sentiment < -0.2 {
		return AnomalyMasking
	}
	if mood <= 4 && sentiment > 0.2 {
		return AnomalyOverCritical
	}
	return ""
}

// Stats summarizes a set of entries.
type Stats struct {
	Total            int     `json:"total"`
	AverageMood      float64 `json:"average_mood"`
	AverageSentiment float64 `json:"average_sentiment"`
	MoodBand         string  `json:"mood_band"`
	SentimentBand    string  `json:"sentiment_band"`
	Anomalies        int     `json:"anomalies"`
}

// Summarize computes totals, averages and bands over entries.
func Summarize(entries []db.Entry) Stats {
	stats := Stats{Total: len(entries)}

	var sumMood, sumSentiment float64
	for _, e := range entries {
		sumMood += float64(e.Mood)
		sumSentiment += e.Sentiment
		if Anomaly(e.Mood, e.Sentiment) != "" {
			stats.Anomalies++
		}
	}

	if stats.Total > 0 {
		stats.AverageMood = round(sumMood/float64(stats.Total), 1)
		stats.AverageSentiment = round(sumSentiment/float64(stats.Total), 2)
	}
	stats.MoodBand = MoodBand(stats.AverageMood)
	stats.SentimentBand = SentimentBand(stats.AverageSentiment)

	return stats
}

// MoodBand buckets an average mood on the 1-10 scale.
func MoodBand(avg float64) string {
	switch {
	case avg >= 7:
		return "happy"
	case avg >= 4:
		return "okay"
	default:
		return "sad"
	}
}

// SentimentBand buckets an average sentiment on the -1..1 scale.
func SentimentBand(avg float64) string {
	switch {
	case avg >= 0.2:
		return "positive"
	case avg >= -0.2:
		return "neutral"
	default:
		return "negative"
	}
}
