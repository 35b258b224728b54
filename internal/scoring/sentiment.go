package scoring

import "TokenPulse/internal/domain/models"

// SentimentScore maps the fear/greed index linearly from [0,100] onto
// [-2,2], centered on the neutral 50. An absent snapshot scores neutral;
// a present snapshot without the index reads as 50.
func SentimentScore(snap *models.SentimentSnapshot) float64 {
	if snap == nil {
		return 0
	}
	return (snap.FearGreedIndex() - 50) / 25
}
