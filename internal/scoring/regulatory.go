package scoring

import (
	"strings"

	"TokenPulse/internal/domain/models"
)

// Keyword lists for the regulatory text scorer. Matches are substring
// counts, so "crypto" inside a longer word still counts.
var (
	positiveKeywords = []string{
		"approval", "clarity", "favorable", "adoption", "etf",
		"crypto", "blockchain", "stablecoin", "digital securities",
	}
	negativeKeywords = []string{
		"enforcement", "lawsuit", "clampdown", "violation", "probe",
	}
)

// Material disclosure forms carry extra weight.
var weightedForms = map[string]bool{
	"8-k":  true,
	"10-q": true,
	"10-k": true,
}

const materialFormWeight = 1.5

// RegulatoryScore scores the filing and news corpus by keyword balance.
// Each document contributes (pos-neg)/(pos+neg+1); filings from material
// disclosure forms are scaled up. The per-document mean is doubled to sit
// in the same band as the other factors, though pathological inputs can
// exceed it; that is accepted, not clamped.
func RegulatoryScore(corpus models.RegulatoryCorpus) float64 {
	if corpus.Empty() {
		return 0
	}

	var total float64
	var count int

	for _, filings := range corpus.Filings {
		for _, filing := range filings {
			pos, neg := countKeywords(filing.Description)
			weight := 1.0
			if weightedForms[strings.ToLower(filing.Form)] {
				weight = materialFormWeight
			}
			total += weight * float64(pos-neg) / float64(pos+neg+1)
			count++
		}
	}

	for _, article := range corpus.News {
		pos, neg := countKeywords(article.Title + " " + article.Description)
		total += float64(pos-neg) / float64(pos+neg+1)
		count++
	}

	if count == 0 {
		return 0
	}
	return total / float64(count) * 2
}

func countKeywords(text string) (pos, neg int) {
	lower := strings.ToLower(text)
	for _, k := range positiveKeywords {
		pos += strings.Count(lower, k)
	}
	for _, k := range negativeKeywords {
		neg += strings.Count(lower, k)
	}
	return pos, neg
}
