package scoring

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

func TestRegulatoryScoreMaterialFiling(t *testing.T) {
	// Two positive hits, zero negative, material form:
	// 1.5 * (2-0)/(2+0+1) = 1.0, doubled to 2.0.
	corpus := models.RegulatoryCorpus{
		Filings: models.FilingsByFiler{
			"SEC": {{Description: "Approval and clarity granted", Form: "10-K"}},
		},
	}
	if got := RegulatoryScore(corpus); !approxEqual(got, 2.0) {
		t.Fatalf("RegulatoryScore = %v, want 2.0", got)
	}
}

func TestRegulatoryScoreCountsEveryKeyword(t *testing.T) {
	// "etf", "approval" and "clarity" all count: 1.5 * 3/4 * 2 = 2.25.
	corpus := models.RegulatoryCorpus{
		Filings: models.FilingsByFiler{
			"SEC": {{Description: "ETF approval and clarity", Form: "10-K"}},
		},
	}
	if got := RegulatoryScore(corpus); !approxEqual(got, 2.25) {
		t.Fatalf("RegulatoryScore = %v, want 2.25", got)
	}
}

func TestRegulatoryScoreSubstringMatches(t *testing.T) {
	// "crypto" inside "cryptocurrency" still counts: (2-0)/3 * 2.
	corpus := models.RegulatoryCorpus{
		News: []models.NewsArticle{{Title: "Cryptocurrency blockchain roundup"}},
	}
	if got := RegulatoryScore(corpus); !approxEqual(got, 4.0/3.0) {
		t.Fatalf("RegulatoryScore = %v, want %v", got, 4.0/3.0)
	}
}

func TestRegulatoryScoreNegativeArticle(t *testing.T) {
	// Keywords split across title and description: (0-3)/4 * 2 = -1.5.
	corpus := models.RegulatoryCorpus{
		News: []models.NewsArticle{{
			Title:       "Watchdog files lawsuit",
			Description: "enforcement probe widens",
		}},
	}
	if got := RegulatoryScore(corpus); !approxEqual(got, -1.5) {
		t.Fatalf("RegulatoryScore = %v, want -1.5", got)
	}
}

func TestRegulatoryScoreFormWeight(t *testing.T) {
	filing := func(form string) models.RegulatoryCorpus {
		return models.RegulatoryCorpus{
			Filings: models.FilingsByFiler{
				"ACME": {{Description: "adoption", Form: form}},
			},
		}
	}
	// One positive hit is (1-0)/2 = 0.5 doubled to 1.0, scaled 1.5x for
	// material forms regardless of case.
	for _, form := range []string{"8-K", "8-k", "10-Q", "10-k"} {
		if got := RegulatoryScore(filing(form)); !approxEqual(got, 1.5) {
			t.Errorf("form %q: RegulatoryScore = %v, want 1.5", form, got)
		}
	}
	if got := RegulatoryScore(filing("S-1")); !approxEqual(got, 1.0) {
		t.Errorf("form S-1: RegulatoryScore = %v, want 1.0", got)
	}
}

func TestRegulatoryScoreAveragesAcrossDocuments(t *testing.T) {
	// Filing scores 1.0*(1-0)/2 = 0.5, article (0-1)/2 = -0.5; they cancel.
	corpus := models.RegulatoryCorpus{
		Filings: models.FilingsByFiler{
			"ACME": {{Description: "stablecoin", Form: "S-1"}},
		},
		News: []models.NewsArticle{{Title: "probe"}},
	}
	if got := RegulatoryScore(corpus); !approxEqual(got, 0) {
		t.Fatalf("RegulatoryScore = %v, want 0", got)
	}
}

func TestRegulatoryScoreTwoWordKeyword(t *testing.T) {
	corpus := models.RegulatoryCorpus{
		News: []models.NewsArticle{{Title: "Digital Securities framework due"}},
	}
	// (1-0)/2 * 2 = 1.0.
	if got := RegulatoryScore(corpus); !approxEqual(got, 1.0) {
		t.Fatalf("RegulatoryScore = %v, want 1.0", got)
	}
}

func TestRegulatoryScoreAbsentCorpus(t *testing.T) {
	if got := RegulatoryScore(models.RegulatoryCorpus{}); got != 0 {
		t.Fatalf("RegulatoryScore(empty) = %v, want 0", got)
	}
	// A filer with zero filings contributes no documents.
	corpus := models.RegulatoryCorpus{Filings: models.FilingsByFiler{"SEC": {}}}
	if got := RegulatoryScore(corpus); got != 0 {
		t.Fatalf("RegulatoryScore(filer without filings) = %v, want 0", got)
	}
}

func TestRegulatoryScoreNoKeywords(t *testing.T) {
	corpus := models.RegulatoryCorpus{
		News: []models.NewsArticle{{Title: "quarterly earnings update"}},
	}
	if got := RegulatoryScore(corpus); got != 0 {
		t.Fatalf("RegulatoryScore = %v, want 0 for keyword-free text", got)
	}
}
