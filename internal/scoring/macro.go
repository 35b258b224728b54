package scoring

import "TokenPulse/internal/domain/models"

// MacroScore maps the latest CPI reading onto the factor band: high
// inflation is bearish, low inflation bullish. An absent snapshot or an
// unusable latest observation scores neutral.
func MacroScore(snap models.MacroSnapshot) float64 {
	cpi, ok := snap.LatestValue()
	if !ok {
		return 0
	}
	switch {
	case cpi > 5:
		return -2
	case cpi < 2:
		return 2
	default:
		return 0
	}
}
