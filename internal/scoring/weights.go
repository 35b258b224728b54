package scoring

import "errors"

// Canonical factor names, shared by weight maps and factor scores.
const (
	FactorMacro                   = "macro"
	FactorCryptoSpecific          = "crypto_specific"
	FactorSentiment               = "sentiment"
	FactorOnChainTech             = "on_chain_tech"
	FactorCorrelationsGeopolitics = "correlations_geopolitics"
	FactorAI                      = "ai"
	FactorRegulatory              = "regulatory"
	FactorESGWhales               = "esg_whales"
	FactorDePINGamingPrivacy      = "depin_gaming_privacy"
	FactorQuantum                 = "quantum"
	FactorCBDC                    = "cbdc"
	FactorRestakingDeFi           = "restaking_defi"
	FactorCreatorSocial           = "creator_social"
	FactorCrossChain              = "cross_chain"
)

// ErrZeroWeightSum rejects weight maps whose entries sum to zero.
var ErrZeroWeightSum = errors.New("total weight cannot be zero")

// defaultWeights is built once and shared read-only across requests.
// The raw values deliberately do not sum to 1; Normalize divides through.
var defaultWeights = map[string]float64{
	FactorMacro:                   0.35,
	FactorCryptoSpecific:          0.25,
	FactorSentiment:               0.20,
	FactorOnChainTech:             0.10,
	FactorCorrelationsGeopolitics: 0.10,
	FactorAI:                      0.15,
	FactorRegulatory:              0.15,
	FactorESGWhales:               0.10,
	FactorDePINGamingPrivacy:      0.05,
	FactorQuantum:                 0.05,
	FactorCBDC:                    0.10,
	FactorRestakingDeFi:           0.10,
	FactorCreatorSocial:           0.05,
	FactorCrossChain:              0.05,
}

// DefaultWeights returns the built-in factor weighting used when a request
// supplies none. The map is shared; callers must not mutate it.
func DefaultWeights() map[string]float64 {
	return defaultWeights
}

// Normalize scales a weight map so its entries sum to 1. Keys outside the
// canonical factor set pass through untouched; they simply find no matching
// scorer during aggregation. A zero total is the one rejected input.
func Normalize(weights map[string]float64) (map[string]float64, error) {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil, ErrZeroWeightSum
	}

	normalized := make(map[string]float64, len(weights))
	for k, w := range weights {
		normalized[k] = w / total
	}
	return normalized, nil
}
