package scoring

import "math/rand"

// Rand is the randomness source for the placeholder scorers. Production
// uses the process-global source; tests inject a scripted one.
type Rand interface {
	Float64() float64
}

// SystemRand draws from the auto-seeded process-global source.
type SystemRand struct{}

func (SystemRand) Float64() float64 { return rand.Float64() }

// thematicFactors are the factors without real models yet. Each one rolls
// a fresh draw per request. Known stubs: they stay stochastic until real
// per-factor logic lands.
var thematicFactors = []string{
	FactorCryptoSpecific,
	FactorOnChainTech,
	FactorCorrelationsGeopolitics,
	FactorAI,
	FactorESGWhales,
	FactorDePINGamingPrivacy,
	FactorQuantum,
	FactorCBDC,
	FactorRestakingDeFi,
	FactorCreatorSocial,
	FactorCrossChain,
}

// ThematicScore is the shared placeholder: a uniform draw from [-2, 2)
// independent of any token input.
func ThematicScore(rng Rand) float64 {
	return -2 + 4*rng.Float64()
}
