// Package persona turns raw wallet telemetry into a bounded score and a
// set of categorical labels.
package persona

import "math"

// Telemetry is a per-request snapshot of a wallet's on-chain facts.
type Telemetry struct {
	Balance float64 // native units (ETH)
	TxCount uint64
}

// CalculateScore maps telemetry to an integer in [0,100] using an additive
// point system:
//
//	activity  min(txCount/5, 30)
//	balance   +10 above 0.01, +15 above 0.1, +20 above 1 (cumulative)
//	combo     +15 when txCount > 100 and balance > 0.5
//	volume    +10 when txCount > 500
//
// The balance tiers stack on purpose: a whale earns every tier it clears.
func CalculateScore(t Telemetry) int {
	score := math.Min(float64(t.TxCount)/5, 30)

	if t.Balance > 0.01 {
		score += 10
	}
	if t.Balance > 0.1 {
		score += 15
	}
	if t.Balance > 1 {
		score += 20
	}

	if t.TxCount > 100 && t.Balance > 0.5 {
		score += 15
	}
	if t.TxCount > 500 {
		score += 10
	}

	return clamp(int(math.Round(score)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
