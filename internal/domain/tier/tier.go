// Package tier maps raw wallet metrics onto ordinal tiers.
//
// Every mapper is a pure step function over a fixed ladder of five
// thresholds: the tier is the number of thresholds the value reaches.
// Non-finite and negative inputs are clamped to 0 before mapping.
package tier

import (
	"math"

	"github.com/okian/beastscore/internal/domain/model"
)

// Ladder holds the five ascending thresholds for tiers 1..5.
type Ladder [5]float64

// Ladders per metric. Values at or above ladder[i] reach tier i+1.
var ladders = map[model.Metric]Ladder{
	model.TxCount:        {1, 10, 50, 200, 1000},
	model.ActivityDays:   {1, 10, 60, 180, 365},
	model.Builder:        {1, 30, 50, 70, 90},
	model.Social:         {1, 30, 50, 70, 90},
	model.DefiSwaps:      {1, 5, 20, 50, 150},
	model.DefiVolume:     {1, 100, 1_000, 10_000, 100_000},
	model.LiquidityYield: {1, 1_000, 10_000, 100_000, 1_000_000},
	model.NFTMints:       {1, 3, 10, 25, 50},
	model.GasSpent:       {0.0001, 0.001, 0.01, 0.1, 1},
}

// LadderFor returns the thresholds for m and whether m is known.
func LadderFor(m model.Metric) (Ladder, bool) {
	l, ok := ladders[m]
	return l, ok
}

// Clamp replaces NaN, infinities and negatives with 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Step maps v onto l.
func (l Ladder) Step(v float64) model.Tier {
	v = Clamp(v)
	n := 0
	for _, threshold := range l {
		if v < threshold {
			break
		}
		n++
	}
	return model.TierFromInt(n)
}

// Map returns the tier for a raw value of metric m. Unknown metrics map to 0.
func Map(m model.Metric, raw float64) model.Tier {
	l, ok := LadderFor(m)
	if !ok {
		return model.Tier0
	}
	return l.Step(raw)
}

// MapAll tiers every canonical metric in raw.
func MapAll(raw model.RawMetrics) model.Tiers {
	out := make(model.Tiers, len(model.Metrics))
	for _, m := range model.Metrics {
		out[m] = Map(m, raw.Get(m))
	}
	return out
}

// Convenience mappers, one per metric.

func TxCount(raw float64) model.Tier        { return Map(model.TxCount, raw) }
func ActivityDays(raw float64) model.Tier   { return Map(model.ActivityDays, raw) }
func DefiSwaps(raw float64) model.Tier      { return Map(model.DefiSwaps, raw) }
func DefiVolume(raw float64) model.Tier     { return Map(model.DefiVolume, raw) }
func LiquidityYield(raw float64) model.Tier { return Map(model.LiquidityYield, raw) }
func Builder(raw float64) model.Tier        { return Map(model.Builder, raw) }
func Social(raw float64) model.Tier         { return Map(model.Social, raw) }
func NFTMints(raw float64) model.Tier       { return Map(model.NFTMints, raw) }
func GasSpent(raw float64) model.Tier       { return Map(model.GasSpent, raw) }
