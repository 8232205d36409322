// Package scoring reduces a set of metric tiers to a composite tier and score.
package scoring

import (
	"math"

	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/internal/domain/tier"
)

const maxScoreValue = 100

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMetricSet overrides the metrics the composite is computed over.
func WithMetricSet(metrics []model.Metric) Option {
	return func(e *Engine) {
		if len(metrics) > 0 {
			e.metrics = append([]model.Metric(nil), metrics...)
		}
	}
}

// Engine computes the overall tier and score. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	metrics []model.Metric
}

// NewEngine creates an engine over the canonical metric set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{metrics: model.Metrics}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute returns the composite for tiers. Metrics of the set that are
// missing from tiers count as tier 0.
func (e *Engine) Compute(tiers model.Tiers) model.Overall {
	n := len(e.metrics)
	if n == 0 {
		return model.Overall{Tier: model.Tier0, Label: tier.OverallLabels.At(model.Tier0)}
	}
	sum := 0
	for _, m := range e.metrics {
		sum += tiers[m].Int()
	}
	overall := OverallTier(sum, n)
	return model.Overall{
		Tier:  overall,
		Label: tier.OverallLabels.At(overall),
		Score: OverallScore(sum, n),
	}
}

// OverallTier is round(sum/n) clamped to [0,5].
func OverallTier(sum, n int) model.Tier {
	if n <= 0 {
		return model.Tier0
	}
	return model.TierFromInt(int(math.Round(float64(sum) / float64(n))))
}

// OverallScore is round(sum / (5n) * 100) clamped to [0,100].
func OverallScore(sum, n int) int {
	if n <= 0 {
		return 0
	}
	score := int(math.Round(float64(sum) / float64(int(model.MaxTier)*n) * maxScoreValue))
	switch {
	case score < 0:
		return 0
	case score > maxScoreValue:
		return maxScoreValue
	default:
		return score
	}
}
