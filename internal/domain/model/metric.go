package model

// Metric names one raw behavioral measurement of a wallet.
type Metric string

// Canonical metric names. These double as JSON keys in the profile document.
const (
	ActivityDays   Metric = "activity_days"
	TxCount        Metric = "tx_count"
	DefiSwaps      Metric = "defi_swaps"
	LiquidityYield Metric = "liquidity_yield"
	Builder        Metric = "builder"
	NFTMints       Metric = "nft_mints"
	Social         Metric = "social"
	GasSpent       Metric = "gas_spent"
	DefiVolume     Metric = "defi_volume"
)

// Metrics lists the canonical metric set in presentation order. The overall
// tier and score are always computed over exactly these nine entries.
var Metrics = []Metric{
	ActivityDays,
	TxCount,
	DefiSwaps,
	LiquidityYield,
	Builder,
	NFTMints,
	Social,
	GasSpent,
	DefiVolume,
}

// RawMetrics holds raw values keyed by metric. Missing entries read as 0.
type RawMetrics map[Metric]float64

// NewRawMetrics returns a set with every canonical metric present and zero.
func NewRawMetrics() RawMetrics {
	m := make(RawMetrics, len(Metrics))
	for _, name := range Metrics {
		m[name] = 0
	}
	return m
}

// Get returns the raw value for name, or 0 when absent.
func (r RawMetrics) Get(name Metric) float64 { return r[name] }

// Clone returns an independent copy.
func (r RawMetrics) Clone() RawMetrics {
	out := make(RawMetrics, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// MetricRecord is the per-metric entry of a ScoreSet.
type MetricRecord struct {
	RawValue  float64 `json:"raw_value"`
	Tier      Tier    `json:"tier"`
	TierLabel string  `json:"tier_label"`
}

// Tiers maps each metric to its tier.
type Tiers map[Metric]Tier

// Overall is the composite result over all metric tiers.
type Overall struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// ScoreSet is the scored view of one wallet.
type ScoreSet struct {
	Metrics map[Metric]MetricRecord `json:"metrics"`
	Tiers   Tiers                   `json:"tiers"`
	Overall Overall                 `json:"overall"`
}

// ManualOverride carries operator-supplied reputation scores for one address.
// Nil fields mean "no override".
type ManualOverride struct {
	BuilderScore *float64 `koanf:"builder_score" json:"builder_score,omitempty"`
	SocialScore  *float64 `koanf:"social_score" json:"social_score,omitempty"`
}
