package tier

import "github.com/okian/beastscore/internal/domain/model"

// UnknownLabel is returned for a tier outside [0,5].
const UnknownLabel = "Unknown"

// Labels is a six-entry table indexed by tier.
type Labels [6]string

// At resolves t against the table.
func (l Labels) At(t model.Tier) string {
	switch t {
	case model.Tier0:
		return l[0]
	case model.Tier1:
		return l[1]
	case model.Tier2:
		return l[2]
	case model.Tier3:
		return l[3]
	case model.Tier4:
		return l[4]
	case model.Tier5:
		return l[5]
	default:
		return UnknownLabel
	}
}

var metricLabels = map[model.Metric]Labels{
	model.ActivityDays:   {"Dormant", "Explorer", "Regular", "Committed", "Resident", "Base Native"},
	model.TxCount:        {"No Activity", "Getting Started", "Active User", "Power User", "Heavy User", "Onchain Addict"},
	model.DefiSwaps:      {"No DeFi", "DEX Newbie", "DEX Explorer", "Active Trader", "DeFi Native", "DeFi Beast"},
	model.LiquidityYield: {"No Liquidity", "LP Newbie", "Liquidity Provider", "Yield Farmer", "DeFi Guardian", "Protocol Pillar"},
	model.Builder:        {"Not a Builder", "Learning Builder", "Junior Builder", "Pro Builder", "Senior Builder", "Ecosystem Architect"},
	model.NFTMints:       {"No NFTs", "NFT Tourist", "NFT Collector", "NFT Enthusiast", "NFT Whale", "NFT Legend"},
	model.Social:         {"Silent", "Local Voice", "Rising Influencer", "Recognized Influencer", "KOL", "Social Beast"},
	model.GasSpent:       {"Gasless", "Pocket Change", "Fuel Burner", "Gas Guzzler", "Block Filler", "Gas Lord"},
	model.DefiVolume:     {"No Volume", "Dust Trader", "Retail Trader", "Serious Trader", "Volume Whale", "Market Mover"},
}

// OverallLabels names the composite tier.
var OverallLabels = Labels{"Newcomer", "Base Explorer", "Base Adept", "Base Native", "Base Elite", "Base Legend"}

// Label returns the human-readable label for metric m at tier t.
func Label(m model.Metric, t model.Tier) string {
	l, ok := metricLabels[m]
	if !ok {
		return UnknownLabel
	}
	return l.At(t)
}

// Record builds the MetricRecord for a raw value.
func Record(m model.Metric, raw float64) model.MetricRecord {
	raw = Clamp(raw)
	t := Map(m, raw)
	return model.MetricRecord{RawValue: raw, Tier: t, TierLabel: Label(m, t)}
}
