package model

// Tier is an ordinal bucket in [0,5]. Values outside that range can only be
// produced by an unchecked conversion; use TierFromInt.
type Tier uint8

// Tier values.
const (
	Tier0 Tier = iota
	Tier1
	Tier2
	Tier3
	Tier4
	Tier5
)

// MaxTier is the highest tier.
const MaxTier = Tier5

// TierFromInt clamps n into [0,5].
func TierFromInt(n int) Tier {
	switch {
	case n <= 0:
		return Tier0
	case n >= int(MaxTier):
		return MaxTier
	default:
		return Tier(n)
	}
}

// Int returns the tier as an int.
func (t Tier) Int() int { return int(t) }
