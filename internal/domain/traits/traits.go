// Package traits renders tiers into the visual traits of a beast preview.
package traits

import (
	"github.com/okian/beastscore/internal/domain/model"
)

// Slot names a visual trait position on the beast.
type Slot string

// Trait slots.
const (
	Size          Slot = "size"
	Muscles       Slot = "muscles"
	Weapon        Slot = "weapon"
	Shield        Slot = "shield"
	Armor         Slot = "armor"
	NeckMedallion Slot = "neck_medallion"
	Helmet        Slot = "helmet"
	Ring          Slot = "ring"
	Boots         Slot = "boots"
)

// Slots lists every slot with its source metric.
var Slots = []struct {
	Slot   Slot
	Metric model.Metric
}{
	{Size, model.ActivityDays},
	{Muscles, model.TxCount},
	{Weapon, model.DefiSwaps},
	{Shield, model.LiquidityYield},
	{Armor, model.Builder},
	{NeckMedallion, model.NFTMints},
	{Helmet, model.Social},
	{Ring, model.GasSpent},
	{Boots, model.DefiVolume},
}

// User types.
const (
	UserTypeBuilder    = "Builder"
	UserTypeInfluencer = "Influencer"
	UserTypeUser       = "User"
)

// Rarities, lowest first.
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
	RarityMythic    = "Mythic"
)

// DefaultSpeciesID is used when the template does not name a species.
const DefaultSpeciesID = 1

// userTypeThreshold is the tier at which builder or social defines the user.
const userTypeThreshold = model.Tier4

// UserType classifies a wallet; builder takes priority over social.
func UserType(builder, social model.Tier) string {
	switch {
	case builder >= userTypeThreshold:
		return UserTypeBuilder
	case social >= userTypeThreshold:
		return UserTypeInfluencer
	default:
		return UserTypeUser
	}
}

// Rarity is a monotonic function of the overall tier.
func Rarity(overall model.Tier) string {
	switch {
	case overall >= model.Tier5:
		return RarityMythic
	case overall == model.Tier4:
		return RarityLegendary
	case overall == model.Tier3:
		return RarityEpic
	case overall == model.Tier2:
		return RarityRare
	case overall == model.Tier1:
		return RarityUncommon
	default:
		return RarityCommon
	}
}

// Trait renders one slot at tier t.
func Trait(slot Slot, metric model.Metric, t model.Tier) model.VisualTrait {
	v := variantsFor(slot).at(t)
	return model.VisualTrait{
		SourceMetric: metric,
		Tier:         t,
		Label:        v.label,
		Description:  v.description,
	}
}

// Build renders the full preview from tiers and the overall tier.
func Build(tiers model.Tiers, overall model.Tier, speciesID int) model.BeastPreview {
	if speciesID <= 0 {
		speciesID = DefaultSpeciesID
	}
	visual := make(map[string]model.VisualTrait, len(Slots))
	for _, s := range Slots {
		visual[string(s.Slot)] = Trait(s.Slot, s.Metric, tiers[s.Metric])
	}
	return model.BeastPreview{
		SpeciesID:    speciesID,
		Rarity:       Rarity(overall),
		UserType:     UserType(tiers[model.Builder], tiers[model.Social]),
		VisualTraits: visual,
	}
}
