package traits

import (
	"github.com/okian/beastscore/internal/domain/model"
	"github.com/okian/beastscore/internal/domain/tier"
)

type variant struct {
	label       string
	description string
}

type variants [6]variant

func (v variants) at(t model.Tier) variant {
	switch t {
	case model.Tier0:
		return v[0]
	case model.Tier1:
		return v[1]
	case model.Tier2:
		return v[2]
	case model.Tier3:
		return v[3]
	case model.Tier4:
		return v[4]
	case model.Tier5:
		return v[5]
	default:
		return variant{label: tier.UnknownLabel, description: tier.UnknownLabel}
	}
}

func variantsFor(s Slot) variants {
	v, ok := slotVariants[s]
	if !ok {
		return variants{}
	}
	return v
}

var slotVariants = map[Slot]variants{
	Size: {
		{"Tiny", "Just spawned on Base."},
		{"Small", "Early explorer with a few active days on Base."},
		{"Medium", "Regular Base user with consistent activity."},
		{"Large", "Committed Base resident with a long history."},
		{"Huge", "Lives on Base almost every day."},
		{"Titan", "True Base native with massive activity streak."},
	},
	Muscles: {
		{"No Muscles", "No visible onchain activity yet."},
		{"Lean", "Just getting into basic onchain actions."},
		{"Fit", "Comfortable with regular transactions on Base."},
		{"Strong", "Power user with heavy Base activity."},
		{"Shredded", "Very high throughput across Base protocols."},
		{"Overpowered", "Onchain machine with insane transaction volume."},
	},
	Weapon: {
		{"No Weapon", "Has not touched DeFi swaps yet."},
		{"Wooden Sword", "First steps into DEX swaps on Base."},
		{"Steel Sword", "Comfortable with DeFi trading."},
		{"Greatsword", "Active DeFi trader across Base DEXes."},
		{"Mythic Blade", "DeFi native warrior on Base."},
		{"Legendary Relic", "DeFi beast with massive swap footprint."},
	},
	Shield: {
		{"No Shield", "No LP, lending or staking activity."},
		{"Wooden Shield", "First LP or yield experiments."},
		{"Iron Shield", "Provides useful liquidity / lending positions."},
		{"Reinforced Shield", "Actively farming yield on Base."},
		{"Guardian Shield", "Defends large DeFi positions with care."},
		{"Aegis of Base", "Pillar of Base liquidity and yield strategies."},
	},
	Armor: {
		{"No Armor", "Has not earned builder armor yet."},
		{"Leather Armor", "Learning how to build on Base."},
		{"Chainmail Armor", "Shipping first smart contracts."},
		{"Plate Armor", "Confident Base builder with real deployments."},
		{"Techno Armor", "Senior contributor to Base ecosystem."},
		{"Celestial Armor", "Architect-level builder shaping Base."},
	},
	NeckMedallion: {
		{"No Medallion", "Has not minted NFTs on Base yet."},
		{"Bronze Medallion", "NFT tourist with a few Base mints."},
		{"Silver Medallion", "Active NFT collector on Base."},
		{"Gold Medallion", "NFT enthusiast with many Base mints."},
		{"Platinum Medallion", "NFT whale dominating Base collections."},
		{"Mythic Medallion", "NFT legend of the Base ecosystem."},
	},
	Helmet: {
		{"No Helmet", "No visible social presence yet."},
		{"Street Cap", "Local voice among Base users."},
		{"Scout Helm", "Rising influencer in the ecosystem."},
		{"Influencer Helm", "Recognized by the Base community."},
		{"KOL Crown", "Key opinion leader on Base social."},
		{"Beast Crown", "True social Beast of Base."},
	},
	Ring: {
		{"No Ring", "Has not burned gas on Base yet."},
		{"Copper Ring", "Spent a few drops of gas."},
		{"Silver Ring", "Steady gas spender on Base."},
		{"Gold Ring", "Burns serious gas across Base."},
		{"Ruby Ring", "Fills blocks with heavy gas usage."},
		{"Ring of Flames", "Legendary gas burner of Base."},
	},
	Boots: {
		{"Barefoot", "No swap volume on Base yet."},
		{"Sandals", "Dusting a few dollars through DEXes."},
		{"Leather Boots", "Retail-sized trading volume."},
		{"Iron Greaves", "Serious trader moving real size."},
		{"Winged Boots", "Whale-level volume across Base DEXes."},
		{"Boots of the Market", "Moves markets with massive swap volume."},
	},
}
