// Package catalog - Authoritative upgrade tier catalog
// Defines the canonical tier ordering, descriptions and feature weights.
// This is the source of truth for what each tier includes.
package catalog

import (
	"github.com/shopspring/decimal"

	"ticket-upgrade/core/types"
)

// TierInfo describes one upgrade tier's benefit set
type TierInfo struct {
	Tier        types.UpgradeTier
	Name        string
	Description string
	Features    []string

	// FeatureWeight is the relative benefit richness used for value scoring
	FeatureWeight decimal.Decimal
}

// CanonicalOrder is the fixed tier ordering used for comparison output.
// It is intentionally hard-coded, not derived from the price table.
var CanonicalOrder = []types.UpgradeTier{
	types.TierStandard,
	types.TierNonStop,
	types.TierDoubleFun,
}

var tiers = map[types.UpgradeTier]TierInfo{
	types.TierStandard: {
		Tier:          types.TierStandard,
		Name:          "Standard Upgrade",
		Description:   "Enhanced experience with priority seating and complimentary refreshments",
		Features:      []string{"Priority seating", "Complimentary drinks", "Fast-track entry"},
		FeatureWeight: decimal.NewFromInt(3),
	},
	types.TierNonStop: {
		Tier:          types.TierNonStop,
		Name:          "Non-Stop Experience",
		Description:   "Premium experience with exclusive access and premium amenities",
		Features:      []string{"VIP lounge access", "Premium seating", "Exclusive merchandise", "Meet & greet"},
		FeatureWeight: decimal.NewFromInt(5),
	},
	types.TierDoubleFun: {
		Tier:          types.TierDoubleFun,
		Name:          "Double Fun Package",
		Description:   "Ultimate experience with all premium features and exclusive perks",
		Features:      []string{"All Non-Stop features", "Backstage access", "Photo opportunities", "Premium gift package"},
		FeatureWeight: decimal.NewFromInt(8),
	},
}

// Describe returns the catalog entry for a tier
func Describe(tier types.UpgradeTier) (TierInfo, bool) {
	info, ok := tiers[tier]
	return info, ok
}

// MustDescribe returns the catalog entry for a known tier.
// The catalog covers every valid tier, so a miss means an invalid enum.
func MustDescribe(tier types.UpgradeTier) TierInfo {
	if info, ok := tiers[tier]; ok {
		return info
	}
	panic("catalog: unknown upgrade tier " + tier.String())
}

// FeatureWeight returns the value-scoring weight for a tier.
// Unknown tiers weigh 1 so a score is still computable.
func FeatureWeight(tier types.UpgradeTier) decimal.Decimal {
	if info, ok := tiers[tier]; ok {
		return info.FeatureWeight
	}
	return decimal.NewFromInt(1)
}
