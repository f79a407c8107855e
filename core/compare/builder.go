// Package compare - Tier comparison builder
// Assembles availability, pricing and a value score for every tier in the
// canonical ordering, and names the recommended tier.
package compare

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/catalog"
	"ticket-upgrade/core/types"
)

// scoreScale converts weight-per-dollar into a readable score
var scoreScale = decimal.NewFromInt(10)

// scorePrecision is the decimal places kept on value scores
const scorePrecision = 2

// Builder produces side-by-side tier comparisons
type Builder struct {
	engine *calendar.Engine
}

// NewBuilder creates a comparison builder over a calendar engine
func NewBuilder(engine *calendar.Engine) *Builder {
	return &Builder{engine: engine}
}

// Compare builds one row per tier in catalog.CanonicalOrder for the given
// ticket type and date. The recommended tier is the available row with the
// highest value score; ties keep the first maximum. No recommendation is
// made when every tier is unavailable.
func (b *Builder) Compare(ticketType types.TicketType, onDate time.Time) types.TierComparison {
	date := calendar.DateOnly(onDate)

	comparison := types.TierComparison{
		TicketType: ticketType,
		Date:       date,
		Rows:       make([]types.ComparisonRow, 0, len(catalog.CanonicalOrder)),
	}

	var best *decimal.Decimal

	for _, tier := range catalog.CanonicalOrder {
		info := catalog.MustDescribe(tier)
		row := types.ComparisonRow{
			Tier:        tier,
			Name:        info.Name,
			Description: info.Description,
			Features:    info.Features,
		}

		quote, err := b.engine.Quote(ticketType, tier, date)
		if err != nil {
			row.Available = false
			row.Reason = fmt.Sprintf("Not available for %s tickets", ticketType)
			comparison.Rows = append(comparison.Rows, row)
			continue
		}

		score := ValueScore(tier, quote.CalendarPrice)
		row.Available = true
		row.Quote = &quote
		row.ValueScore = &score
		comparison.Rows = append(comparison.Rows, row)

		// Strictly-greater keeps the first maximum on ties
		if best == nil || score.GreaterThan(*best) {
			best = &score
			comparison.RecommendedTier = tier
		}
	}

	return comparison
}

// ValueScore ranks a tier's benefit richness against its calendar price:
// featureWeight / calendarPrice * 10, rounded to two decimal places.
// A non-positive price scores zero rather than dividing by it.
func ValueScore(tier types.UpgradeTier, calendarPrice decimal.Decimal) decimal.Decimal {
	if calendarPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return catalog.FeatureWeight(tier).
		Div(calendarPrice).
		Mul(scoreScale).
		Round(scorePrecision)
}
