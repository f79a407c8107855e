// Package compare - Comparison and recommendation tests
package compare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/catalog"
	"ticket-upgrade/core/pricing"
	"ticket-upgrade/core/types"
)

var fixedToday = time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	engine := calendar.NewEngineWithClock(pricing.NewTable(), func() time.Time { return fixedToday })
	return NewBuilder(engine)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestCompareCanonicalOrder proves rows follow the fixed tier ordering
// regardless of what the price table offers
func TestCompareCanonicalOrder(t *testing.T) {
	b := newTestBuilder()

	comparison := b.Compare(types.TicketVIP, day(2026, time.September, 18))
	if len(comparison.Rows) != len(catalog.CanonicalOrder) {
		t.Fatalf("rows = %d, want %d", len(comparison.Rows), len(catalog.CanonicalOrder))
	}
	for i, row := range comparison.Rows {
		if row.Tier != catalog.CanonicalOrder[i] {
			t.Errorf("row[%d] = %s, want %s", i, row.Tier, catalog.CanonicalOrder[i])
		}
	}
}

// TestCompareUnavailableRows proves unoffered tiers carry a reason and
// no pricing
func TestCompareUnavailableRows(t *testing.T) {
	b := newTestBuilder()

	comparison := b.Compare(types.TicketVIP, day(2026, time.September, 18))

	for _, row := range comparison.Rows {
		switch row.Tier {
		case types.TierDoubleFun:
			if !row.Available || row.Quote == nil || row.ValueScore == nil {
				t.Errorf("double-fun should be fully populated: %+v", row)
			}
		default:
			if row.Available {
				t.Errorf("%s should be unavailable for vip", row.Tier)
			}
			if row.Quote != nil || row.ValueScore != nil {
				t.Errorf("%s should have nil pricing and score", row.Tier)
			}
			if row.Reason == "" {
				t.Errorf("%s should carry an unavailability reason", row.Tier)
			}
		}
	}
}

// TestRecommendationIsMaxScore proves the recommended tier holds the
// strictly maximal value score among available rows
func TestRecommendationIsMaxScore(t *testing.T) {
	b := newTestBuilder()

	comparison := b.Compare(types.TicketGeneral, day(2026, time.September, 18))
	if comparison.RecommendedTier == "" {
		t.Fatal("expected a recommendation for general tickets")
	}

	var recommended *decimal.Decimal
	for _, row := range comparison.Rows {
		if row.Tier == comparison.RecommendedTier {
			recommended = row.ValueScore
		}
	}
	if recommended == nil {
		t.Fatal("recommended tier missing from rows")
	}

	for _, row := range comparison.Rows {
		if !row.Available || row.Tier == comparison.RecommendedTier {
			continue
		}
		if row.ValueScore.GreaterThan(*recommended) {
			t.Errorf("%s score %s beats recommended %s", row.Tier, row.ValueScore, recommended)
		}
	}
}

// TestRecommendationForStandardTicket proves the weights favor non-stop
// for standard tickets (5/25 beats 8/50 per dollar)
func TestRecommendationForStandardTicket(t *testing.T) {
	b := newTestBuilder()

	comparison := b.Compare(types.TicketStandard, day(2026, time.September, 18))
	if comparison.RecommendedTier != types.TierNonStop {
		t.Errorf("recommended = %s, want non-stop", comparison.RecommendedTier)
	}
}

// TestNoRecommendationForPremium proves no recommendation is produced
// when every tier is unavailable
func TestNoRecommendationForPremium(t *testing.T) {
	b := newTestBuilder()

	comparison := b.Compare(types.TicketPremium, day(2026, time.September, 18))
	if comparison.RecommendedTier != "" {
		t.Errorf("recommended = %s, want none", comparison.RecommendedTier)
	}
	for _, row := range comparison.Rows {
		if row.Available {
			t.Errorf("%s should be unavailable for premium", row.Tier)
		}
	}
}

// TestValueScoreFormula checks featureWeight / price * 10 with rounding
func TestValueScoreFormula(t *testing.T) {
	// standard weight 3, weekend price 30.00 => 3/30*10 = 1
	score := ValueScore(types.TierStandard, decimal.RequireFromString("30.00"))
	if score.String() != "1" {
		t.Errorf("score = %s, want 1", score)
	}

	// non-stop weight 5, weekend price 60.00 => 0.8333 -> 0.83
	score = ValueScore(types.TierNonStop, decimal.RequireFromString("60.00"))
	if score.String() != "0.83" {
		t.Errorf("score = %s, want 0.83", score)
	}

	// zero price scores zero, never divides
	if !ValueScore(types.TierDoubleFun, decimal.Zero).IsZero() {
		t.Error("zero price must score zero")
	}
}
