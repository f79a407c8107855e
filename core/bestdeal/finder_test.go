// Package bestdeal - Ranking invariant tests
package bestdeal

import (
	"testing"
	"time"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/pricing"
	"ticket-upgrade/core/types"
)

var fixedToday = time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)

func newTestFinder() (*Finder, *calendar.Engine) {
	engine := calendar.NewEngineWithClock(pricing.NewTable(), func() time.Time { return fixedToday })
	return NewFinder(engine), engine
}

// TestBestDatesOrdering proves output is non-decreasing by price,
// contains only available dates, and is capped at 10
func TestBestDatesOrdering(t *testing.T) {
	finder, engine := newTestFinder()

	deals := finder.BestDates(types.TicketGeneral, types.TierStandard, 30)
	if len(deals) == 0 {
		t.Fatal("expected deals within a 30-day horizon")
	}
	if len(deals) > 10 {
		t.Fatalf("deals = %d, want <= 10", len(deals))
	}

	for i, deal := range deals {
		if !engine.IsAvailable(deal.Date).Available {
			t.Errorf("deal %d on %s is not available", i, deal.Date.Format("2006-01-02"))
		}
		if i > 0 && deal.Price.LessThan(deals[i-1].Price) {
			t.Errorf("deal %d price %s < previous %s", i, deal.Price, deals[i-1].Price)
		}
	}
}

// TestBestDatesCheapestFirst proves off-peak Tuesdays beat weekends.
// From 2026-09-07, September Tue/Wed days price at 0.9.
func TestBestDatesCheapestFirst(t *testing.T) {
	finder, _ := newTestFinder()

	deals := finder.BestDates(types.TicketGeneral, types.TierStandard, 14)
	if len(deals) == 0 {
		t.Fatal("expected deals")
	}

	best := deals[0]
	if best.Category != types.CategoryOffPeak {
		t.Errorf("best deal category = %s, want off_peak", best.Category)
	}
	if best.Price.String() != "22.5" {
		t.Errorf("best price = %s, want 22.5", best.Price)
	}
	// Savings against peak rate 37.50
	if best.Savings.String() != "-15" {
		t.Errorf("best savings = %s, want -15", best.Savings)
	}
}

// TestBestDatesHorizonRespected proves the scan never leaves the horizon
func TestBestDatesHorizonRespected(t *testing.T) {
	finder, engine := newTestFinder()

	horizon := 7
	deals := finder.BestDates(types.TicketGeneral, types.TierNonStop, horizon)
	limit := engine.Today().AddDate(0, 0, horizon)

	for _, deal := range deals {
		if !deal.Date.Before(limit) {
			t.Errorf("deal on %s is outside the %d-day horizon", deal.Date.Format("2006-01-02"), horizon)
		}
	}
}

// TestBestDatesNotOffered proves an unoffered pairing yields nothing:
// no date can make premium upgradeable
func TestBestDatesNotOffered(t *testing.T) {
	finder, _ := newTestFinder()

	if deals := finder.BestDates(types.TicketPremium, types.TierDoubleFun, 30); len(deals) != 0 {
		t.Errorf("premium deals = %d, want 0", len(deals))
	}
}

// TestBestDatesExcludesBlackout proves the monthly maintenance day never
// appears in results
func TestBestDatesExcludesBlackout(t *testing.T) {
	finder, _ := newTestFinder()

	deals := finder.BestDates(types.TicketGeneral, types.TierStandard, 30)
	for _, deal := range deals {
		if deal.Date.Day() == 15 {
			t.Errorf("blackout day %s in results", deal.Date.Format("2006-01-02"))
		}
	}
}
