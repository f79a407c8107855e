// Package bestdeal - Cheapest-date scan
// Ranks the cheapest available dates for an upgrade over a bounded
// horizon. Purely CPU-bound, one calendar lookup per day.
package bestdeal

import (
	"sort"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/types"
)

// maxResults caps the ranked output
const maxResults = 10

// Finder scans a date horizon for the best-priced upgrade dates
type Finder struct {
	engine *calendar.Engine
}

// NewFinder creates a finder backed by a calendar engine
func NewFinder(engine *calendar.Engine) *Finder {
	return &Finder{engine: engine}
}

// BestDates returns available dates within horizonDays of today, sorted
// ascending by calendar price and truncated to the top 10. The sort is
// stable, so equal prices keep scan order (earlier date wins).
func (f *Finder) BestDates(ticketType types.TicketType, tier types.UpgradeTier, horizonDays int) []types.DealDate {
	start := f.engine.Today()
	deals := make([]types.DealDate, 0, horizonDays)

	for offset := 0; offset < horizonDays; offset++ {
		d := start.AddDate(0, 0, offset)
		if !f.engine.IsAvailable(d).Available {
			continue
		}

		quote, err := f.engine.Quote(ticketType, tier, d)
		if err != nil {
			// Pairing not offered: no date can improve that
			return nil
		}

		deals = append(deals, types.DealDate{
			Date:      d,
			DayOfWeek: d.Weekday().String(),
			Price:     quote.CalendarPrice,
			Category:  quote.Category,
			Savings:   quote.SavingsVsPeak,
		})
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Price.LessThan(deals[j].Price)
	})

	if len(deals) > maxResults {
		deals = deals[:maxResults]
	}
	return deals
}
