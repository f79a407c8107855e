// Package calendar - Calendar pricing engine
// Classifies dates into pricing categories, applies multipliers and
// decides date-level availability. Pure and re-entrant: the only state
// is the immutable price table and an injectable clock.
package calendar

import (
	"time"

	"ticket-upgrade/core/pricing"
	"ticket-upgrade/core/types"
	"ticket-upgrade/internal/errors"
)

// Availability reason strings surfaced to customers
const (
	ReasonPast        = "Past date - upgrades not available"
	ReasonTooSoon     = "Too close to event - upgrades require 48+ hours notice"
	ReasonMaintenance = "System maintenance day - upgrades unavailable"
	ReasonAvailable   = "Upgrades available"
)

// maintenanceDay is the recurring monthly blackout day
const maintenanceDay = 15

// minNoticeDays is the minimum booking horizon in days
const minNoticeDays = 2

// peakWindow is a fixed month/day range, year-independent
type peakWindow struct {
	month    time.Month
	startDay int
	endDay   int
}

// Peak season windows: Christmas/New Year, summer peak, Thanksgiving week
var peakWindows = []peakWindow{
	{month: time.December, startDay: 20, endDay: 31},
	{month: time.July, startDay: 1, endDay: 15},
	{month: time.November, startDay: 20, endDay: 30},
}

// Off-peak months: Tue/Wed in these months price below standard
var offPeakMonths = map[time.Month]bool{
	time.January:   true,
	time.February:  true,
	time.March:     true,
	time.September: true,
	time.October:   true,
}

// NowFunc supplies the current time; injectable for tests
type NowFunc func() time.Time

// Engine prices upgrades against the calendar
type Engine struct {
	table *pricing.Table
	now   NowFunc
}

// NewEngine creates a calendar pricing engine backed by the given table
func NewEngine(table *pricing.Table) *Engine {
	return NewEngineWithClock(table, time.Now)
}

// NewEngineWithClock creates an engine with an explicit clock
func NewEngineWithClock(table *pricing.Table, now NowFunc) *Engine {
	return &Engine{table: table, now: now}
}

// Table exposes the underlying price table
func (e *Engine) Table() *pricing.Table {
	return e.table
}

// Today returns the engine's current date, normalized to midnight UTC
func (e *Engine) Today() time.Time {
	return DateOnly(e.now())
}

// DateOnly strips the time-of-day component for date comparisons
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns whole days from the engine's today to a date
func (e *Engine) DaysUntil(date time.Time) int {
	return int(DateOnly(date).Sub(e.Today()).Hours() / 24)
}

// Categorize classifies a date into its pricing category.
// Precedence is fixed: weekend, then peak, then off-peak, then standard.
// A weekend day inside a peak window is weekend, not peak.
func (e *Engine) Categorize(date time.Time) types.PricingCategory {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return types.CategoryWeekend
	}

	month, day := date.Month(), date.Day()
	for _, w := range peakWindows {
		if month == w.month && day >= w.startDay && day <= w.endDay {
			return types.CategoryPeak
		}
	}

	if (date.Weekday() == time.Tuesday || date.Weekday() == time.Wednesday) && offPeakMonths[month] {
		return types.CategoryOffPeak
	}

	return types.CategoryStandard
}

// IsAvailable decides date-level availability, independent of category.
// A date is unavailable when it lies in the past, falls inside the
// minimum-notice horizon, or hits the monthly maintenance blackout.
func (e *Engine) IsAvailable(date time.Time) types.DateAvailability {
	d := DateOnly(date)
	today := e.Today()

	switch {
	case d.Before(today):
		return types.DateAvailability{Date: d, Available: false, Reason: ReasonPast}
	case e.DaysUntil(d) < minNoticeDays:
		return types.DateAvailability{Date: d, Available: false, Reason: ReasonTooSoon}
	case d.Day() == maintenanceDay:
		return types.DateAvailability{Date: d, Available: false, Reason: ReasonMaintenance}
	}

	return types.DateAvailability{Date: d, Available: true, Reason: ReasonAvailable}
}

// Quote prices one upgrade on one date. Returns a NOT_OFFERED error when
// the price table has no entry for the pairing, regardless of date.
func (e *Engine) Quote(ticketType types.TicketType, tier types.UpgradeTier, date time.Time) (types.PricingQuote, error) {
	base, ok := e.table.PriceFor(ticketType, tier)
	if !ok {
		return types.PricingQuote{}, errors.NotOffered(ticketType.String(), tier.String())
	}

	d := DateOnly(date)
	category := e.Categorize(d)
	multiplier := category.Multiplier()
	calendarPrice := base.Mul(multiplier)
	peakPrice := base.Mul(types.CategoryPeak.Multiplier())

	return types.PricingQuote{
		Date:          d,
		TicketType:    ticketType,
		Tier:          tier,
		Category:      category,
		Multiplier:    multiplier,
		BasePrice:     base,
		CalendarPrice: calendarPrice,
		SavingsVsPeak: calendarPrice.Sub(peakPrice),
	}, nil
}

// Calendar builds the day-by-day availability calendar for a ticket type,
// with per-tier calendar pricing on bookable days.
func (e *Engine) Calendar(ticketType types.TicketType, start time.Time, daysAhead int) types.AvailabilityCalendar {
	startDate := DateOnly(start)

	cal := types.AvailabilityCalendar{
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, daysAhead-1),
		Days:      make([]types.CalendarDay, 0, daysAhead),
		Legend: map[types.PricingCategory]string{
			types.CategoryStandard: types.CategoryStandard.Description(),
			types.CategoryWeekend:  types.CategoryWeekend.Description(),
			types.CategoryPeak:     types.CategoryPeak.Description(),
			types.CategoryOffPeak:  types.CategoryOffPeak.Description(),
		},
	}

	for offset := 0; offset < daysAhead; offset++ {
		d := startDate.AddDate(0, 0, offset)
		availability := e.IsAvailable(d)
		category := e.Categorize(d)

		day := types.CalendarDay{
			Date:       d,
			DayOfWeek:  d.Weekday().String(),
			Available:  availability.Available,
			Reason:     availability.Reason,
			Category:   category,
			Multiplier: category.Multiplier(),
		}

		if availability.Available {
			for _, entry := range e.table.AvailableTiers(ticketType) {
				quote, err := e.Quote(ticketType, entry.Tier, d)
				if err != nil {
					continue
				}
				day.Options = append(day.Options, quote)
			}
		}

		cal.Days = append(cal.Days, day)
	}

	return cal
}
