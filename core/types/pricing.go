// Package types - Pricing types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingCategory classifies a calendar date for pricing purposes
type PricingCategory string

const (
	CategoryStandard PricingCategory = "standard"
	CategoryWeekend  PricingCategory = "weekend"
	CategoryPeak     PricingCategory = "peak"
	CategoryOffPeak  PricingCategory = "off_peak"
)

// String returns the string representation of the category
func (c PricingCategory) String() string {
	return string(c)
}

// Multiplier returns the fixed price multiplier bound to the category
func (c PricingCategory) Multiplier() decimal.Decimal {
	switch c {
	case CategoryWeekend:
		return decimal.RequireFromString("1.2")
	case CategoryPeak:
		return decimal.RequireFromString("1.5")
	case CategoryOffPeak:
		return decimal.RequireFromString("0.9")
	default:
		return decimal.NewFromInt(1)
	}
}

// Description returns the customer-facing pricing legend entry
func (c PricingCategory) Description() string {
	switch c {
	case CategoryWeekend:
		return "+20% weekend premium"
	case CategoryPeak:
		return "+50% peak season"
	case CategoryOffPeak:
		return "-10% off-peak discount"
	default:
		return "Regular pricing"
	}
}

// PricingQuote is the calendar-adjusted price for one upgrade on one date
type PricingQuote struct {
	// Date is the calendar date the quote applies to
	Date time.Time `json:"date"`

	// TicketType is the base ticket type
	TicketType TicketType `json:"ticket_type"`

	// Tier is the target upgrade tier
	Tier UpgradeTier `json:"upgrade_tier"`

	// Category is the pricing classification of the date
	Category PricingCategory `json:"pricing_category"`

	// Multiplier is the category's price multiplier
	Multiplier decimal.Decimal `json:"multiplier"`

	// BasePrice is the incremental amount before calendar modulation
	BasePrice decimal.Decimal `json:"base_price"`

	// CalendarPrice is BasePrice scaled by the multiplier
	CalendarPrice decimal.Decimal `json:"calendar_price"`

	// SavingsVsPeak is CalendarPrice minus the peak-rate price.
	// Negative on any non-peak date.
	SavingsVsPeak decimal.Decimal `json:"savings_vs_peak"`
}

// DateAvailability reports whether upgrades can be booked on a date
type DateAvailability struct {
	// Date is the calendar date checked
	Date time.Time `json:"date"`

	// Available indicates whether upgrades can be booked
	Available bool `json:"available"`

	// Reason is a human-readable availability explanation
	Reason string `json:"reason"`
}

// DealDate is one entry in a ranked list of cheap upgrade dates
type DealDate struct {
	// Date is the candidate date
	Date time.Time `json:"date"`

	// DayOfWeek is the weekday name for display
	DayOfWeek string `json:"day_of_week"`

	// Price is the calendar-adjusted upgrade price on this date
	Price decimal.Decimal `json:"price"`

	// Category is the pricing classification of the date
	Category PricingCategory `json:"category"`

	// Savings is the price delta versus peak rate
	Savings decimal.Decimal `json:"savings"`
}

// CalendarDay is one day of the availability calendar
type CalendarDay struct {
	// Date is the calendar date
	Date time.Time `json:"date"`

	// DayOfWeek is the weekday name
	DayOfWeek string `json:"day_of_week"`

	// Available indicates whether upgrades can be booked
	Available bool `json:"is_available"`

	// Reason explains the availability status
	Reason string `json:"availability_reason"`

	// Category is the pricing classification
	Category PricingCategory `json:"pricing_category"`

	// Multiplier is the category's price multiplier
	Multiplier decimal.Decimal `json:"price_multiplier"`

	// Options lists per-tier calendar pricing for available days
	Options []PricingQuote `json:"upgrade_options,omitempty"`
}

// AvailabilityCalendar covers a contiguous date range
type AvailabilityCalendar struct {
	// StartDate is the first day of the range (inclusive)
	StartDate time.Time `json:"start_date"`

	// EndDate is the last day of the range (inclusive)
	EndDate time.Time `json:"end_date"`

	// Days holds one entry per day in order
	Days []CalendarDay `json:"availability"`

	// Legend maps categories to customer-facing descriptions
	Legend map[PricingCategory]string `json:"pricing_legend"`
}
