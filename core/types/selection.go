// Package types - Selection and validation types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectionRequest is a customer's chosen upgrade, ready for validation
type SelectionRequest struct {
	// TicketType is the base ticket type, already resolved by the caller
	TicketType TicketType `json:"ticket_type"`

	// Tier is the requested upgrade tier
	Tier UpgradeTier `json:"upgrade_tier"`

	// SelectedDate is the calendar date chosen for the upgrade
	SelectedDate time.Time `json:"selected_date"`

	// OriginalPrice is the price paid for the base ticket
	OriginalPrice decimal.Decimal `json:"original_price"`

	// CustomerContext carries optional advisory hints such as
	// "has_pending_upgrades" or "customer_tier". Consumed only to
	// produce warnings, never errors.
	CustomerContext map[string]interface{} `json:"customer_context,omitempty"`
}

// AlternativeKind distinguishes tier suggestions from date suggestions
type AlternativeKind string

const (
	AlternativeTier AlternativeKind = "tier"
	AlternativeDate AlternativeKind = "date"
)

// Alternative is a suggested substitute for a rejected selection
type Alternative struct {
	// Kind indicates whether this suggests another tier or another date
	Kind AlternativeKind `json:"type"`

	// Tier is set for tier alternatives
	Tier UpgradeTier `json:"tier,omitempty"`

	// TierName is the display name for tier alternatives
	TierName string `json:"name,omitempty"`

	// Date is set for date alternatives
	Date time.Time `json:"date,omitempty"`

	// Price is the calendar price for date alternatives
	Price decimal.Decimal `json:"price,omitempty"`
}

// ValidationResult aggregates every rule outcome for one selection.
// All checks run; the caller always sees the complete picture.
type ValidationResult struct {
	// IsValid is true iff Errors is empty
	IsValid bool `json:"is_valid"`

	// Errors lists business-rule violations
	Errors []string `json:"errors"`

	// Warnings lists advisory notices that never block the selection
	Warnings []string `json:"warnings"`

	// Alternatives suggests other tiers or better-priced dates
	Alternatives []Alternative `json:"alternatives"`
}

// ComparisonRow is one tier's entry in a tier comparison
type ComparisonRow struct {
	// Tier is the upgrade tier this row describes
	Tier UpgradeTier `json:"tier"`

	// Name is the tier display name
	Name string `json:"name"`

	// Description is the tier marketing description
	Description string `json:"description"`

	// Features lists the tier's included benefits
	Features []string `json:"features"`

	// Available indicates whether the tier is offered for the ticket type
	Available bool `json:"available"`

	// Quote carries pricing when the tier is available
	Quote *PricingQuote `json:"pricing,omitempty"`

	// ValueScore ranks benefit richness against price when available
	ValueScore *decimal.Decimal `json:"value_score,omitempty"`

	// Reason explains unavailability
	Reason string `json:"reason,omitempty"`
}

// TierComparison is the full comparison across the canonical tier order
type TierComparison struct {
	// TicketType is the base ticket type compared against
	TicketType TicketType `json:"ticket_type"`

	// Date is the date the comparison was priced for
	Date time.Time `json:"comparison_date"`

	// Rows holds one entry per tier in canonical order
	Rows []ComparisonRow `json:"tiers"`

	// RecommendedTier is the available tier with the highest value score.
	// Empty when no tier is available.
	RecommendedTier UpgradeTier `json:"recommended_tier,omitempty"`
}

// SelectionSummary is the confirmed outcome of a successful selection
type SelectionSummary struct {
	// SelectionID uniquely identifies this selection
	SelectionID string `json:"selection_id"`

	// TicketType is the base ticket type
	TicketType TicketType `json:"ticket_type"`

	// OriginalPrice is the base ticket price
	OriginalPrice decimal.Decimal `json:"original_price"`

	// Tier is the confirmed upgrade tier
	Tier UpgradeTier `json:"upgrade_tier"`

	// TierName is the tier display name
	TierName string `json:"tier_name"`

	// Features lists the tier's included benefits
	Features []string `json:"features"`

	// SelectedDate is the confirmed calendar date
	SelectedDate time.Time `json:"selected_date"`

	// DayOfWeek is the weekday name of the selected date
	DayOfWeek string `json:"day_of_week"`

	// Quote is the priced breakdown for the selected date
	Quote PricingQuote `json:"pricing"`

	// TotalPrice is OriginalPrice plus the calendar upgrade price
	TotalPrice decimal.Decimal `json:"total_price"`

	// NextSteps lists what happens after confirmation
	NextSteps []string `json:"next_steps"`
}

// SelectionOutcome wraps either a summary or the failed validation
type SelectionOutcome struct {
	// Success indicates whether the selection passed validation
	Success bool `json:"success"`

	// Summary is populated on success
	Summary *SelectionSummary `json:"selection_summary,omitempty"`

	// Validation is always populated so callers see warnings either way
	Validation ValidationResult `json:"validation_result"`
}
