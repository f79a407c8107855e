// Package api - Request and response shapes
package api

import (
	"time"

	"ticket-upgrade/core/types"
	"ticket-upgrade/internal/errors"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// QuoteRequest asks for pricing on one date
type QuoteRequest struct {
	TicketType string `json:"ticket_type"`
	Tier       string `json:"upgrade_tier"`
	Date       string `json:"date"`
}

// SelectionPayload is the wire form of a selection request
type SelectionPayload struct {
	TicketType      string                 `json:"ticket_type"`
	Tier            string                 `json:"upgrade_tier"`
	SelectedDate    string                 `json:"selected_date"`
	OriginalPrice   string                 `json:"original_price"`
	CustomerContext map[string]interface{} `json:"customer_context,omitempty"`
}

// ResponseMetadata carries per-request execution context
type ResponseMetadata struct {
	RequestID  string    `json:"request_id"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
	Version    string    `json:"version"`
}

// QuoteResponse wraps a pricing quote
type QuoteResponse struct {
	Quote    types.PricingQuote `json:"quote"`
	Metadata ResponseMetadata   `json:"metadata"`
}

// ValidateResponse wraps a validation result
type ValidateResponse struct {
	Result   types.ValidationResult `json:"result"`
	Metadata ResponseMetadata       `json:"metadata"`
}

// SelectResponse wraps a selection outcome
type SelectResponse struct {
	Outcome  types.SelectionOutcome `json:"outcome"`
	Metadata ResponseMetadata       `json:"metadata"`
}

// ComparisonResponse wraps a tier comparison
type ComparisonResponse struct {
	Comparison types.TierComparison `json:"comparison"`
	Metadata   ResponseMetadata     `json:"metadata"`
}

// BestDatesResponse wraps a ranked deal list
type BestDatesResponse struct {
	Deals    []types.DealDate `json:"deals"`
	Metadata ResponseMetadata `json:"metadata"`
}

// CalendarResponse wraps an availability calendar
type CalendarResponse struct {
	Calendar types.AvailabilityCalendar `json:"calendar"`
	Metadata ResponseMetadata           `json:"metadata"`
}

// parseDate parses a wire date, failing fast on malformed input
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.Newf(errors.TypeInput, "invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
