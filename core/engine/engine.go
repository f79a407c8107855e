// Package engine - Upgrade engine facade
// Wires the price table, calendar engine, validator, deal finder and
// comparison builder behind one entry point, and runs the end-to-end
// selection workflow.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ticket-upgrade/core/bestdeal"
	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/catalog"
	"ticket-upgrade/core/compare"
	"ticket-upgrade/core/pricing"
	"ticket-upgrade/core/types"
	"ticket-upgrade/core/validate"
	"ticket-upgrade/internal/logging"
)

// Engine bundles every component of the upgrade engine
type Engine struct {
	table     *pricing.Table
	calendar  *calendar.Engine
	validator *validate.Validator
	finder    *bestdeal.Finder
	builder   *compare.Builder
}

// New creates an engine with the standard price table and wall clock
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock creates an engine with an explicit clock for tests
func NewWithClock(now calendar.NowFunc) *Engine {
	table := pricing.NewTable()
	cal := calendar.NewEngineWithClock(table, now)

	return &Engine{
		table:     table,
		calendar:  cal,
		validator: validate.NewValidator(cal),
		finder:    bestdeal.NewFinder(cal),
		builder:   compare.NewBuilder(cal),
	}
}

// Table returns the tier price table
func (e *Engine) Table() *pricing.Table {
	return e.table
}

// Calendar returns the calendar pricing engine
func (e *Engine) Calendar() *calendar.Engine {
	return e.calendar
}

// Quote prices one upgrade on one date
func (e *Engine) Quote(ticketType types.TicketType, tier types.UpgradeTier, date time.Time) (types.PricingQuote, error) {
	return e.calendar.Quote(ticketType, tier, date)
}

// Validate checks a selection against all business rules
func (e *Engine) Validate(req types.SelectionRequest) types.ValidationResult {
	return e.validator.Validate(req)
}

// BestDates ranks the cheapest available dates for an upgrade
func (e *Engine) BestDates(ticketType types.TicketType, tier types.UpgradeTier, horizonDays int) []types.DealDate {
	return e.finder.BestDates(ticketType, tier, horizonDays)
}

// Compare builds the tier comparison for a date
func (e *Engine) Compare(ticketType types.TicketType, onDate time.Time) types.TierComparison {
	return e.builder.Compare(ticketType, onDate)
}

// AvailabilityCalendar builds the day-by-day calendar from today
func (e *Engine) AvailabilityCalendar(ticketType types.TicketType, daysAhead int) types.AvailabilityCalendar {
	return e.calendar.Calendar(ticketType, e.calendar.Today(), daysAhead)
}

// ProcessSelection runs the complete selection workflow: validate, price
// the chosen date, and assemble a confirmation summary. A failed
// validation returns the full result with no summary; it is not an error.
func (e *Engine) ProcessSelection(req types.SelectionRequest) (types.SelectionOutcome, error) {
	validation := e.validator.Validate(req)
	if !validation.IsValid {
		return types.SelectionOutcome{
			Success:    false,
			Validation: validation,
		}, nil
	}

	quote, err := e.calendar.Quote(req.TicketType, req.Tier, req.SelectedDate)
	if err != nil {
		// Unreachable when validation passed; kept as a guard
		return types.SelectionOutcome{}, err
	}

	info := catalog.MustDescribe(req.Tier)
	selectedDate := calendar.DateOnly(req.SelectedDate)

	summary := &types.SelectionSummary{
		SelectionID:   "SEL-" + uuid.NewString(),
		TicketType:    req.TicketType,
		OriginalPrice: req.OriginalPrice,
		Tier:          req.Tier,
		TierName:      info.Name,
		Features:      info.Features,
		SelectedDate:  selectedDate,
		DayOfWeek:     selectedDate.Weekday().String(),
		Quote:         quote,
		TotalPrice:    pricing.TotalPrice(req.OriginalPrice, quote.CalendarPrice),
		NextSteps: []string{
			"Review upgrade details",
			"Proceed to payment",
			"Receive confirmation email",
		},
	}

	logging.Info("selection processed",
		zap.String("selection_id", summary.SelectionID),
		zap.String("ticket_type", req.TicketType.String()),
		zap.String("tier", req.Tier.String()),
		zap.String("total_price", summary.TotalPrice.String()))

	return types.SelectionOutcome{
		Success:    true,
		Summary:    summary,
		Validation: validation,
	}, nil
}
