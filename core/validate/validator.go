// Package validate - Selection validation
// Runs every business rule against a selection and accumulates errors,
// warnings and alternative suggestions. Checks never short-circuit: the
// caller always receives the complete picture in one call.
package validate

import (
	"fmt"

	"go.uber.org/zap"

	"ticket-upgrade/core/bestdeal"
	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/catalog"
	"ticket-upgrade/core/types"
	"ticket-upgrade/internal/logging"
)

// Horizon and cutoff constants for alternative-date suggestions
const (
	alternativeHorizonDays = 14
	maxDateAlternatives    = 3
	expeditedNoticeDays    = 7
	minNoticeDays          = 2
)

// Validator checks upgrade selections against all business rules
type Validator struct {
	engine *calendar.Engine
	finder *bestdeal.Finder
}

// NewValidator creates a validator over a calendar engine
func NewValidator(engine *calendar.Engine) *Validator {
	return &Validator{
		engine: engine,
		finder: bestdeal.NewFinder(engine),
	}
}

// Validate runs all rules against a selection request.
// IsValid is true iff no rule produced an error; warnings and
// alternatives never affect validity.
func (v *Validator) Validate(req types.SelectionRequest) types.ValidationResult {
	result := types.ValidationResult{
		Errors:       []string{},
		Warnings:     []string{},
		Alternatives: []types.Alternative{},
	}

	v.checkTierOffered(req, &result)
	v.checkDateAvailable(req, &result)
	v.checkTiming(req, &result)
	v.checkCustomerContext(req, &result)

	result.IsValid = len(result.Errors) == 0

	logging.Debug("selection validated",
		zap.String("ticket_type", req.TicketType.String()),
		zap.String("tier", req.Tier.String()),
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))

	return result
}

// checkTierOffered verifies the tier exists in the price table for this
// ticket type; on failure every offered tier is suggested instead.
func (v *Validator) checkTierOffered(req types.SelectionRequest, result *types.ValidationResult) {
	available := v.engine.Table().AvailableTiers(req.TicketType)

	for _, entry := range available {
		if entry.Tier == req.Tier {
			return
		}
	}

	result.Errors = append(result.Errors,
		fmt.Sprintf("Upgrade to %s not available for %s tickets", req.Tier, req.TicketType))

	for _, entry := range available {
		info := catalog.MustDescribe(entry.Tier)
		result.Alternatives = append(result.Alternatives, types.Alternative{
			Kind:     types.AlternativeTier,
			Tier:     entry.Tier,
			TierName: info.Name,
		})
	}
}

// checkDateAvailable verifies the date itself is bookable; on failure the
// top best-priced dates over a fixed horizon are suggested instead.
func (v *Validator) checkDateAvailable(req types.SelectionRequest, result *types.ValidationResult) {
	availability := v.engine.IsAvailable(req.SelectedDate)
	if availability.Available {
		return
	}

	result.Errors = append(result.Errors,
		fmt.Sprintf("Upgrades not available on %s: %s",
			calendar.DateOnly(req.SelectedDate).Format("2006-01-02"), availability.Reason))

	deals := v.finder.BestDates(req.TicketType, req.Tier, alternativeHorizonDays)
	if len(deals) > maxDateAlternatives {
		deals = deals[:maxDateAlternatives]
	}
	for _, deal := range deals {
		result.Alternatives = append(result.Alternatives, types.Alternative{
			Kind:  types.AlternativeDate,
			Date:  deal.Date,
			Price: deal.Price,
		})
	}
}

// checkTiming enforces the 48-hour notice window. The error case overlaps
// the availability check at the boundary; both are reported.
func (v *Validator) checkTiming(req types.SelectionRequest, result *types.ValidationResult) {
	daysUntil := v.engine.DaysUntil(req.SelectedDate)

	if daysUntil < minNoticeDays {
		result.Errors = append(result.Errors, "Upgrades require at least 48 hours notice")
	} else if daysUntil < expeditedNoticeDays {
		result.Warnings = append(result.Warnings,
			"Upgrade processing may be expedited due to proximity to event")
	}
}

// checkCustomerContext emits best-effort advisories from caller-supplied
// hints. Context issues never produce errors.
func (v *Validator) checkCustomerContext(req types.SelectionRequest, result *types.ValidationResult) {
	ctx := req.CustomerContext
	if ctx == nil {
		return
	}

	if pending, ok := ctx["has_pending_upgrades"].(bool); ok && pending {
		result.Warnings = append(result.Warnings, "You have other pending upgrade requests")
	}

	if tier, ok := ctx["customer_tier"].(string); ok && tier == "vip" && req.Tier == types.TierStandard {
		result.Warnings = append(result.Warnings,
			"As a VIP customer, you may prefer our premium upgrade options")
	}
}
