// Package validate - Validation rule tests
package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/pricing"
	"ticket-upgrade/core/types"
)

var fixedToday = time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	engine := calendar.NewEngineWithClock(pricing.NewTable(), func() time.Time { return fixedToday })
	return NewValidator(engine)
}

func request(ticketType types.TicketType, tier types.UpgradeTier, date time.Time) types.SelectionRequest {
	return types.SelectionRequest{
		TicketType:    ticketType,
		Tier:          tier,
		SelectedDate:  date,
		OriginalPrice: decimal.RequireFromString("50.00"),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestValidSelection is the happy path: offered tier, bookable date,
// enough notice
func TestValidSelection(t *testing.T) {
	v := newTestValidator()

	result := v.Validate(request(types.TicketGeneral, types.TierNonStop, day(2026, time.September, 18)))
	if !result.IsValid {
		t.Fatalf("expected valid, errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 || len(result.Warnings) != 0 || len(result.Alternatives) != 0 {
		t.Errorf("expected clean result, got %+v", result)
	}
}

// TestValidationCompleteness proves all checks run: an unsupported tier
// AND an unavailable date both appear in one result
func TestValidationCompleteness(t *testing.T) {
	v := newTestValidator()

	// vip/standard is not offered; the 15th is a maintenance blackout
	result := v.Validate(request(types.TicketVIP, types.TierStandard, day(2026, time.September, 15)))

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %d, want 2 (tier and date): %v", len(result.Errors), result.Errors)
	}

	joined := strings.Join(result.Errors, " | ")
	if !strings.Contains(joined, "not available for vip tickets") {
		t.Errorf("missing tier error in %q", joined)
	}
	if !strings.Contains(joined, "2026-09-15") {
		t.Errorf("missing date error in %q", joined)
	}
}

// TestTierAlternatives proves every offered tier is suggested when the
// requested one is not
func TestTierAlternatives(t *testing.T) {
	v := newTestValidator()

	result := v.Validate(request(types.TicketVIP, types.TierStandard, day(2026, time.September, 18)))

	var tierAlts []types.Alternative
	for _, alt := range result.Alternatives {
		if alt.Kind == types.AlternativeTier {
			tierAlts = append(tierAlts, alt)
		}
	}

	if len(tierAlts) != 1 {
		t.Fatalf("tier alternatives = %d, want 1", len(tierAlts))
	}
	if tierAlts[0].Tier != types.TierDoubleFun {
		t.Errorf("alternative = %s, want double-fun", tierAlts[0].Tier)
	}
	if tierAlts[0].TierName != "Double Fun Package" {
		t.Errorf("alternative name = %q", tierAlts[0].TierName)
	}
}

// TestDateAlternatives proves an unavailable date suggests up to three
// better-priced dates
func TestDateAlternatives(t *testing.T) {
	v := newTestValidator()

	result := v.Validate(request(types.TicketGeneral, types.TierStandard, day(2026, time.September, 15)))
	if result.IsValid {
		t.Fatal("expected invalid result")
	}

	var dateAlts []types.Alternative
	for _, alt := range result.Alternatives {
		if alt.Kind == types.AlternativeDate {
			dateAlts = append(dateAlts, alt)
		}
	}

	if len(dateAlts) == 0 || len(dateAlts) > 3 {
		t.Fatalf("date alternatives = %d, want 1..3", len(dateAlts))
	}
	for _, alt := range dateAlts {
		if alt.Price.IsZero() {
			t.Errorf("alternative date %s has no price", alt.Date.Format("2006-01-02"))
		}
	}
}

// TestNoticeWindow proves the 48-hour rule duplicates the availability
// error at the boundary, and near dates only warn
func TestNoticeWindow(t *testing.T) {
	v := newTestValidator()

	// Selecting today violates both availability and the notice rule
	result := v.Validate(request(types.TicketGeneral, types.TierStandard, day(2026, time.September, 7)))
	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Errorf("errors = %d, want 2: %v", len(result.Errors), result.Errors)
	}

	// Three days out is valid but expedited
	result = v.Validate(request(types.TicketGeneral, types.TierStandard, day(2026, time.September, 10)))
	if !result.IsValid {
		t.Fatalf("expected valid, errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "expedited") {
		t.Errorf("warnings = %v, want expedited notice", result.Warnings)
	}

	// A week out is quiet
	result = v.Validate(request(types.TicketGeneral, types.TierStandard, day(2026, time.September, 18)))
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

// TestCustomerContextAdvisories proves context hints warn but never block
func TestCustomerContextAdvisories(t *testing.T) {
	v := newTestValidator()

	req := request(types.TicketGeneral, types.TierStandard, day(2026, time.September, 18))
	req.CustomerContext = map[string]interface{}{
		"has_pending_upgrades": true,
		"customer_tier":        "vip",
	}

	result := v.Validate(req)
	if !result.IsValid {
		t.Fatalf("context must never invalidate, errors: %v", result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("warnings = %d, want 2: %v", len(result.Warnings), result.Warnings)
	}

	joined := strings.Join(result.Warnings, " | ")
	if !strings.Contains(joined, "pending upgrade") {
		t.Errorf("missing pending-upgrade warning in %q", joined)
	}
	if !strings.Contains(joined, "premium upgrade options") {
		t.Errorf("missing vip advisory in %q", joined)
	}
}

// TestVIPAdvisoryOnlyForLowestTier proves the vip hint stays silent on
// higher tiers
func TestVIPAdvisoryOnlyForLowestTier(t *testing.T) {
	v := newTestValidator()

	req := request(types.TicketGeneral, types.TierDoubleFun, day(2026, time.September, 18))
	req.CustomerContext = map[string]interface{}{"customer_tier": "vip"}

	result := v.Validate(req)
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}
