// Package pricing - Price table invariant tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"ticket-upgrade/core/types"
)

// TestTableCompleteness proves AvailableTiers and PriceFor agree in both
// directions: every listed tier has a price, and every priced pairing is
// listed.
func TestTableCompleteness(t *testing.T) {
	table := NewTable()

	allTypes := []types.TicketType{
		types.TicketGeneral, types.TicketStandard, types.TicketVIP, types.TicketPremium,
	}
	allTiers := []types.UpgradeTier{
		types.TierStandard, types.TierNonStop, types.TierDoubleFun,
	}

	for _, ticketType := range allTypes {
		listed := map[types.UpgradeTier]bool{}
		for _, entry := range table.AvailableTiers(ticketType) {
			listed[entry.Tier] = true
			price, ok := table.PriceFor(ticketType, entry.Tier)
			if !ok {
				t.Errorf("%s/%s listed but PriceFor says not offered", ticketType, entry.Tier)
			}
			if !price.Equal(entry.Price) {
				t.Errorf("%s/%s listed price %s != PriceFor %s", ticketType, entry.Tier, entry.Price, price)
			}
		}

		for _, tier := range allTiers {
			if _, ok := table.PriceFor(ticketType, tier); ok && !listed[tier] {
				t.Errorf("%s/%s priced but missing from AvailableTiers", ticketType, tier)
			}
		}
	}
}

// TestPriceMatrix checks the exact incremental amounts
func TestPriceMatrix(t *testing.T) {
	table := NewTable()

	cases := []struct {
		ticketType types.TicketType
		tier       types.UpgradeTier
		want       string
	}{
		{types.TicketGeneral, types.TierStandard, "25.00"},
		{types.TicketGeneral, types.TierNonStop, "50.00"},
		{types.TicketGeneral, types.TierDoubleFun, "75.00"},
		{types.TicketStandard, types.TierNonStop, "25.00"},
		{types.TicketStandard, types.TierDoubleFun, "50.00"},
		{types.TicketVIP, types.TierDoubleFun, "25.00"},
	}

	for _, tc := range cases {
		price, ok := table.PriceFor(tc.ticketType, tc.tier)
		if !ok {
			t.Fatalf("%s/%s unexpectedly not offered", tc.ticketType, tc.tier)
		}
		if price.String() != decimal.RequireFromString(tc.want).String() {
			t.Errorf("%s/%s price = %s, want %s", tc.ticketType, tc.tier, price, tc.want)
		}
	}
}

// TestNotOfferedPairings proves absent entries surface as "not offered",
// never an error
func TestNotOfferedPairings(t *testing.T) {
	table := NewTable()

	notOffered := []struct {
		ticketType types.TicketType
		tier       types.UpgradeTier
	}{
		{types.TicketStandard, types.TierStandard},
		{types.TicketVIP, types.TierStandard},
		{types.TicketVIP, types.TierNonStop},
		{types.TicketPremium, types.TierStandard},
		{types.TicketPremium, types.TierNonStop},
		{types.TicketPremium, types.TierDoubleFun},
	}

	for _, tc := range notOffered {
		if _, ok := table.PriceFor(tc.ticketType, tc.tier); ok {
			t.Errorf("%s/%s should not be offered", tc.ticketType, tc.tier)
		}
	}
}

// TestPremiumHasNoUpgrades proves the highest-tier ticket yields an
// empty list, not an error
func TestPremiumHasNoUpgrades(t *testing.T) {
	table := NewTable()

	if tiers := table.AvailableTiers(types.TicketPremium); len(tiers) != 0 {
		t.Errorf("premium should have no upgrades, got %d", len(tiers))
	}
	if table.Offers(types.TicketPremium) {
		t.Error("Offers(premium) should be false")
	}
}

// TestAvailableTiersOrder proves declaration order is preserved
func TestAvailableTiersOrder(t *testing.T) {
	table := NewTable()

	tiers := table.AvailableTiers(types.TicketGeneral)
	want := []types.UpgradeTier{types.TierStandard, types.TierNonStop, types.TierDoubleFun}

	if len(tiers) != len(want) {
		t.Fatalf("general tiers = %d, want %d", len(tiers), len(want))
	}
	for i, entry := range tiers {
		if entry.Tier != want[i] {
			t.Errorf("tier[%d] = %s, want %s", i, entry.Tier, want[i])
		}
	}
}

// TestTotalPrice checks exact decimal addition
func TestTotalPrice(t *testing.T) {
	total := TotalPrice(decimal.RequireFromString("50.00"), decimal.RequireFromString("60.00"))
	if total.String() != "110" {
		t.Errorf("total = %s, want 110", total)
	}
}
