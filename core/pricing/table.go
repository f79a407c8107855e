// Package pricing - Static tier price table
// The table is the single source of truth for which upgrades are offered.
// A missing entry means "not offered", never an error.
package pricing

import (
	"github.com/shopspring/decimal"

	"ticket-upgrade/core/types"
)

// TierPrice pairs an upgrade tier with its incremental amount
type TierPrice struct {
	Tier  types.UpgradeTier `json:"tier"`
	Price decimal.Decimal   `json:"price"`
}

// Table maps (ticket type, upgrade tier) to an incremental price.
// Loaded once, immutable for the process lifetime.
type Table struct {
	entries map[types.TicketType][]TierPrice
}

// NewTable returns the standard upgrade price table
func NewTable() *Table {
	usd := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return &Table{
		entries: map[types.TicketType][]TierPrice{
			types.TicketGeneral: {
				{Tier: types.TierStandard, Price: usd("25.00")},
				{Tier: types.TierNonStop, Price: usd("50.00")},
				{Tier: types.TierDoubleFun, Price: usd("75.00")},
			},
			types.TicketStandard: {
				{Tier: types.TierNonStop, Price: usd("25.00")},
				{Tier: types.TierDoubleFun, Price: usd("50.00")},
			},
			types.TicketVIP: {
				{Tier: types.TierDoubleFun, Price: usd("25.00")},
			},
			// Premium tickets cannot be upgraded
			types.TicketPremium: {},
		},
	}
}

// PriceFor returns the incremental amount for an exact (type, tier) pairing.
// The second return is false when the upgrade is not offered.
func (t *Table) PriceFor(ticketType types.TicketType, tier types.UpgradeTier) (decimal.Decimal, bool) {
	for _, entry := range t.entries[ticketType] {
		if entry.Tier == tier {
			return entry.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// AvailableTiers returns every tier offered for a ticket type, in
// declaration order. This order doubles as the canonical listing order
// for alternatives. Unknown or non-upgradeable types yield an empty slice.
func (t *Table) AvailableTiers(ticketType types.TicketType) []TierPrice {
	entries := t.entries[ticketType]
	out := make([]TierPrice, len(entries))
	copy(out, entries)
	return out
}

// Offers reports whether any upgrade exists for a ticket type
func (t *Table) Offers(ticketType types.TicketType) bool {
	return len(t.entries[ticketType]) > 0
}

// TotalPrice returns the original ticket price plus an upgrade price
func TotalPrice(original, upgrade decimal.Decimal) decimal.Decimal {
	return original.Add(upgrade)
}
