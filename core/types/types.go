// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"strings"

	"ticket-upgrade/internal/errors"
)

// TicketType represents the category of the originally purchased ticket
type TicketType string

const (
	TicketGeneral  TicketType = "general"
	TicketStandard TicketType = "standard"
	TicketVIP      TicketType = "vip"
	TicketPremium  TicketType = "premium"
)

// String returns the string representation of the ticket type
func (t TicketType) String() string {
	return string(t)
}

// IsValid checks if the ticket type is known
func (t TicketType) IsValid() bool {
	switch t {
	case TicketGeneral, TicketStandard, TicketVIP, TicketPremium:
		return true
	default:
		return false
	}
}

// ParseTicketType converts a string into a TicketType.
// Unknown values are a caller programming error and fail fast.
func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.Newf(errors.TypeInput, "unknown ticket type: %q", s)
	}
	return t, nil
}

// UpgradeTier represents the target service level of an upgrade
type UpgradeTier string

const (
	TierStandard  UpgradeTier = "standard"
	TierNonStop   UpgradeTier = "non-stop"
	TierDoubleFun UpgradeTier = "double-fun"
)

// String returns the string representation of the upgrade tier
func (u UpgradeTier) String() string {
	return string(u)
}

// IsValid checks if the upgrade tier is known
func (u UpgradeTier) IsValid() bool {
	switch u {
	case TierStandard, TierNonStop, TierDoubleFun:
		return true
	default:
		return false
	}
}

// ParseUpgradeTier converts a string into an UpgradeTier.
// Accepts "non stop", "non_stop" and "non-stop" spellings alike.
func ParseUpgradeTier(s string) (UpgradeTier, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	u := UpgradeTier(normalized)
	if !u.IsValid() {
		return "", errors.Newf(errors.TypeInput, "unknown upgrade tier: %q", s)
	}
	return u, nil
}
