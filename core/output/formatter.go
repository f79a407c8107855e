// Package output provides output formatting for engine results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ticket-upgrade/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable text rendering
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// dateLayout is the display layout for calendar dates
const dateLayout = "2006-01-02"

// WriteJSON renders any engine result as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteQuote renders a pricing quote as text
func WriteQuote(w io.Writer, q types.PricingQuote) error {
	_, err := fmt.Fprintf(w,
		"Upgrade quote: %s -> %s on %s (%s)\n"+
			"  Category:       %s (x%s)\n"+
			"  Base price:     $%s\n"+
			"  Calendar price: $%s\n"+
			"  Vs peak rate:   $%s\n",
		q.TicketType, q.Tier,
		q.Date.Format(dateLayout), q.Date.Weekday(),
		q.Category, q.Multiplier.String(),
		q.BasePrice.StringFixed(2),
		q.CalendarPrice.StringFixed(2),
		q.SavingsVsPeak.StringFixed(2))
	return err
}

// WriteValidation renders a validation result as text
func WriteValidation(w io.Writer, r types.ValidationResult) error {
	if r.IsValid {
		if _, err := fmt.Fprintln(w, "Selection is valid."); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "Selection is NOT valid."); err != nil {
			return err
		}
	}

	for _, e := range r.Errors {
		if _, err := fmt.Fprintf(w, "  error:   %s\n", e); err != nil {
			return err
		}
	}
	for _, warning := range r.Warnings {
		if _, err := fmt.Fprintf(w, "  warning: %s\n", warning); err != nil {
			return err
		}
	}
	for _, alt := range r.Alternatives {
		var err error
		switch alt.Kind {
		case types.AlternativeTier:
			_, err = fmt.Fprintf(w, "  try instead: %s (%s)\n", alt.TierName, alt.Tier)
		case types.AlternativeDate:
			_, err = fmt.Fprintf(w, "  try instead: %s ($%s)\n",
				alt.Date.Format(dateLayout), alt.Price.StringFixed(2))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteDeals renders a ranked deal list as text
func WriteDeals(w io.Writer, deals []types.DealDate) error {
	if len(deals) == 0 {
		_, err := fmt.Fprintln(w, "No available dates in the horizon.")
		return err
	}

	if _, err := fmt.Fprintln(w, "Best upgrade dates:"); err != nil {
		return err
	}
	for i, d := range deals {
		if _, err := fmt.Fprintf(w, "  %2d. %s %-9s $%s (%s, %s vs peak)\n",
			i+1, d.Date.Format(dateLayout), d.DayOfWeek,
			d.Price.StringFixed(2), d.Category,
			d.Savings.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

// WriteComparison renders a tier comparison as text
func WriteComparison(w io.Writer, c types.TierComparison) error {
	if _, err := fmt.Fprintf(w, "Tier comparison for %s tickets on %s:\n",
		c.TicketType, c.Date.Format(dateLayout)); err != nil {
		return err
	}

	for _, row := range c.Rows {
		marker := " "
		if row.Available && row.Tier == c.RecommendedTier {
			marker = "*"
		}

		if !row.Available {
			if _, err := fmt.Fprintf(w, "  %s %-20s unavailable (%s)\n",
				marker, row.Name, row.Reason); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "  %s %-20s $%s (score %s) - %s\n",
			marker, row.Name,
			row.Quote.CalendarPrice.StringFixed(2),
			row.ValueScore.String(),
			strings.Join(row.Features, ", ")); err != nil {
			return err
		}
	}

	if c.RecommendedTier != "" {
		if _, err := fmt.Fprintf(w, "Recommended: %s (best value for features and pricing)\n",
			c.RecommendedTier); err != nil {
			return err
		}
	}
	return nil
}

// WriteCalendar renders an availability calendar as text
func WriteCalendar(w io.Writer, cal types.AvailabilityCalendar) error {
	if _, err := fmt.Fprintf(w, "Availability %s to %s:\n",
		cal.StartDate.Format(dateLayout), cal.EndDate.Format(dateLayout)); err != nil {
		return err
	}

	for _, day := range cal.Days {
		status := "available"
		if !day.Available {
			status = day.Reason
		}
		if _, err := fmt.Fprintf(w, "  %s %-9s %-8s x%-4s %s\n",
			day.Date.Format(dateLayout), day.DayOfWeek,
			day.Category, day.Multiplier.String(), status); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary renders a selection summary as text
func WriteSummary(w io.Writer, s types.SelectionSummary) error {
	_, err := fmt.Fprintf(w,
		"Selection %s confirmed\n"+
			"  Ticket:   %s ($%s)\n"+
			"  Upgrade:  %s on %s (%s)\n"+
			"  Features: %s\n"+
			"  Upgrade price: $%s (%s, base $%s)\n"+
			"  Total price:   $%s\n"+
			"  Next steps:    %s\n",
		s.SelectionID,
		s.TicketType, s.OriginalPrice.StringFixed(2),
		s.TierName, s.SelectedDate.Format(dateLayout), s.DayOfWeek,
		strings.Join(s.Features, ", "),
		s.Quote.CalendarPrice.StringFixed(2), s.Quote.Category, s.Quote.BasePrice.StringFixed(2),
		s.TotalPrice.StringFixed(2),
		strings.Join(s.NextSteps, "; "))
	return err
}
