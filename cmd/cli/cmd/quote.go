// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ticket-upgrade/core/calendar"
	"ticket-upgrade/core/engine"
	"ticket-upgrade/core/output"
	"ticket-upgrade/core/types"
)

var (
	quoteType   string
	quoteTier   string
	quoteDate   string
	quoteFormat string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price an upgrade for a specific date",
	Long: `Price an upgrade from a ticket type to a tier on a calendar date.

The price is the tier's incremental amount scaled by the date's pricing
category (standard, weekend, peak or off-peak).

Examples:
  ticket-upgrade quote --type general --tier non-stop --date 2026-09-11
  ticket-upgrade quote --type vip --tier double-fun --date 2026-12-24 --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteType, "type", "t", "", "ticket type (general, standard, vip, premium)")
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "u", "", "upgrade tier (standard, non-stop, double-fun)")
	quoteCmd.Flags().StringVarP(&quoteDate, "date", "d", "", "upgrade date (YYYY-MM-DD)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "text", "output format (text, json)")
	_ = quoteCmd.MarkFlagRequired("type")
	_ = quoteCmd.MarkFlagRequired("tier")
	_ = quoteCmd.MarkFlagRequired("date")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ticketType, err := types.ParseTicketType(quoteType)
	if err != nil {
		return err
	}
	tier, err := types.ParseUpgradeTier(quoteTier)
	if err != nil {
		return err
	}
	date, err := parseCLIDate(quoteDate)
	if err != nil {
		return err
	}

	quote, err := engine.New().Quote(ticketType, tier, date)
	if err != nil {
		return err
	}

	if quoteFormat == "json" {
		return output.WriteJSON(os.Stdout, quote)
	}
	return output.WriteQuote(os.Stdout, quote)
}

// parseCLIDate parses a YYYY-MM-DD flag value
func parseCLIDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return calendar.DateOnly(t), nil
}
