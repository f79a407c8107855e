// Package cmd - compare, best-dates and calendar commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ticket-upgrade/core/engine"
	"ticket-upgrade/core/output"
	"ticket-upgrade/core/types"
)

var (
	cmpType   string
	cmpDate   string
	cmpFormat string
	bdType    string
	bdTier    string
	bdHorizon int
	bdFormat  string
	calType   string
	calDays   int
	calFormat string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all upgrade tiers for a ticket type",
	Long: `Compare every upgrade tier for a ticket type on one date.

Each tier's availability, calendar price and value score are shown;
the available tier with the best value score is recommended.

Examples:
  ticket-upgrade compare --type general
  ticket-upgrade compare --type standard --date 2026-11-25`,
	RunE: runCompare,
}

// bestDatesCmd represents the best-dates command
var bestDatesCmd = &cobra.Command{
	Use:   "best-dates",
	Short: "Find the cheapest available upgrade dates",
	Long: `Scan the coming days for the cheapest available dates for an
upgrade, ranked by calendar price.

Examples:
  ticket-upgrade best-dates --type general --tier standard
  ticket-upgrade best-dates --type vip --tier double-fun --horizon 60`,
	RunE: runBestDates,
}

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the availability calendar with pricing",
	Long: `Show day-by-day availability and pricing categories for upgrades
on a ticket type, starting today.

Examples:
  ticket-upgrade calendar --type general
  ticket-upgrade calendar --type standard --days 14`,
	RunE: runCalendar,
}

func init() {
	compareCmd.Flags().StringVarP(&cmpType, "type", "t", "", "ticket type")
	compareCmd.Flags().StringVarP(&cmpDate, "date", "d", "", "comparison date (default: a week from today)")
	compareCmd.Flags().StringVarP(&cmpFormat, "format", "f", "text", "output format (text, json)")
	_ = compareCmd.MarkFlagRequired("type")

	bestDatesCmd.Flags().StringVarP(&bdType, "type", "t", "", "ticket type")
	bestDatesCmd.Flags().StringVarP(&bdTier, "tier", "u", "", "upgrade tier")
	bestDatesCmd.Flags().IntVar(&bdHorizon, "horizon", 30, "days ahead to scan")
	bestDatesCmd.Flags().StringVarP(&bdFormat, "format", "f", "text", "output format (text, json)")
	_ = bestDatesCmd.MarkFlagRequired("type")
	_ = bestDatesCmd.MarkFlagRequired("tier")

	calendarCmd.Flags().StringVarP(&calType, "type", "t", "", "ticket type")
	calendarCmd.Flags().IntVar(&calDays, "days", 30, "days ahead to show")
	calendarCmd.Flags().StringVarP(&calFormat, "format", "f", "text", "output format (text, json)")
	_ = calendarCmd.MarkFlagRequired("type")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ticketType, err := types.ParseTicketType(cmpType)
	if err != nil {
		return err
	}

	eng := engine.New()

	date := eng.Calendar().Today().AddDate(0, 0, 7)
	if cmpDate != "" {
		if date, err = parseCLIDate(cmpDate); err != nil {
			return err
		}
	}

	comparison := eng.Compare(ticketType, date)
	if cmpFormat == "json" {
		return output.WriteJSON(os.Stdout, comparison)
	}
	return output.WriteComparison(os.Stdout, comparison)
}

func runBestDates(cmd *cobra.Command, args []string) error {
	ticketType, err := types.ParseTicketType(bdType)
	if err != nil {
		return err
	}
	tier, err := types.ParseUpgradeTier(bdTier)
	if err != nil {
		return err
	}

	deals := engine.New().BestDates(ticketType, tier, bdHorizon)
	if bdFormat == "json" {
		return output.WriteJSON(os.Stdout, deals)
	}
	return output.WriteDeals(os.Stdout, deals)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ticketType, err := types.ParseTicketType(calType)
	if err != nil {
		return err
	}

	cal := engine.New().AvailabilityCalendar(ticketType, calDays)
	if calFormat == "json" {
		return output.WriteJSON(os.Stdout, cal)
	}
	return output.WriteCalendar(os.Stdout, cal)
}
