// Package cmd - validate and select commands
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ticket-upgrade/core/engine"
	"ticket-upgrade/core/output"
	"ticket-upgrade/core/types"
)

var (
	selType     string
	selTier     string
	selDate     string
	selPrice    string
	selPending  bool
	selCustomer string
	selFormat   string
	selConfirm  bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an upgrade selection",
	Long: `Validate a full upgrade selection against every business rule.

All checks run, so the output lists every error and warning at once,
plus alternative tiers or better-priced dates where applicable.
With --confirm, a valid selection is processed into a priced summary.

Examples:
  ticket-upgrade validate --type general --tier double-fun --date 2026-09-15
  ticket-upgrade validate --type vip --tier standard --date 2026-10-02 --customer-tier vip
  ticket-upgrade validate --type general --tier non-stop --date 2026-09-11 --price 50.00 --confirm`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&selType, "type", "t", "", "ticket type (general, standard, vip, premium)")
	validateCmd.Flags().StringVarP(&selTier, "tier", "u", "", "upgrade tier (standard, non-stop, double-fun)")
	validateCmd.Flags().StringVarP(&selDate, "date", "d", "", "upgrade date (YYYY-MM-DD)")
	validateCmd.Flags().StringVarP(&selPrice, "price", "p", "50.00", "original ticket price")
	validateCmd.Flags().BoolVar(&selPending, "pending-upgrades", false, "customer already has pending upgrade requests")
	validateCmd.Flags().StringVar(&selCustomer, "customer-tier", "", "customer loyalty tier hint (e.g. vip)")
	validateCmd.Flags().StringVarP(&selFormat, "format", "f", "text", "output format (text, json)")
	validateCmd.Flags().BoolVar(&selConfirm, "confirm", false, "process the selection when valid")
	_ = validateCmd.MarkFlagRequired("type")
	_ = validateCmd.MarkFlagRequired("tier")
	_ = validateCmd.MarkFlagRequired("date")
}

func runValidate(cmd *cobra.Command, args []string) error {
	req, err := buildSelectionRequest()
	if err != nil {
		return err
	}

	eng := engine.New()

	if selConfirm {
		outcome, err := eng.ProcessSelection(req)
		if err != nil {
			return err
		}
		if selFormat == "json" {
			return output.WriteJSON(os.Stdout, outcome)
		}
		if outcome.Success {
			return output.WriteSummary(os.Stdout, *outcome.Summary)
		}
		return output.WriteValidation(os.Stdout, outcome.Validation)
	}

	result := eng.Validate(req)
	if selFormat == "json" {
		return output.WriteJSON(os.Stdout, result)
	}
	return output.WriteValidation(os.Stdout, result)
}

func buildSelectionRequest() (types.SelectionRequest, error) {
	ticketType, err := types.ParseTicketType(selType)
	if err != nil {
		return types.SelectionRequest{}, err
	}
	tier, err := types.ParseUpgradeTier(selTier)
	if err != nil {
		return types.SelectionRequest{}, err
	}
	date, err := parseCLIDate(selDate)
	if err != nil {
		return types.SelectionRequest{}, err
	}
	price, err := decimal.NewFromString(selPrice)
	if err != nil {
		return types.SelectionRequest{}, err
	}

	var customerContext map[string]interface{}
	if selPending || selCustomer != "" {
		customerContext = map[string]interface{}{}
		if selPending {
			customerContext["has_pending_upgrades"] = true
		}
		if selCustomer != "" {
			customerContext["customer_tier"] = selCustomer
		}
	}

	return types.SelectionRequest{
		TicketType:      ticketType,
		Tier:            tier,
		SelectedDate:    date,
		OriginalPrice:   price,
		CustomerContext: customerContext,
	}, nil
}
