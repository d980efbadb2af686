// Package validation provides input-layer checks for deal parameters.
//
// The analysis engine deliberately accepts any finite input and degrades
// to zero rather than erroring, so rejecting nonsense is the caller's job.
// These checks produce warnings, never hard failures: a deal mid-edit is
// allowed to pass through transient invalid states.
package validation

import (
	"fmt"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/dxbflip/flipcalc/pkg/datetime"
)

// ValidateDeal inspects a deal for values the engine will accept but that
// almost certainly indicate an input mistake, and returns one warning per
// finding.
func ValidateDeal(deal config.Deal) []string {
	var warnings []string

	moneyFields := []struct {
		name  string
		value float64
	}{
		{"purchasePrice", deal.PurchasePrice},
		{"sellingPrice", deal.SellingPrice},
		{"renovationBudget", deal.RenovationBudget},
		{"serviceChargeYearly", deal.ServiceChargeYearly},
		{"dewaAcMonthly", deal.DewaAcMonthly},
		{"trusteeOfficeFee", deal.TrusteeOfficeFee},
		{"paidAmount", deal.PaidAmount},
	}
	for _, field := range moneyFields {
		if field.value < 0 {
			warnings = append(warnings, fmt.Sprintf("%s is negative (%.2f)", field.name, field.value))
		}
	}

	percentFields := []struct {
		name  string
		value float64
	}{
		{"dldFees", deal.DldFees},
		{"buyerCommission", deal.BuyerCommission},
		{"sellerCommission", deal.SellerCommission},
		{"contingency", deal.Contingency},
		{"targetReturn", deal.TargetReturn},
		{"marketGrowth", deal.MarketGrowth},
	}
	for _, field := range percentFields {
		if field.value < 0 || field.value > 100 {
			warnings = append(warnings, fmt.Sprintf("%s is outside the 0-100 scale (%.2f)", field.name, field.value))
		}
	}

	if deal.RenovationMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("renovationMonths is negative (%d)", deal.RenovationMonths))
	}
	if deal.ListingMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("listingMonths is negative (%d)", deal.ListingMonths))
	}

	switch deal.DealType {
	case constants.DealTypeSecondary, constants.DealTypeOffplan:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown dealType %q", deal.DealType))
	}

	switch deal.PropertyType {
	case constants.PropertyTypeApartment, constants.PropertyTypeVilla, constants.PropertyTypeTownhouse, "":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown propertyType %q", deal.PropertyType))
	}

	warnings = append(warnings, validateSchedule(deal)...)
	return warnings
}

// validateSchedule flags installment problems. A bad date is a warning
// only; the engine treats it as already due.
func validateSchedule(deal config.Deal) []string {
	var warnings []string

	if !deal.IsOffplan() && len(deal.PaymentSchedule) > 0 {
		warnings = append(warnings, "paymentSchedule is set on a secondary deal and will be ignored")
	}

	for i, inst := range deal.PaymentSchedule {
		if inst.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("installment %d amount is negative (%.2f)", i+1, inst.Amount))
		}
		if inst.Date == "" {
			continue
		}
		if _, err := datetime.ParseDate(inst.Date); err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"installment %d date %q is not %s and will be treated as already due",
				i+1, inst.Date, datetime.DateLayout))
		}
	}

	return warnings
}

// ValidateOutputFormat checks a requested report format name.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("output format %s is not supported; use %s or %s",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}

// ValidateOverrides checks schedule overrides for usable week and type
// values.
func ValidateOverrides(overrides []config.ScheduleOverride) []string {
	var warnings []string
	for _, override := range overrides {
		if override.Week < 0 || override.Week%2 != 0 {
			warnings = append(warnings, fmt.Sprintf(
				"override week %d does not land on a biweekly step", override.Week))
		}
		if override.Type != "roi" && override.Type != "irr" {
			warnings = append(warnings, fmt.Sprintf("override type %q is not roi or irr", override.Type))
		}
	}
	return warnings
}
