// Package output provides utilities for formatting and displaying deal
// analysis results.
package output

import (
	"fmt"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
	"github.com/dxbflip/flipcalc/pkg/format"
)

// Report bundles the complete analysis for one deal: the input snapshot
// and every derived view. The server serializes it as JSON; the CLI
// renders it with the formatters below.
type Report struct {
	Deal         config.Deal               `json:"deal"`
	Calculations engine.Calculations       `json:"calculations"`
	Sensitivity  []engine.SensitivityPoint `json:"sensitivity"`
	Schedule     []engine.ScheduleRow      `json:"schedule"`
	Waterfall    []engine.WaterfallItem    `json:"waterfall"`
	Warnings     []string                  `json:"warnings,omitempty"`
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(report Report) {
	calc := report.Calculations

	fmt.Printf("--- Analysis for %s ---\n", report.Deal.Name)
	fmt.Printf("%s %s, %s deal, %d month hold\n\n",
		report.Deal.Location, report.Deal.PropertyType, report.Deal.DealType, calc.TotalMonths)

	fmt.Printf("Costs\n")
	printLine("Purchase", calc.Costs.Purchase)
	printLine("DLD fee", calc.Costs.DLD)
	printLine("Buyer commission incl. VAT", calc.Costs.BuyerCommissionTotal)
	printLine("Renovation", calc.Costs.Renovation)
	printLine("Service charge", calc.Costs.ServiceCharge)
	printLine("DEWA AC", calc.Costs.DewaAc)
	printLine("Trustee office fee", calc.Costs.TrusteeOfficeFee)
	printLine("Total", calc.Costs.Total)

	fmt.Printf("\nRevenue\n")
	printLine("Selling price", calc.Revenue.SellingPrice)
	printLine("Seller commission incl. VAT", -calc.Revenue.SellerCommissionTotal)
	if report.Deal.IsOffplan() {
		printLine("Remaining developer debt", -calc.Revenue.RemainingDebt)
	}
	printLine("Net", calc.Revenue.Net)

	fmt.Printf("\nProfit\n")
	printLine("Net", calc.Profit.Net)
	fmt.Printf("  %-28s | %s\n", "ROI", format.Percent(calc.Profit.ROI))
	fmt.Printf("  %-28s | %s\n", "IRR", format.Percent(calc.Profit.IRR))
	printLine("Break-even price", calc.BreakEven)

	if len(report.Sensitivity) > 0 {
		fmt.Printf("\nSensitivity (profit)\n")
		fmt.Printf("  %-10s | %-15s | %s\n", "Variation", "Price channel", "Renovation channel")
		for _, point := range report.Sensitivity {
			fmt.Printf("  %+9.0f%% | %-15s | %s\n", point.Variation,
				format.WholeAED(point.PriceProfit), format.WholeAED(point.RenovationProfit))
		}
	}

	if len(report.Schedule) > 0 {
		fmt.Printf("\nEarly-sale schedule\n")
		fmt.Printf("  %-12s | %-14s | %-14s | %-14s | %-8s | %-8s | %s\n",
			"Step", "Price", "Discount", "Profit", "ROI", "IRR", "Months")
		for _, row := range report.Schedule {
			fmt.Printf("  %-12s | %-14s | %-14s | %-14s | %-8s | %-8s | %.1f\n",
				row.Label,
				format.WholeAED(row.RecommendedPrice),
				format.WholeAED(row.Discount),
				format.WholeAED(row.Profit),
				format.Percent(row.ROI),
				format.Percent(row.IRR),
				row.MonthsElapsed)
		}
	}

	if len(report.Waterfall) > 0 {
		fmt.Printf("\nWaterfall\n")
		for _, item := range report.Waterfall {
			printLine(item.Label, item.Value)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Printf("\nWarnings\n")
		for _, warning := range report.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}

func printLine(label string, amount float64) {
	fmt.Printf("  %-28s | %s\n", label, format.AED(amount))
}

// CsvFormat outputs the early-sale schedule in comma-separated value
// format, one row per biweekly step.
func CsvFormat(report Report) {
	fmt.Printf(`"week","label","recommendedPrice","discount","profit","roi","irr","monthsElapsed"`)
	fmt.Printf("\n")
	for _, row := range report.Schedule {
		fmt.Printf(`"%d","%s","%.0f","%.0f","%.0f","%.2f","%.2f","%.1f"`,
			row.Week, row.Label, row.RecommendedPrice, row.Discount, row.Profit,
			row.ROI, row.IRR, row.MonthsElapsed)
		fmt.Printf("\n")
	}
}
