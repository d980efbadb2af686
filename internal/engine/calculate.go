package engine

import (
	"math"
	"time"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/dxbflip/flipcalc/pkg/datetime"
	"github.com/dxbflip/flipcalc/pkg/mathutil"
)

// Calculate derives the full cost/revenue/profit breakdown for a deal.
// The now parameter anchors the simulated close date used to split offplan
// installments into "due before sale" and "assumed by the buyer"; it is the
// only temporal input and must be supplied by the caller.
func Calculate(deal config.Deal, now time.Time) Calculations {
	totalMonths := deal.RenovationMonths + deal.ListingMonths

	dld := mathutil.ApplyPercentage(deal.PurchasePrice, deal.DldFees)
	buyerCommission := mathutil.ApplyPercentage(deal.PurchasePrice, deal.BuyerCommission)
	buyerCommissionVAT := buyerCommission * constants.VATRate
	buyerCommissionTotal := buyerCommission + buyerCommissionVAT

	renovation := deal.RenovationBudget * (1 + deal.Contingency/constants.PercentageMultiplier)
	serviceCharge := deal.ServiceChargeYearly / constants.MonthsPerYear * float64(totalMonths)
	dewaAc := deal.DewaAcMonthly * float64(totalMonths)

	purchase := deal.PurchasePrice
	remainingDebt := 0.0
	if deal.IsOffplan() {
		purchase = deal.PaidAmount
		remainingDebt = RemainingDebt(deal, now)
	}

	costs := Costs{
		Purchase:             purchase,
		DLD:                  dld,
		BuyerCommission:      buyerCommission,
		BuyerCommissionVAT:   buyerCommissionVAT,
		BuyerCommissionTotal: buyerCommissionTotal,
		Renovation:           renovation,
		ServiceCharge:        serviceCharge,
		DewaAc:               dewaAc,
		TrusteeOfficeFee:     deal.TrusteeOfficeFee,
	}
	costs.Total = purchase + dld + buyerCommissionTotal + renovation +
		serviceCharge + dewaAc + deal.TrusteeOfficeFee

	sellerCommission := mathutil.ApplyPercentage(deal.SellingPrice, deal.SellerCommission)
	sellerCommissionVAT := sellerCommission * constants.VATRate
	sellerCommissionTotal := sellerCommission + sellerCommissionVAT

	revenue := Revenue{
		SellingPrice:          deal.SellingPrice,
		SellerCommission:      sellerCommission,
		SellerCommissionVAT:   sellerCommissionVAT,
		SellerCommissionTotal: sellerCommissionTotal,
		RemainingDebt:         remainingDebt,
		Net:                   deal.SellingPrice - sellerCommissionTotal - remainingDebt,
	}

	profit := Profit{
		Net: revenue.Net - costs.Total,
	}
	profit.ROI = roiPercent(profit.Net, costs.Total)
	profit.IRR = irrPercent(revenue.Net, costs.Total, float64(totalMonths))

	return Calculations{
		Costs:       costs,
		Revenue:     revenue,
		Profit:      profit,
		BreakEven:   breakEvenPrice(costs.Total, remainingDebt, deal.SellerCommission),
		TotalMonths: totalMonths,
	}
}

// RemainingDebt sums the offplan installments still owed to the developer
// as of the simulated sale date (now plus the full hold duration). An
// installment with an empty or unparseable date is conservatively treated
// as already due; one dated strictly after the close date is assumed by
// the buyer and excluded.
func RemainingDebt(deal config.Deal, now time.Time) float64 {
	closeDate := datetime.OffsetMonths(now, deal.RenovationMonths+deal.ListingMonths)
	debt := 0.0
	for _, inst := range deal.PaymentSchedule {
		due, err := datetime.ParseDate(inst.Date)
		if err != nil || !due.After(closeDate) {
			debt += inst.Amount
		}
	}
	return debt
}

// netFactor is the share of a sale price left after seller commission and
// VAT, i.e. net = price * netFactor.
func netFactor(sellerCommissionPct float64) float64 {
	return 1 - sellerCommissionPct/constants.PercentageMultiplier*(1+constants.VATRate)
}

// breakEvenPrice solves for the sale price at which net revenue after
// seller commission and VAT covers total costs plus any developer debt
// still owed at sale.
func breakEvenPrice(totalCosts, remainingDebt, sellerCommissionPct float64) float64 {
	factor := netFactor(sellerCommissionPct)
	if factor <= 0 {
		return 0
	}
	return (totalCosts + remainingDebt) / factor
}

// roiPercent is profit over total cost on a percent scale, 0 when the deal
// has no cost basis.
func roiPercent(profitNet, totalCosts float64) float64 {
	if totalCosts <= 0 {
		return 0
	}
	return mathutil.CalculatePercentage(profitNet, totalCosts)
}

// irrPercent annualizes the revenue/cost ratio over the hold duration. The
// fractional exponent is only defined for a positive ratio, so degenerate
// deals (no duration, no costs, or non-positive revenue) report 0.
func irrPercent(revenueNet, totalCosts, months float64) float64 {
	if months <= 0 || totalCosts <= 0 || revenueNet <= 0 {
		return 0
	}
	ratio := revenueNet / totalCosts
	return (math.Pow(ratio, constants.MonthsPerYear/months) - 1) * constants.PercentageMultiplier
}
