package engine

import "github.com/dxbflip/flipcalc/internal/config"

// Style hints consumed by charting layers; the engine only assigns signs
// and labels.
const (
	HintPositive = "positive"
	HintNegative = "negative"
	HintProfit   = "profit"
	HintLoss     = "loss"
)

// WaterfallItem is one signed bar of the profit decomposition chart.
type WaterfallItem struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	StyleHint string  `json:"styleHint"`
}

// Waterfall restates the computed breakdown as an ordered list of signed
// line items, from sale price down to net profit. No new arithmetic
// happens here beyond sign assignment.
func Waterfall(deal config.Deal, calc Calculations) []WaterfallItem {
	items := []WaterfallItem{
		{Label: "Sale price", Value: calc.Revenue.SellingPrice, StyleHint: HintPositive},
		{Label: "Seller commission", Value: -calc.Revenue.SellerCommission, StyleHint: HintNegative},
		{Label: "Seller commission VAT", Value: -calc.Revenue.SellerCommissionVAT, StyleHint: HintNegative},
	}

	purchaseLabel := "Purchase price"
	if deal.IsOffplan() {
		items = append(items, WaterfallItem{
			Label:     "Remaining developer debt",
			Value:     -calc.Revenue.RemainingDebt,
			StyleHint: HintNegative,
		})
		purchaseLabel = "Paid to developer"
	}

	items = append(items,
		WaterfallItem{Label: purchaseLabel, Value: -calc.Costs.Purchase, StyleHint: HintNegative},
		WaterfallItem{Label: "DLD fee", Value: -calc.Costs.DLD, StyleHint: HintNegative},
		WaterfallItem{Label: "Buyer commission", Value: -calc.Costs.BuyerCommission, StyleHint: HintNegative},
		WaterfallItem{Label: "Buyer commission VAT", Value: -calc.Costs.BuyerCommissionVAT, StyleHint: HintNegative},
		WaterfallItem{Label: "Renovation", Value: -calc.Costs.Renovation, StyleHint: HintNegative},
		WaterfallItem{Label: "Service charge", Value: -calc.Costs.ServiceCharge, StyleHint: HintNegative},
		WaterfallItem{Label: "DEWA AC", Value: -calc.Costs.DewaAc, StyleHint: HintNegative},
		WaterfallItem{Label: "Trustee office fee", Value: -calc.Costs.TrusteeOfficeFee, StyleHint: HintNegative},
	)

	profitHint := HintProfit
	if calc.Profit.Net < 0 {
		profitHint = HintLoss
	}
	return append(items, WaterfallItem{Label: "Net profit", Value: calc.Profit.Net, StyleHint: profitHint})
}
