package engine

import (
	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/pkg/constants"
)

// sensitivityVariations are the percentage perturbations applied to each
// channel, one variable at a time.
var sensitivityVariations = []float64{-10, -5, 0, 5, 10}

// SensitivityPoint reports the profit impact of perturbing one input by
// Variation percent while holding everything else at its computed value.
type SensitivityPoint struct {
	Variation float64 `json:"variation"`

	// Price channel: selling price moves, total costs stay fixed.
	PriceSellingPrice float64 `json:"priceSellingPrice"`
	PriceRevenueNet   float64 `json:"priceRevenueNet"`
	PriceProfit       float64 `json:"priceProfit"`

	// Renovation channel: renovation budget moves, net revenue stays fixed.
	RenovationCost   float64 `json:"renovationCost"`
	RenovationTotal  float64 `json:"renovationTotal"`
	RenovationProfit float64 `json:"renovationProfit"`
}

// Sensitivity re-evaluates profit under percentage perturbations of the
// selling price and the renovation budget. The two channels are
// independent single-variable sweeps, not a joint perturbation.
func Sensitivity(deal config.Deal, calc Calculations) []SensitivityPoint {
	points := make([]SensitivityPoint, 0, len(sensitivityVariations))
	factor := netFactor(deal.SellerCommission)

	for _, variation := range sensitivityVariations {
		scale := 1 + variation/constants.PercentageMultiplier

		price := deal.SellingPrice * scale
		priceNet := price*factor - calc.Revenue.RemainingDebt

		renovation := deal.RenovationBudget * scale * (1 + deal.Contingency/constants.PercentageMultiplier)
		costsTotal := calc.Costs.Total - calc.Costs.Renovation + renovation

		points = append(points, SensitivityPoint{
			Variation:         variation,
			PriceSellingPrice: price,
			PriceRevenueNet:   priceNet,
			PriceProfit:       priceNet - calc.Costs.Total,
			RenovationCost:    renovation,
			RenovationTotal:   costsTotal,
			RenovationProfit:  calc.Revenue.Net - costsTotal,
		})
	}

	return points
}
