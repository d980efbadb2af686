// Package engine computes the full profitability analysis for a flip deal.
// Every function is a pure, total function of its inputs: no clock reads,
// no I/O, no stored state. Callers pass the current time explicitly where
// date math is involved, and invalid or degenerate inputs degrade to zero
// instead of returning errors so the analysis can be recomputed on every
// edit without interruption.
package engine

// Costs breaks down everything spent to acquire, renovate, and hold the
// property until sale.
type Costs struct {
	Purchase             float64 `json:"purchase"` // purchase price, or paid-to-developer for offplan
	DLD                  float64 `json:"dld"`
	BuyerCommission      float64 `json:"buyerCommission"`
	BuyerCommissionVAT   float64 `json:"buyerCommissionVat"`
	BuyerCommissionTotal float64 `json:"buyerCommissionTotal"`
	Renovation           float64 `json:"renovation"` // budget plus contingency
	ServiceCharge        float64 `json:"serviceCharge"`
	DewaAc               float64 `json:"dewaAc"`
	TrusteeOfficeFee     float64 `json:"trusteeOfficeFee"`
	Total                float64 `json:"total"`
}

// Revenue breaks down the sale proceeds.
type Revenue struct {
	SellingPrice          float64 `json:"sellingPrice"`
	SellerCommission      float64 `json:"sellerCommission"`
	SellerCommissionVAT   float64 `json:"sellerCommissionVat"`
	SellerCommissionTotal float64 `json:"sellerCommissionTotal"`
	RemainingDebt         float64 `json:"remainingDebt"` // offplan: installments still owed at the sale date
	Net                   float64 `json:"net"`
}

// Profit holds the bottom-line results.
type Profit struct {
	Net float64 `json:"net"`
	ROI float64 `json:"roi"` // percent of total cost, not time-adjusted
	IRR float64 `json:"irr"` // annualized percent
}

// Calculations is the complete derived output for one deal snapshot. It is
// rebuilt from scratch on every parameter change and never mutated.
type Calculations struct {
	Costs       Costs   `json:"costs"`
	Revenue     Revenue `json:"revenue"`
	Profit      Profit  `json:"profit"`
	BreakEven   float64 `json:"breakEven"` // minimum sale price for zero profit
	TotalMonths int     `json:"totalMonths"`
}
