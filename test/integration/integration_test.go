package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
	"github.com/dxbflip/flipcalc/pkg/mathutil"
	"github.com/dxbflip/flipcalc/pkg/testutil"
	"github.com/dxbflip/flipcalc/pkg/validation"
)

const dealConfig = `deal:
  name: Integration flip
  location: Palm Jumeirah
  propertyType: villa
  dealType: offplan
  purchasePrice: 500000
  sellingPrice: 700000
  renovationBudget: 100000
  serviceChargeYearly: 6000
  dewaAcMonthly: 500
  trusteeOfficeFee: 5000
  paidAmount: 300000
  dldFees: 4
  buyerCommission: 2
  sellerCommission: 4
  contingency: 15
  targetReturn: 10
  renovationMonths: 3
  listingMonths: 2
  paymentSchedule:
    - amount: 100000
      date: 2026-03-01
    - amount: 150000
      date: 2027-06-01
overrides:
  - week: 2
    type: roi
    value: 5
`

// TestConfigToAnalysis walks the whole CLI path short of printing: load a
// YAML deal config, validate it, and run every analysis over it.
func TestConfigToAnalysis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.yaml")
	if err := os.WriteFile(path, []byte(dealConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := config.LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := validation.ValidateDeal(conf.Deal); len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	calc := engine.Calculate(conf.Deal, testutil.FixedNow)

	// Offplan cost basis starts from the paid amount, not the full price.
	if !mathutil.WithinTolerance(calc.Costs.Purchase, 300000, 1e-9) {
		t.Errorf("purchase cost = %.2f, expected 300000", calc.Costs.Purchase)
	}
	// Only the 2026-03-01 installment falls before the 2026-06-15 close.
	if !mathutil.WithinTolerance(calc.Revenue.RemainingDebt, 100000, 1e-9) {
		t.Errorf("remaining debt = %.2f, expected 100000", calc.Revenue.RemainingDebt)
	}
	if calc.TotalMonths != 5 {
		t.Errorf("total months = %d, expected 5", calc.TotalMonths)
	}

	sensitivity := engine.Sensitivity(conf.Deal, calc)
	if len(sensitivity) != 5 {
		t.Errorf("got %d sensitivity points, expected 5", len(sensitivity))
	}

	overrides := engine.OverridesFromConfig(conf.Overrides)
	rows := engine.EarlySchedule(conf.Deal, calc, overrides)
	pinned := testutil.FindScheduleRow(rows, 2)
	if pinned == nil {
		t.Fatalf("no week-2 row in schedule")
	}
	if pinned.Override != engine.OverrideROI {
		t.Errorf("week 2 override = %q, expected roi", pinned.Override)
	}
	if !mathutil.WithinTolerance(pinned.ROI, 5, 0.05) {
		t.Errorf("week 2 roi = %.4f, expected pinned 5", pinned.ROI)
	}

	waterfall := engine.Waterfall(conf.Deal, calc)
	sum := 0.0
	for _, item := range waterfall[:len(waterfall)-1] {
		sum += item.Value
	}
	if !mathutil.WithinTolerance(sum, calc.Profit.Net, 1e-6) {
		t.Errorf("waterfall bars sum to %.4f, expected %.4f", sum, calc.Profit.Net)
	}
}
