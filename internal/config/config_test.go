package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dxbflip/flipcalc/pkg/constants"
)

const sampleConfig = `deal:
  name: Marina 2BR flip
  location: Dubai Marina
  propertyType: apartment
  bedrooms: 2
  bathrooms: 2
  unitArea: 1150
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
      date: ""
overrides:
  - week: 2
    type: roi
    value: 5
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deal.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	deal := conf.Deal
	if deal.Name != "Marina 2BR flip" {
		t.Errorf("Name = %q, expected %q", deal.Name, "Marina 2BR flip")
	}
	if deal.DealType != constants.DealTypeOffplan {
		t.Errorf("DealType = %q, expected %q", deal.DealType, constants.DealTypeOffplan)
	}
	if deal.PurchasePrice != 500000 || deal.SellingPrice != 700000 {
		t.Errorf("prices = %.0f/%.0f, expected 500000/700000", deal.PurchasePrice, deal.SellingPrice)
	}
	if deal.RenovationMonths != 3 || deal.ListingMonths != 2 {
		t.Errorf("durations = %d/%d, expected 3/2", deal.RenovationMonths, deal.ListingMonths)
	}
	if len(deal.PaymentSchedule) != 2 {
		t.Fatalf("got %d installments, expected 2", len(deal.PaymentSchedule))
	}
	if deal.PaymentSchedule[0].Date != "2026-03-01" || deal.PaymentSchedule[0].Amount != 100000 {
		t.Errorf("installment 0 = %+v, expected 100000 on 2026-03-01", deal.PaymentSchedule[0])
	}
	if deal.PaymentSchedule[1].Date != "" {
		t.Errorf("installment 1 date = %q, expected empty", deal.PaymentSchedule[1].Date)
	}
	if deal.TotalScheduled() != 250000 {
		t.Errorf("TotalScheduled() = %.0f, expected 250000", deal.TotalScheduled())
	}

	if len(conf.Overrides) != 1 || conf.Overrides[0].Week != 2 || conf.Overrides[0].Type != "roi" {
		t.Errorf("Overrides = %+v, expected one week-2 roi override", conf.Overrides)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	minimal := `deal:
  name: Bare minimum
  purchasePrice: 400000
  sellingPrice: 500000
`
	conf, err := LoadConfiguration(writeConfig(t, minimal))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	deal := conf.Deal
	if deal.DealType != constants.DealTypeSecondary {
		t.Errorf("DealType = %q, expected default %q", deal.DealType, constants.DealTypeSecondary)
	}
	if deal.PropertyType != constants.PropertyTypeApartment {
		t.Errorf("PropertyType = %q, expected default %q", deal.PropertyType, constants.PropertyTypeApartment)
	}
	if deal.DldFees != constants.DefaultDldFeePercent {
		t.Errorf("DldFees = %.1f, expected default %.1f", deal.DldFees, constants.DefaultDldFeePercent)
	}
	if deal.SellerCommission != constants.DefaultSellerCommissionPercent {
		t.Errorf("SellerCommission = %.1f, expected default %.1f",
			deal.SellerCommission, constants.DefaultSellerCommissionPercent)
	}
	if deal.TargetReturn != constants.DefaultTargetReturnPercent {
		t.Errorf("TargetReturn = %.1f, expected default %.1f", deal.TargetReturn, constants.DefaultTargetReturnPercent)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadConfiguration() with missing file returned nil error")
	}
}

func TestNewDealDefaults(t *testing.T) {
	deal := NewDeal()
	if deal.IsOffplan() {
		t.Errorf("NewDeal() defaults to offplan, expected secondary")
	}
	if deal.BuyerCommission != constants.DefaultBuyerCommissionPercent {
		t.Errorf("BuyerCommission = %.1f, expected %.1f",
			deal.BuyerCommission, constants.DefaultBuyerCommissionPercent)
	}
	if deal.Contingency != constants.DefaultContingencyPercent {
		t.Errorf("Contingency = %.1f, expected %.1f", deal.Contingency, constants.DefaultContingencyPercent)
	}
}
