// Package config defines the data structures describing a flip deal and
// includes functions for loading and parsing deal configuration files.
package config

import (
	"fmt"

	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/spf13/viper"
)

// DateLayout is the format expected for installment dates in config files
// and is also the output date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for flipcalc.
type Configuration struct {
	Deal      Deal
	Overrides []ScheduleOverride `yaml:"overrides,omitempty"`
	Logging   LoggingConfig      `yaml:"logging,omitempty"`
	Output    OutputConfig       `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Deal holds every input parameter describing a single flip deal. All money
// fields are in AED, all percentage fields are on a 0-100 scale, and all
// duration fields are whole months. The analysis functions treat a Deal as
// an immutable snapshot; edits produce a new value.
type Deal struct {
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	PropertyType    string   `json:"propertyType"` // apartment, villa, townhouse
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	UnitArea        float64  `json:"unitArea"` // sqft
	PlotArea        float64  `json:"plotArea"` // sqft, villas and townhouses
	RenovationNotes string   `json:"renovationNotes"`
	Images          []string `json:"images,omitempty"`

	DealType string `json:"dealType"` // secondary, offplan

	PurchasePrice       float64 `json:"purchasePrice"`
	SellingPrice        float64 `json:"sellingPrice"`
	RenovationBudget    float64 `json:"renovationBudget"`
	ServiceChargeYearly float64 `json:"serviceChargeYearly"`
	DewaAcMonthly       float64 `json:"dewaAcMonthly"`
	TrusteeOfficeFee    float64 `json:"trusteeOfficeFee"`
	PaidAmount          float64 `json:"paidAmount"` // offplan: amount already paid to the developer

	DldFees          float64 `json:"dldFees"`
	BuyerCommission  float64 `json:"buyerCommission"`
	SellerCommission float64 `json:"sellerCommission"`
	Contingency      float64 `json:"contingency"`
	TargetReturn     float64 `json:"targetReturn"` // annualized %, drives the early-sale discount curve
	MarketGrowth     float64 `json:"marketGrowth"` // annualized %

	RenovationMonths int `json:"renovationMonths"`
	ListingMonths    int `json:"listingMonths"`

	// PaymentSchedule lists the remaining developer installments for an
	// offplan deal, in insertion order. Dates are not guaranteed sorted.
	PaymentSchedule []Installment `json:"paymentSchedule,omitempty"`
}

// Installment is a single scheduled developer payment. An empty or
// unparseable date marks the installment as already due.
type Installment struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // ISO date (2006-01-02) or empty
}

// ScheduleOverride pins a single week of the early-sale schedule to a
// target return instead of the formula-driven discount.
type ScheduleOverride struct {
	Week  int     `yaml:"week" json:"week"`
	Type  string  `yaml:"type" json:"type"` // roi, irr
	Value float64 `yaml:"value" json:"value"`
}

// NewDeal returns a Deal populated with the standard Dubai-market fee
// assumptions. Callers overwrite whichever fields their config provides.
func NewDeal() Deal {
	return Deal{
		PropertyType:     constants.PropertyTypeApartment,
		DealType:         constants.DealTypeSecondary,
		DldFees:          constants.DefaultDldFeePercent,
		BuyerCommission:  constants.DefaultBuyerCommissionPercent,
		SellerCommission: constants.DefaultSellerCommissionPercent,
		Contingency:      constants.DefaultContingencyPercent,
		TargetReturn:     constants.DefaultTargetReturnPercent,
	}
}

// IsOffplan reports whether the deal settles developer installments rather
// than a full purchase price at acquisition.
func (d *Deal) IsOffplan() bool {
	return d.DealType == constants.DealTypeOffplan
}

// TotalScheduled sums every installment in the payment schedule.
func (d *Deal) TotalScheduled() float64 {
	total := 0.0
	for _, inst := range d.PaymentSchedule {
		total += inst.Amount
	}
	return total
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// deal configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration := Configuration{Deal: NewDeal()}
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills enum fields left empty by the config file.
func (conf *Configuration) ApplyDefaults() {
	if conf.Deal.DealType == "" {
		conf.Deal.DealType = constants.DealTypeSecondary
	}
	if conf.Deal.PropertyType == "" {
		conf.Deal.PropertyType = constants.PropertyTypeApartment
	}
}
