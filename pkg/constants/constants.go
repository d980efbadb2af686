// Package constants provides shared constants for the flipcalc application.
package constants

// DateLayout is the format expected for installment dates in deal configs
// and is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerMonth is the average number of weeks in a month, used to
	// convert listing/renovation durations into the biweekly schedule grid
	WeeksPerMonth = 4.33

	// DaysPerWeek is the number of days in a week
	DaysPerWeek = 7

	// DaysPerYear is the day count used to convert an annualized return
	// into a daily discount rate
	DaysPerYear = 365

	// VATRate is the UAE VAT rate applied on broker commissions
	VATRate = 0.05

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 fils)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Deal type constants
const (
	// DealTypeSecondary is a ready property bought on the secondary market
	DealTypeSecondary = "secondary"

	// DealTypeOffplan is an under-construction property paid via installments
	DealTypeOffplan = "offplan"
)

// Property type constants
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeVilla     = "villa"
	PropertyTypeTownhouse = "townhouse"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default deal configuration file name
	DefaultConfigFile = "deal.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultDatabaseFile is the default SQLite database file for saved deals
	DefaultDatabaseFile = "flipcalc.db"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum JSON request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Default deal assumptions, applied to fields left unset in a deal config.
const (
	// DefaultDldFeePercent is the Dubai Land Department transfer fee
	DefaultDldFeePercent = 4.0

	// DefaultBuyerCommissionPercent is the standard buy-side agency fee
	DefaultBuyerCommissionPercent = 2.0

	// DefaultSellerCommissionPercent is the standard sell-side agency fee
	DefaultSellerCommissionPercent = 2.0

	// DefaultContingencyPercent is the renovation budget contingency
	DefaultContingencyPercent = 10.0

	// DefaultTargetReturnPercent is the annualized return driving the
	// early-sale discount curve
	DefaultTargetReturnPercent = 8.0
)
