// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
)

// FixedNow is the reference "current time" used by date-sensitive tests.
var FixedNow = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

// SampleDeal returns a fully populated secondary-market deal suitable for
// integration tests.
func SampleDeal() config.Deal {
	deal := config.NewDeal()
	deal.Name = "Sample 2BR"
	deal.Location = "Dubai Marina"
	deal.Bedrooms = 2
	deal.Bathrooms = 2
	deal.UnitArea = 1150
	deal.PurchasePrice = 500000
	deal.SellingPrice = 700000
	deal.DldFees = 4
	deal.BuyerCommission = 2
	deal.SellerCommission = 4
	deal.RenovationBudget = 100000
	deal.Contingency = 15
	deal.RenovationMonths = 3
	deal.ListingMonths = 2
	deal.ServiceChargeYearly = 6000
	deal.DewaAcMonthly = 500
	deal.TrusteeOfficeFee = 5000
	return deal
}

// FindScheduleRow finds a schedule row by week number.
// Returns a pointer to the row if found, nil otherwise.
func FindScheduleRow(rows []engine.ScheduleRow, week int) *engine.ScheduleRow {
	for i := range rows {
		if rows[i].Week == week {
			return &rows[i]
		}
	}
	return nil
}
