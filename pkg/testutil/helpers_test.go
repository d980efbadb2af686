package testutil

import (
	"testing"

	"github.com/dxbflip/flipcalc/internal/engine"
)

func TestFindScheduleRow(t *testing.T) {
	rows := []engine.ScheduleRow{
		{Week: 0, Label: "At listing"},
		{Week: 2, Label: "Week 2"},
		{Week: 4, Label: "Week 4"},
	}

	if row := FindScheduleRow(rows, 2); row == nil || row.Label != "Week 2" {
		t.Errorf("FindScheduleRow(rows, 2) = %+v, expected the week-2 row", row)
	}
	if row := FindScheduleRow(rows, 99); row != nil {
		t.Errorf("FindScheduleRow(rows, 99) = %+v, expected nil", row)
	}
}

func TestSampleDealIsConsistent(t *testing.T) {
	deal := SampleDeal()
	calc := engine.Calculate(deal, FixedNow)
	if calc.TotalMonths != deal.RenovationMonths+deal.ListingMonths {
		t.Errorf("TotalMonths = %d, expected %d", calc.TotalMonths, deal.RenovationMonths+deal.ListingMonths)
	}
	if calc.Profit.Net <= 0 {
		t.Errorf("sample deal should be profitable, got %.2f", calc.Profit.Net)
	}
}
