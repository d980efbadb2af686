package engine

import (
	"fmt"
	"math"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/dxbflip/flipcalc/pkg/mathutil"
)

// OverrideType selects which return metric an early-sale override pins.
type OverrideType string

const (
	// OverrideROI pins a week to a target return on investment.
	OverrideROI OverrideType = "roi"
	// OverrideIRR pins a week to a target annualized return.
	OverrideIRR OverrideType = "irr"
)

// Override pins one week of the early-sale schedule to a user-chosen
// target; the recommended price is then solved backward from the target
// instead of following the discount formula.
type Override struct {
	Type  OverrideType `json:"type"`
	Value float64      `json:"value"`
}

// ScheduleRow is one biweekly step of the early-sale schedule. Money
// values are rounded to whole AED and months elapsed to one decimal.
type ScheduleRow struct {
	Week             int          `json:"week"`
	Label            string       `json:"label"`
	Discount         float64      `json:"discount"`
	RecommendedPrice float64      `json:"recommendedPrice"`
	Profit           float64      `json:"profit"`
	ROI              float64      `json:"roi"`
	IRR              float64      `json:"irr"`
	MonthsElapsed    float64      `json:"monthsElapsed"`
	Override         OverrideType `json:"override,omitempty"`
}

// EarlySchedule produces the biweekly early-sale table across the listing
// window. Week 0 is the moment renovation completes. Rows without an
// override discount the asking price by the deal's target daily return for
// every day of early exit; overridden weeks solve the price backward from
// the pinned ROI or IRR. Overrides are caller-held state keyed by week;
// a missing key means the formula-driven default.
func EarlySchedule(deal config.Deal, calc Calculations, overrides map[int]Override) []ScheduleRow {
	listingWeeks := float64(deal.ListingMonths) * constants.WeeksPerMonth
	factor := netFactor(deal.SellerCommission)

	var rows []ScheduleRow
	for week := 0; float64(week) <= listingWeeks; week += 2 {
		monthsElapsed := (float64(deal.RenovationMonths)*constants.WeeksPerMonth + float64(week)) /
			constants.WeeksPerMonth

		var price float64
		override, pinned := overrides[week]
		if pinned {
			price = priceForTarget(override, calc.Costs.Total, monthsElapsed, factor)
		} else {
			dailyRate := deal.TargetReturn / (constants.PercentageMultiplier * constants.DaysPerYear)
			daysEarly := (listingWeeks - float64(week)) * constants.DaysPerWeek
			discount := deal.SellingPrice * dailyRate * daysEarly
			price = mathutil.Max(0, deal.SellingPrice-discount)
		}

		revenueNet := price * factor
		profit := revenueNet - calc.Costs.Total

		row := ScheduleRow{
			Week:             week,
			Label:            weekLabel(week),
			Discount:         mathutil.RoundWhole(deal.SellingPrice - price),
			RecommendedPrice: mathutil.RoundWhole(price),
			Profit:           mathutil.RoundWhole(profit),
			ROI:              roiPercent(profit, calc.Costs.Total),
			IRR:              irrPercent(revenueNet, calc.Costs.Total, monthsElapsed),
			MonthsElapsed:    mathutil.RoundTenth(monthsElapsed),
		}
		if pinned {
			row.Override = override.Type
		}
		rows = append(rows, row)
	}

	return rows
}

// priceForTarget inverts the return formulas: it finds the sale price
// whose net proceeds hit the pinned ROI or IRR against the fixed cost
// basis.
func priceForTarget(override Override, totalCosts, monthsElapsed, factor float64) float64 {
	if factor <= 0 {
		return 0
	}

	var targetNet float64
	switch override.Type {
	case OverrideIRR:
		targetNet = totalCosts * math.Pow(1+override.Value/constants.PercentageMultiplier,
			monthsElapsed/constants.MonthsPerYear)
	default:
		targetNet = (override.Value/constants.PercentageMultiplier + 1) * totalCosts
	}
	return targetNet / factor
}

// OverridesFromConfig converts config-file override entries into the map
// form the schedule generator consumes. Later entries for the same week
// win.
func OverridesFromConfig(entries []config.ScheduleOverride) map[int]Override {
	if len(entries) == 0 {
		return nil
	}
	overrides := make(map[int]Override, len(entries))
	for _, entry := range entries {
		overrides[entry.Week] = Override{Type: OverrideType(entry.Type), Value: entry.Value}
	}
	return overrides
}

func weekLabel(week int) string {
	if week == 0 {
		return "At listing"
	}
	return fmt.Sprintf("Week %d", week)
}
