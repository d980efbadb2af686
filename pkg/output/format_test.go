package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
)

func sampleReport() Report {
	deal := config.NewDeal()
	deal.Name = "Test Flip"
	deal.Location = "JVC"
	deal.PurchasePrice = 500000
	deal.SellingPrice = 700000
	deal.SellerCommission = 4
	deal.RenovationMonths = 3
	deal.ListingMonths = 2

	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	calc := engine.Calculate(deal, now)
	return Report{
		Deal:         deal,
		Calculations: calc,
		Sensitivity:  engine.Sensitivity(deal, calc),
		Schedule:     engine.EarlySchedule(deal, calc, nil),
		Waterfall:    engine.Waterfall(deal, calc),
		Warnings:     []string{"test warning"},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() { PrettyFormat(sampleReport()) })

	for _, fragment := range []string{
		"Analysis for Test Flip",
		"DLD fee",
		"Break-even price",
		"Sensitivity (profit)",
		"Early-sale schedule",
		"At listing",
		"Waterfall",
		"Net profit",
		"test warning",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("pretty output missing %q", fragment)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	report := sampleReport()
	out := captureStdout(t, func() { CsvFormat(report) })

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus one line per schedule row.
	if len(lines) != len(report.Schedule)+1 {
		t.Fatalf("got %d lines, expected %d", len(lines), len(report.Schedule)+1)
	}
	if !strings.HasPrefix(lines[0], `"week","label"`) {
		t.Errorf("header = %q, expected week/label columns", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"0","At listing"`) {
		t.Errorf("first row = %q, expected week 0", lines[1])
	}
}
