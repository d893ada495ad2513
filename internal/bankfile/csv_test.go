package bankfile

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeCSVRoundTrip(t *testing.T) {
	payments := achTestPayments()
	content, err := encodeCSV(payments, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(records) != len(payments)+1 {
		t.Fatalf("expected %d rows including header, got %d", len(payments)+1, len(records))
	}
	for i, p := range payments {
		row := records[i+1]
		got, err := decimal.NewFromString(row[2])
		if err != nil {
			t.Fatalf("row %d amount %q does not parse: %v", i, row[2], err)
		}
		if !got.Equal(p.Amount) {
			t.Fatalf("row %d amount = %s, want %s", i, got, p.Amount)
		}
	}
}

func TestEncodeCSVQuotesEveryField(t *testing.T) {
	content, err := encodeCSV(achTestPayments(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Fatalf("line not quoted end to end: %q", line)
		}
		if got := len(strings.Split(line, `","`)); got != len(csvHeader) {
			t.Fatalf("expected %d quoted fields, got %d in %q", len(csvHeader), got, line)
		}
	}
}

func TestEncodeCSVEscapesEmbeddedQuotes(t *testing.T) {
	payments := achTestPayments()
	payments[0].EmployeeName = `Jane "JJ" Doe`

	content, err := encodeCSV(payments, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, `"Jane ""JJ"" Doe"`) {
		t.Fatal("embedded quotes not doubled")
	}

	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("escaped output does not parse: %v", err)
	}
	if records[1][1] != `Jane "JJ" Doe` {
		t.Fatalf("name round-trip = %q", records[1][1])
	}
}

func TestEncodeCSVScenario(t *testing.T) {
	payments := []Payment{{
		EmployeeID:    "E1",
		EmployeeName:  "Jane Doe",
		Amount:        decimal.RequireFromString("1500.50"),
		Currency:      "USD",
		AccountNumber: "12345",
		RoutingNumber: "021000021",
		BankName:      "Chase",
		Reference:     "PAYROLL-JAN",
		EffectiveDate: "2024-01-31",
	}}

	content, err := encodeCSV(payments, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one data row, got %d rows", len(records))
	}
	if records[0][0] != "Employee ID" || records[0][10] != "Effective Date" {
		t.Fatalf("unexpected header row: %v", records[0])
	}
	if records[1][2] != "1500.50" {
		t.Fatalf("amount column = %q, want 1500.50", records[1][2])
	}
}
