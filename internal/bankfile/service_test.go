package bankfile

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testService(at time.Time) *Service {
	svc := NewService(false)
	svc.now = func() time.Time { return at }
	return svc
}

func TestGenerateInvariants(t *testing.T) {
	payments := achTestPayments()
	wantTotal := decimal.RequireFromString("3701.25")

	for _, format := range []Format{FormatACH, FormatSEPA, FormatWire, FormatCSV} {
		format := format
		t.Run(string(format), func(t *testing.T) {
			result, err := testService(achTestTime).Generate(format, payments, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.RecordCount != len(payments) {
				t.Fatalf("recordCount = %d, want %d", result.RecordCount, len(payments))
			}
			if !result.TotalAmount.Equal(wantTotal) {
				t.Fatalf("totalAmount = %s, want %s", result.TotalAmount, wantTotal)
			}
			if result.Format != format {
				t.Fatalf("format = %s, want %s", result.Format, format)
			}
			if result.Content == "" {
				t.Fatal("content must not be empty")
			}
		})
	}
}

func TestGenerateFilenames(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatACH, "ACH_2024-01-15.txt"},
		{FormatSEPA, "SEPA_2024-01-15.xml"},
		{FormatWire, "WIRE_2024-01-15.txt"},
		{FormatCSV, "CSV_2024-01-15.csv"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.format), func(t *testing.T) {
			result, err := testService(achTestTime).Generate(tc.format, achTestPayments(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Filename != tc.want {
				t.Fatalf("filename = %q, want %q", result.Filename, tc.want)
			}
		})
	}
}

func TestGenerateFilenameDeterministicWithinDay(t *testing.T) {
	morning := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 15, 22, 45, 0, 0, time.UTC)

	first, err := testService(morning).Generate(FormatCSV, achTestPayments(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := testService(evening).Generate(FormatCSV, sepaTestPayments(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Filename != second.Filename {
		t.Fatalf("same-day filenames differ: %q vs %q", first.Filename, second.Filename)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := testService(achTestTime).Generate("BACS", achTestPayments(), nil)
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Format != "BACS" {
		t.Fatalf("error names format %q, want BACS", unsupported.Format)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	payments := achTestPayments()
	snapshot := make([]Payment, len(payments))
	copy(snapshot, payments)

	for _, format := range []Format{FormatACH, FormatSEPA, FormatWire, FormatCSV} {
		if _, err := testService(achTestTime).Generate(format, payments, nil); err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
	}
	if !reflect.DeepEqual(payments, snapshot) {
		t.Fatal("input payments were mutated")
	}
}

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"ACH", "SEPA", "WIRE", "CSV"} {
		if _, err := ParseFormat(value); err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", value, err)
		}
	}
	if _, err := ParseFormat("ach"); err == nil {
		t.Fatal("formats are case-sensitive; lowercase must be rejected")
	}
}
