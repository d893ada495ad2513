package disbursement

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRemittanceAdvicePDF(t *testing.T) {
	store := &fakeStore{
		batch: Batch{ID: "batch-1", Description: "January payroll", EffectiveDate: "2024-01-31"},
		rows: []PaymentRow{
			{EmployeeName: "Jane Doe", Amount: decimal.RequireFromString("1500.50"), Currency: "USD", Reference: "PAYROLL-JAN"},
			{EmployeeName: "John Smith", Amount: decimal.RequireFromString("2200.75"), Currency: "USD", Reference: "PAYROLL-JAN"},
		},
	}
	service, _ := newTestService(t, store)

	pdf, err := service.RemittanceAdvicePDF(context.Background(), "batch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestRemittanceAdvicePDFUnknownBatch(t *testing.T) {
	service, _ := newTestService(t, &fakeStore{})
	if _, err := service.RemittanceAdvicePDF(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown batch")
	}
}
