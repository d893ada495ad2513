package batchhandler

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateBatchPayload(t *testing.T) {
	valid := batchPayload{
		Description:   "January payroll",
		EffectiveDate: "2024-01-31",
		Payments: []paymentPayload{
			{EmployeeID: "e-1", Amount: decimal.RequireFromString("1500.50")},
		},
	}

	tests := []struct {
		name     string
		mutate   func(*batchPayload)
		wantWord string
	}{
		{
			name:   "valid",
			mutate: func(p *batchPayload) {},
		},
		{
			name:     "no payments",
			mutate:   func(p *batchPayload) { p.Payments = nil },
			wantWord: "payments",
		},
		{
			name:     "bad effective date",
			mutate:   func(p *batchPayload) { p.EffectiveDate = "31/01/2024" },
			wantWord: "effectiveDate",
		},
		{
			name:     "missing employee id",
			mutate:   func(p *batchPayload) { p.Payments[0].EmployeeID = " " },
			wantWord: "employeeId",
		},
		{
			name:     "negative amount",
			mutate:   func(p *batchPayload) { p.Payments[0].Amount = decimal.RequireFromString("-5") },
			wantWord: "amount",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			payload := valid
			payload.Payments = make([]paymentPayload, len(valid.Payments))
			copy(payload.Payments, valid.Payments)
			tc.mutate(&payload)

			err := validateBatchPayload(payload)
			if tc.wantWord == "" {
				if err != nil {
					t.Fatalf("unexpected validation error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantWord) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.wantWord)
			}
		})
	}
}
