package disbursement

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// RemittanceAdvicePDF renders a human-readable summary of a batch for the
// payroll operator's records. Account numbers are not included.
func (s *Service) RemittanceAdvicePDF(ctx context.Context, batchID string) ([]byte, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListPaymentRows(ctx, batchID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Remittance Advice")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Batch: %s", batch.Description))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Effective Date: %s", batch.EffectiveDate))
	pdf.Ln(10)

	total := decimal.Zero
	for _, row := range rows {
		pdf.Cell(0, 7, fmt.Sprintf("%s  %s %s  %s", row.EmployeeName, row.Amount.StringFixed(2), row.Currency, row.Reference))
		pdf.Ln(6)
		total = total.Add(row.Amount)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payments: %d    Total: %s", len(rows), total.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
