package bankfile

import "github.com/shopspring/decimal"

// Payment is a single payroll disbursement instruction. Amount carries
// currency-minor-unit precision (2 decimals).
type Payment struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	EmployeeName  string          `json:"employeeName"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
	RoutingNumber string          `json:"routingNumber"`
	BankName      string          `json:"bankName"`
	IBAN          string          `json:"iban,omitempty"`
	SwiftCode     string          `json:"swiftCode,omitempty"`
	Reference     string          `json:"reference"`
	EffectiveDate string          `json:"effectiveDate"`
}

// Metadata carries caller-supplied originator details. Missing keys fall
// back to configured or placeholder defaults, never to empty fields.
type Metadata map[string]string

// Result is the assembled bank file plus audit metadata. RecordCount and
// TotalAmount always match the input batch exactly.
type Result struct {
	Content     string          `json:"content"`
	Filename    string          `json:"filename"`
	Format      Format          `json:"format"`
	RecordCount int             `json:"recordCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// amountCents converts an amount to integer cents, rounding half away from
// zero. The same conversion feeds both per-entry amounts and control totals
// so the two always agree.
func amountCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func batchTotal(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
