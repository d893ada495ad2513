package disbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	BankName      string    `json:"bankName"`
	RoutingNumber string    `json:"routingNumber"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	IBAN          string    `json:"iban,omitempty"`
	SwiftCode     string    `json:"swiftCode,omitempty"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Batch struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	EffectiveDate string    `json:"effectiveDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BatchPayment struct {
	ID         string          `json:"id"`
	BatchID    string          `json:"batchId"`
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Reference  string          `json:"reference"`
}

// PaymentRow is a batch payment joined with the employee's bank details.
// AccountNumberEnc stays encrypted until the service builds the outbound
// payment list.
type PaymentRow struct {
	PaymentID        string
	EmployeeID       string
	EmployeeName     string
	Amount           decimal.Decimal
	Currency         string
	Reference        string
	BankName         string
	RoutingNumber    string
	AccountNumberEnc string
	IBAN             string
	SwiftCode        string
}

type BankFile struct {
	ID          string          `json:"id"`
	BatchID     string          `json:"batchId"`
	Format      string          `json:"format"`
	Filename    string          `json:"filename"`
	RecordCount int             `json:"recordCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Content     string          `json:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
}

const (
	BatchStatusOpen      = "open"
	BatchStatusGenerated = "generated"
)
