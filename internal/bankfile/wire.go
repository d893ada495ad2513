package bankfile

import (
	"fmt"
	"strings"
	"time"
)

// encodeWire renders a human-readable instruction sheet for manual wire
// initiation. No machine-parseable structure is implied.
func encodeWire(payments []Payment, meta Metadata, now time.Time) (string, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "WIRE TRANSFER INSTRUCTIONS\n")
	fmt.Fprintf(&sb, "Generated: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Company: %s\n", meta.get(MetaCompanyName, defaultCompanyName))
	fmt.Fprintf(&sb, "Total Payments: %d\n", len(payments))
	fmt.Fprintf(&sb, "Total Amount: %s\n", batchTotal(payments).StringFixed(2))

	for i, p := range payments {
		if p.Amount.IsNegative() {
			return "", encodingErr(i, "amount", "must not be negative")
		}
		account := p.AccountNumber
		if account == "" {
			account = p.IBAN
		}
		routing := p.SwiftCode
		if routing == "" {
			routing = p.RoutingNumber
		}
		currency := p.Currency
		if currency == "" {
			currency = "USD"
		}

		fmt.Fprintf(&sb, "\n--- Payment %d ---\n", i+1)
		fmt.Fprintf(&sb, "Beneficiary: %s\n", p.EmployeeName)
		fmt.Fprintf(&sb, "Account: %s\n", account)
		fmt.Fprintf(&sb, "Bank: %s\n", p.BankName)
		fmt.Fprintf(&sb, "SWIFT/Routing: %s\n", routing)
		fmt.Fprintf(&sb, "Amount: %s %s\n", p.Amount.StringFixed(2), currency)
		fmt.Fprintf(&sb, "Reference: %s\n", p.Reference)
		fmt.Fprintf(&sb, "Effective Date: %s\n", p.EffectiveDate)
	}

	return sb.String(), nil
}
