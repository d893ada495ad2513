package bankfile

import "strings"

var csvHeader = []string{
	"Employee ID", "Employee Name", "Amount", "Currency",
	"Account Number", "Routing Number", "Bank Name",
	"IBAN", "SWIFT Code", "Reference", "Effective Date",
}

// encodeCSV renders one quoted row per payment. Every field is quoted and
// embedded quotes are doubled, so the output stays valid for standard CSV
// parsers regardless of field content.
func encodeCSV(payments []Payment, _ Metadata) (string, error) {
	var sb strings.Builder
	sb.WriteString(csvRow(csvHeader))

	for i, p := range payments {
		if p.Amount.IsNegative() {
			return "", encodingErr(i, "amount", "must not be negative")
		}
		sb.WriteString(csvRow([]string{
			p.EmployeeID,
			p.EmployeeName,
			p.Amount.StringFixed(2),
			p.Currency,
			p.AccountNumber,
			p.RoutingNumber,
			p.BankName,
			p.IBAN,
			p.SwiftCode,
			p.Reference,
			p.EffectiveDate,
		}))
	}

	return sb.String(), nil
}

func csvRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}
