package bankfile

// Format selects the banking rail a batch is encoded for.
type Format string

const (
	FormatACH  Format = "ACH"
	FormatSEPA Format = "SEPA"
	FormatWire Format = "WIRE"
	FormatCSV  Format = "CSV"
)

// Metadata keys recognized by the encoders.
const (
	MetaCompanyName        = "companyName"
	MetaCompanyID          = "companyId"
	MetaOriginRouting      = "originRouting"
	MetaDestinationRouting = "destinationRouting"
	MetaDestinationName    = "destinationName"
	MetaDebtorName         = "debtorName"
	MetaDebtorIBAN         = "debtorIban"
	MetaDebtorBIC          = "debtorBic"
)

const (
	defaultCompanyName   = "COMPANY PAYROLL"
	defaultCompanyID     = "0000000000"
	defaultOriginRouting = "000000000"
	defaultDebtorIBAN    = "DE00000000000000000000"

	// SEPA convention for an unknown BIC; never emit an empty BIC element.
	defaultBIC = "NOTPROVIDED"
)

// ParseFormat validates a caller-supplied format string.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatACH, FormatSEPA, FormatWire, FormatCSV:
		return Format(value), nil
	}
	return "", &UnsupportedFormatError{Format: value}
}

// Extension returns the file extension for the rail.
func (f Format) Extension() string {
	switch f {
	case FormatSEPA:
		return "xml"
	case FormatCSV:
		return "csv"
	default:
		return "txt"
	}
}

// ContentType returns the MIME type a file of this rail should be served as.
func (f Format) ContentType() string {
	switch f {
	case FormatSEPA:
		return "application/xml"
	case FormatCSV:
		return "text/csv"
	default:
		return "text/plain"
	}
}

func (m Metadata) get(key, fallback string) string {
	if m != nil && m[key] != "" {
		return m[key]
	}
	return fallback
}
