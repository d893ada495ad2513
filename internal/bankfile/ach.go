package bankfile

import (
	"strconv"
	"strings"
	"time"
)

// NACHA record layouts. Widths per field must sum to 94; renderFixed
// enforces padding rules centrally.

type achFileHeader struct {
	RecordType           string `fixed:"1"`
	PriorityCode         string `fixed:"2,numeric"`
	ImmediateDestination string `fixed:"10"`
	ImmediateOrigin      string `fixed:"10"`
	CreationDate         string `fixed:"6,numeric"`
	CreationTime         string `fixed:"4,numeric"`
	FileIDModifier       string `fixed:"1"`
	RecordSize           string `fixed:"3,numeric"`
	BlockingFactor       string `fixed:"2,numeric"`
	FormatCode           string `fixed:"1,numeric"`
	DestinationName      string `fixed:"23"`
	OriginName           string `fixed:"23"`
	ReferenceCode        string `fixed:"8"`
}

type achBatchHeader struct {
	RecordType         string `fixed:"1"`
	ServiceClassCode   string `fixed:"3,numeric"`
	CompanyName        string `fixed:"16"`
	DiscretionaryData  string `fixed:"20"`
	CompanyID          string `fixed:"10"`
	SECCode            string `fixed:"3"`
	EntryDescription   string `fixed:"10"`
	DescriptiveDate    string `fixed:"6"`
	EffectiveEntryDate string `fixed:"6,numeric"`
	SettlementDate     string `fixed:"3"`
	OriginatorStatus   string `fixed:"1"`
	OriginatingDFI     string `fixed:"8,numeric"`
	BatchNumber        int64  `fixed:"7"`
}

type achEntryDetail struct {
	RecordType       string `fixed:"1"`
	TransactionCode  string `fixed:"2,numeric"`
	ReceivingDFI     string `fixed:"8,numeric"`
	CheckDigit       string `fixed:"1,numeric"`
	AccountNumber    string `fixed:"17"`
	Amount           int64  `fixed:"10"`
	IndividualID     string `fixed:"15"`
	IndividualName   string `fixed:"22"`
	Discretionary    string `fixed:"2"`
	AddendaIndicator string `fixed:"1,numeric"`
	TraceNumber      string `fixed:"15,numeric"`
}

type achBatchControl struct {
	RecordType        string `fixed:"1"`
	ServiceClassCode  string `fixed:"3,numeric"`
	EntryAddendaCount int64  `fixed:"6"`
	EntryHash         int64  `fixed:"10"`
	TotalDebits       int64  `fixed:"12"`
	TotalCredits      int64  `fixed:"12"`
	CompanyID         string `fixed:"10"`
	MessageAuthCode   string `fixed:"19"`
	Reserved          string `fixed:"6"`
	OriginatingDFI    string `fixed:"8,numeric"`
	BatchNumber       int64  `fixed:"7"`
}

type achFileControl struct {
	RecordType        string `fixed:"1"`
	BatchCount        int64  `fixed:"6"`
	BlockCount        int64  `fixed:"6"`
	EntryAddendaCount int64  `fixed:"8"`
	EntryHash         int64  `fixed:"10"`
	TotalDebits       int64  `fixed:"12"`
	TotalCredits      int64  `fixed:"12"`
	Reserved          string `fixed:"39"`
}

const (
	// 220 marks a credits-only batch; this encoder never emits debits.
	achServiceClassCredits = "220"
	achTransactionCredit   = "22"
	achEntryHashModulus    = int64(10_000_000_000)
	achBlockingFactor      = 10
)

// encodeACH renders a payroll batch as a NACHA file: file header, one
// credits-only batch, one entry detail per payment, batch and file control.
// When padBlocks is set, 9-filled filler records bring the record count to a
// multiple of the blocking factor.
func encodeACH(payments []Payment, meta Metadata, now time.Time, padBlocks bool) (string, error) {
	originRouting := digitsOnly(meta.get(MetaOriginRouting, defaultOriginRouting))
	if len(originRouting) < 8 {
		originRouting = strings.Repeat("0", 8-len(originRouting)) + originRouting
	}
	destRouting := digitsOnly(meta.get(MetaDestinationRouting, originRouting))
	companyName := meta.get(MetaCompanyName, defaultCompanyName)
	companyID := meta.get(MetaCompanyID, defaultCompanyID)

	lines := make([]string, 0, len(payments)+4)

	header := achFileHeader{
		RecordType:           "1",
		PriorityCode:         "01",
		ImmediateDestination: " " + padText(destRouting, 9),
		ImmediateOrigin:      " " + padText(companyID, 9),
		CreationDate:         now.Format("060102"),
		CreationTime:         now.Format("1504"),
		FileIDModifier:       "A",
		RecordSize:           "094",
		BlockingFactor:       strconv.Itoa(achBlockingFactor),
		FormatCode:           "1",
		DestinationName:      meta.get(MetaDestinationName, "BANK"),
		OriginName:           companyName,
		ReferenceCode:        "",
	}
	if err := appendFixed(&lines, header); err != nil {
		return "", err
	}

	batchHeader := achBatchHeader{
		RecordType:         "5",
		ServiceClassCode:   achServiceClassCredits,
		CompanyName:        companyName,
		CompanyID:          companyID,
		SECCode:            "PPD",
		EntryDescription:   "PAYROLL",
		DescriptiveDate:    now.Format("060102"),
		EffectiveEntryDate: achEffectiveDate(payments, now),
		OriginatorStatus:   "1",
		OriginatingDFI:     originRouting[:8],
		BatchNumber:        1,
	}
	if err := appendFixed(&lines, batchHeader); err != nil {
		return "", err
	}

	var entryHash, totalCredits int64
	for i, p := range payments {
		routing := digitsOnly(p.RoutingNumber)
		if len(routing) < 9 {
			return "", encodingErr(i, "routingNumber", "must be 9 digits for ACH")
		}
		if strings.TrimSpace(p.AccountNumber) == "" {
			return "", encodingErr(i, "accountNumber", "is required for ACH")
		}
		if p.Amount.IsNegative() {
			return "", encodingErr(i, "amount", "must not be negative")
		}

		cents := amountCents(p.Amount)
		receivingDFI := routing[:8]
		dfi, err := strconv.ParseInt(receivingDFI, 10, 64)
		if err != nil {
			return "", encodingErr(i, "routingNumber", "must be numeric for ACH")
		}
		entryHash += dfi
		totalCredits += cents

		entry := achEntryDetail{
			RecordType:       "6",
			TransactionCode:  achTransactionCredit,
			ReceivingDFI:     receivingDFI,
			CheckDigit:       routing[8:9],
			AccountNumber:    p.AccountNumber,
			Amount:           cents,
			IndividualID:     p.EmployeeID,
			IndividualName:   p.EmployeeName,
			AddendaIndicator: "0",
			TraceNumber:      originRouting[:8] + leftPadInt(int64(i+1), 7),
		}
		if err := appendFixed(&lines, entry); err != nil {
			return "", err
		}
	}

	// NACHA drops high-order digits beyond ten; mathematical mod, not the
	// string truncation some generators use.
	entryHash %= achEntryHashModulus

	batchControl := achBatchControl{
		RecordType:        "8",
		ServiceClassCode:  achServiceClassCredits,
		EntryAddendaCount: int64(len(payments)),
		EntryHash:         entryHash,
		TotalDebits:       0,
		TotalCredits:      totalCredits,
		CompanyID:         companyID,
		OriginatingDFI:    originRouting[:8],
		BatchNumber:       1,
	}
	if err := appendFixed(&lines, batchControl); err != nil {
		return "", err
	}

	recordCount := int64(len(lines)) + 1
	blockCount := (recordCount + achBlockingFactor - 1) / achBlockingFactor
	fileControl := achFileControl{
		RecordType:        "9",
		BatchCount:        1,
		BlockCount:        blockCount,
		EntryAddendaCount: int64(len(payments)),
		EntryHash:         entryHash,
		TotalDebits:       0,
		TotalCredits:      totalCredits,
	}
	if err := appendFixed(&lines, fileControl); err != nil {
		return "", err
	}

	if padBlocks {
		filler := strings.Repeat("9", nachaRecordLength)
		for len(lines)%achBlockingFactor != 0 {
			lines = append(lines, filler)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func appendFixed(lines *[]string, record any) error {
	line, err := renderFixed(record)
	if err != nil {
		return err
	}
	*lines = append(*lines, line)
	return nil
}

func achEffectiveDate(payments []Payment, now time.Time) string {
	if len(payments) > 0 {
		if d, err := time.Parse("2006-01-02", payments[0].EffectiveDate); err == nil {
			return d.Format("060102")
		}
	}
	return now.Format("060102")
}

func digitsOnly(value string) string {
	var sb strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func leftPadInt(n int64, width int) string {
	value := strconv.FormatInt(n, 10)
	if len(value) >= width {
		return value[len(value)-width:]
	}
	return strings.Repeat("0", width-len(value)) + value
}
