package bankfile

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// pain.001.001.03 document structure. Building the file through the XML
// marshaller keeps every text node escaped; employee names and references
// are untrusted input.

type sepaDocument struct {
	XMLName    xml.Name       `xml:"Document"`
	Namespace  string         `xml:"xmlns,attr"`
	Initiation sepaInitiation `xml:"CstmrCdtTrfInitn"`
}

type sepaInitiation struct {
	GroupHeader sepaGroupHeader `xml:"GrpHdr"`
	PaymentInfo sepaPaymentInfo `xml:"PmtInf"`
}

type sepaGroupHeader struct {
	MessageID      string    `xml:"MsgId"`
	CreationTime   string    `xml:"CreDtTm"`
	NumberOfTxs    string    `xml:"NbOfTxs"`
	ControlSum     string    `xml:"CtrlSum"`
	InitiatingName sepaParty `xml:"InitgPty"`
}

type sepaParty struct {
	Name string `xml:"Nm"`
}

type sepaPaymentInfo struct {
	PaymentInfoID string            `xml:"PmtInfId"`
	Method        string            `xml:"PmtMtd"`
	NumberOfTxs   string            `xml:"NbOfTxs"`
	ControlSum    string            `xml:"CtrlSum"`
	TypeInfo      sepaTypeInfo      `xml:"PmtTpInf"`
	ExecutionDate string            `xml:"ReqdExctnDt"`
	Debtor        sepaParty         `xml:"Dbtr"`
	DebtorAccount sepaAccount       `xml:"DbtrAcct"`
	DebtorAgent   sepaAgent         `xml:"DbtrAgt"`
	ChargeBearer  string            `xml:"ChrgBr"`
	Transactions  []sepaTransaction `xml:"CdtTrfTxInf"`
}

type sepaTypeInfo struct {
	ServiceLevel sepaServiceLevel `xml:"SvcLvl"`
}

type sepaServiceLevel struct {
	Code string `xml:"Cd"`
}

type sepaAccount struct {
	ID sepaAccountID `xml:"Id"`
}

type sepaAccountID struct {
	IBAN string `xml:"IBAN"`
}

type sepaAgent struct {
	Institution sepaInstitution `xml:"FinInstnId"`
}

type sepaInstitution struct {
	BIC string `xml:"BIC"`
}

type sepaTransaction struct {
	PaymentID       sepaPaymentID  `xml:"PmtId"`
	Amount          sepaAmount     `xml:"Amt"`
	CreditorAgent   sepaAgent      `xml:"CdtrAgt"`
	Creditor        sepaParty      `xml:"Cdtr"`
	CreditorAccount sepaAccount    `xml:"CdtrAcct"`
	Remittance      sepaRemittance `xml:"RmtInf"`
}

type sepaPaymentID struct {
	EndToEndID string `xml:"EndToEndId"`
}

type sepaAmount struct {
	Instructed sepaInstructedAmount `xml:"InstdAmt"`
}

type sepaInstructedAmount struct {
	Currency string `xml:"Ccy,attr"`
	Value    string `xml:",chardata"`
}

type sepaRemittance struct {
	Unstructured string `xml:"Ustrd"`
}

// encodeSEPA renders a payroll batch as a pain.001.001.03 credit transfer
// initiation. Callers should not submit empty batches: the requested
// execution date comes from the first payment and falls back to today.
func encodeSEPA(payments []Payment, meta Metadata, now time.Time) (string, error) {
	total := batchTotal(payments)
	msgID := "PAYROLL-" + now.Format("20060102150405")

	executionDate := now.Format("2006-01-02")
	if len(payments) > 0 && payments[0].EffectiveDate != "" {
		executionDate = payments[0].EffectiveDate
	}

	info := sepaPaymentInfo{
		PaymentInfoID: msgID + "-01",
		Method:        "TRF",
		NumberOfTxs:   strconv.Itoa(len(payments)),
		ControlSum:    total.StringFixed(2),
		TypeInfo:      sepaTypeInfo{ServiceLevel: sepaServiceLevel{Code: "SEPA"}},
		ExecutionDate: executionDate,
		Debtor:        sepaParty{Name: meta.get(MetaDebtorName, defaultCompanyName)},
		DebtorAccount: sepaAccount{ID: sepaAccountID{IBAN: meta.get(MetaDebtorIBAN, defaultDebtorIBAN)}},
		DebtorAgent:   sepaAgent{Institution: sepaInstitution{BIC: meta.get(MetaDebtorBIC, defaultBIC)}},
		ChargeBearer:  "SLEV",
	}

	for i, p := range payments {
		if strings.TrimSpace(p.EmployeeName) == "" {
			return "", encodingErr(i, "employeeName", "is required for SEPA")
		}
		if p.Amount.IsNegative() {
			return "", encodingErr(i, "amount", "must not be negative")
		}
		iban := p.IBAN
		if iban == "" {
			iban = p.AccountNumber
		}
		if strings.TrimSpace(iban) == "" {
			return "", encodingErr(i, "iban", "is required for SEPA")
		}
		bic := p.SwiftCode
		if bic == "" {
			bic = defaultBIC
		}
		currency := p.Currency
		if currency == "" {
			currency = "EUR"
		}

		info.Transactions = append(info.Transactions, sepaTransaction{
			PaymentID:       sepaPaymentID{EndToEndID: p.ID},
			Amount:          sepaAmount{Instructed: sepaInstructedAmount{Currency: currency, Value: p.Amount.StringFixed(2)}},
			CreditorAgent:   sepaAgent{Institution: sepaInstitution{BIC: bic}},
			Creditor:        sepaParty{Name: p.EmployeeName},
			CreditorAccount: sepaAccount{ID: sepaAccountID{IBAN: iban}},
			Remittance:      sepaRemittance{Unstructured: p.Reference},
		})
	}

	doc := sepaDocument{
		Namespace: "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03",
		Initiation: sepaInitiation{
			GroupHeader: sepaGroupHeader{
				MessageID:      msgID,
				CreationTime:   now.Format(time.RFC3339),
				NumberOfTxs:    strconv.Itoa(len(payments)),
				ControlSum:     total.StringFixed(2),
				InitiatingName: sepaParty{Name: meta.get(MetaDebtorName, defaultCompanyName)},
			},
			PaymentInfo: info,
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pain.001: %w", err)
	}
	return xml.Header + string(body), nil
}
