package disbursement

import (
	"context"
	"fmt"

	"paydispatch/internal/bankfile"
	"paydispatch/internal/crypto"
)

// Service coordinates batch persistence, field encryption, and bank file
// generation.
type Service struct {
	store    StoreAPI
	cipher   *crypto.Cipher
	files    *bankfile.Service
	defaults bankfile.Metadata
}

func NewService(store StoreAPI, cipher *crypto.Cipher, files *bankfile.Service, defaults bankfile.Metadata) *Service {
	return &Service{store: store, cipher: cipher, files: files, defaults: defaults}
}

// CreateEmployee encrypts the account number before it reaches the store.
// Plaintext account numbers never touch the database or the logs.
func (s *Service) CreateEmployee(ctx context.Context, employee Employee) (string, error) {
	enc := ""
	if employee.AccountNumber != "" {
		var err error
		enc, err = s.cipher.EncryptString(employee.AccountNumber)
		if err != nil {
			return "", fmt.Errorf("encrypt account number: %w", err)
		}
	}
	return s.store.CreateEmployee(ctx, employee, enc)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) CreateBatch(ctx context.Context, batch Batch, payments []BatchPayment) (string, error) {
	return s.store.CreateBatch(ctx, batch, payments)
}

func (s *Service) ListBatches(ctx context.Context) ([]Batch, error) {
	return s.store.ListBatches(ctx)
}

func (s *Service) GetBatch(ctx context.Context, batchID string) (Batch, error) {
	return s.store.GetBatch(ctx, batchID)
}

func (s *Service) ListBankFiles(ctx context.Context, batchID string) ([]BankFile, error) {
	return s.store.ListBankFiles(ctx, batchID)
}

func (s *Service) GetBankFile(ctx context.Context, fileID string) (BankFile, error) {
	return s.store.GetBankFile(ctx, fileID)
}

// GenerateFile builds the outbound payment list for a batch, encodes it for
// the requested rail, and persists the result for later download and audit.
func (s *Service) GenerateFile(ctx context.Context, batchID string, format bankfile.Format, metadata bankfile.Metadata) (BankFile, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return BankFile{}, err
	}
	rows, err := s.store.ListPaymentRows(ctx, batchID)
	if err != nil {
		return BankFile{}, err
	}

	payments, err := s.buildPayments(batch, rows)
	if err != nil {
		return BankFile{}, err
	}

	result, err := s.files.Generate(format, payments, s.mergeMetadata(metadata))
	if err != nil {
		return BankFile{}, err
	}

	file := BankFile{
		BatchID:     batchID,
		Format:      string(result.Format),
		Filename:    result.Filename,
		RecordCount: result.RecordCount,
		TotalAmount: result.TotalAmount,
		Content:     result.Content,
	}
	file.ID, err = s.store.SaveBankFile(ctx, file)
	if err != nil {
		return BankFile{}, err
	}
	if err := s.store.UpdateBatchStatus(ctx, batchID, BatchStatusGenerated); err != nil {
		return BankFile{}, err
	}
	return file, nil
}

func (s *Service) buildPayments(batch Batch, rows []PaymentRow) ([]bankfile.Payment, error) {
	payments := make([]bankfile.Payment, 0, len(rows))
	for _, row := range rows {
		account := ""
		if row.AccountNumberEnc != "" {
			var err error
			account, err = s.cipher.DecryptString(row.AccountNumberEnc)
			if err != nil {
				return nil, fmt.Errorf("employee %s: %w", row.EmployeeID, err)
			}
		}
		payments = append(payments, bankfile.Payment{
			ID:            row.PaymentID,
			EmployeeID:    row.EmployeeID,
			EmployeeName:  row.EmployeeName,
			Amount:        row.Amount,
			Currency:      row.Currency,
			AccountNumber: account,
			RoutingNumber: row.RoutingNumber,
			BankName:      row.BankName,
			IBAN:          row.IBAN,
			SwiftCode:     row.SwiftCode,
			Reference:     row.Reference,
			EffectiveDate: batch.EffectiveDate,
		})
	}
	return payments, nil
}

func (s *Service) mergeMetadata(overrides bankfile.Metadata) bankfile.Metadata {
	merged := bankfile.Metadata{}
	for key, value := range s.defaults {
		merged[key] = value
	}
	for key, value := range overrides {
		if value != "" {
			merged[key] = value
		}
	}
	return merged
}
