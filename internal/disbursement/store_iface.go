package disbursement

import "context"

type StoreAPI interface {
	CreateEmployee(ctx context.Context, employee Employee, accountNumberEnc string) (string, error)
	ListEmployees(ctx context.Context) ([]Employee, error)

	CreateBatch(ctx context.Context, batch Batch, payments []BatchPayment) (string, error)
	ListBatches(ctx context.Context) ([]Batch, error)
	GetBatch(ctx context.Context, batchID string) (Batch, error)
	ListPaymentRows(ctx context.Context, batchID string) ([]PaymentRow, error)
	UpdateBatchStatus(ctx context.Context, batchID, status string) error

	SaveBankFile(ctx context.Context, file BankFile) (string, error)
	ListBankFiles(ctx context.Context, batchID string) ([]BankFile, error)
	GetBankFile(ctx context.Context, fileID string) (BankFile, error)
}
