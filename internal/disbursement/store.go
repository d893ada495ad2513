package disbursement

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateEmployee(ctx context.Context, employee Employee, accountNumberEnc string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, bank_name, routing_number, account_number_enc, iban, swift_code, currency)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, employee.Name, employee.BankName, employee.RoutingNumber, accountNumberEnc,
		employee.IBAN, employee.SwiftCode, employee.Currency).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, bank_name, routing_number, iban, swift_code, currency, created_at
    FROM employees
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.BankName, &e.RoutingNumber, &e.IBAN, &e.SwiftCode, &e.Currency, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) CreateBatch(ctx context.Context, batch Batch, payments []BatchPayment) (string, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
    INSERT INTO pay_batches (description, effective_date, status)
    VALUES ($1,$2,$3)
    RETURNING id
  `, batch.Description, batch.EffectiveDate, BatchStatusOpen).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, p := range payments {
		if _, err := tx.Exec(ctx, `
      INSERT INTO batch_payments (batch_id, employee_id, amount, currency, reference)
      VALUES ($1,$2,$3,$4,$5)
    `, id, p.EmployeeID, p.Amount.StringFixed(2), p.Currency, p.Reference); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, effective_date::text, status, created_at
    FROM pay_batches
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.Description, &b.EffectiveDate, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (s *Store) GetBatch(ctx context.Context, batchID string) (Batch, error) {
	var b Batch
	err := s.DB.QueryRow(ctx, `
    SELECT id, description, effective_date::text, status, created_at
    FROM pay_batches
    WHERE id = $1
  `, batchID).Scan(&b.ID, &b.Description, &b.EffectiveDate, &b.Status, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Batch{}, ErrNotFound
	}
	if err != nil {
		return Batch{}, err
	}
	return b, nil
}

func (s *Store) ListPaymentRows(ctx context.Context, batchID string) ([]PaymentRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.employee_id, e.name, p.amount::text, p.currency, p.reference,
           e.bank_name, e.routing_number, e.account_number_enc, e.iban, e.swift_code
    FROM batch_payments p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.batch_id = $1
    ORDER BY e.name
  `, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PaymentRow
	for rows.Next() {
		var r PaymentRow
		var amount string
		if err := rows.Scan(&r.PaymentID, &r.EmployeeID, &r.EmployeeName, &amount, &r.Currency, &r.Reference,
			&r.BankName, &r.RoutingNumber, &r.AccountNumberEnc, &r.IBAN, &r.SwiftCode); err != nil {
			return nil, err
		}
		r.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) UpdateBatchStatus(ctx context.Context, batchID, status string) error {
	_, err := s.DB.Exec(ctx, `UPDATE pay_batches SET status = $2 WHERE id = $1`, batchID, status)
	return err
}

func (s *Store) SaveBankFile(ctx context.Context, file BankFile) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO bank_files (batch_id, format, filename, record_count, total_amount, content)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, file.BatchID, file.Format, file.Filename, file.RecordCount,
		file.TotalAmount.StringFixed(2), file.Content).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListBankFiles(ctx context.Context, batchID string) ([]BankFile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, batch_id, format, filename, record_count, total_amount::text, created_at
    FROM bank_files
    WHERE batch_id = $1
    ORDER BY created_at DESC
  `, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []BankFile
	for rows.Next() {
		var f BankFile
		var total string
		if err := rows.Scan(&f.ID, &f.BatchID, &f.Format, &f.Filename, &f.RecordCount, &total, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.TotalAmount, err = decimal.NewFromString(total)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *Store) GetBankFile(ctx context.Context, fileID string) (BankFile, error) {
	var f BankFile
	var total string
	err := s.DB.QueryRow(ctx, `
    SELECT id, batch_id, format, filename, record_count, total_amount::text, content, created_at
    FROM bank_files
    WHERE id = $1
  `, fileID).Scan(&f.ID, &f.BatchID, &f.Format, &f.Filename, &f.RecordCount, &total, &f.Content, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return BankFile{}, ErrNotFound
	}
	if err != nil {
		return BankFile{}, err
	}
	f.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return BankFile{}, err
	}
	return f, nil
}
