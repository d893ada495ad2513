package bankfile

import (
	"fmt"
	"log/slog"
	"time"
)

// Service assembles payment batches into rail-specific bank files. The zero
// value is not usable; construct with NewService. Safe for concurrent use:
// every Generate call is a pure transformation of its inputs.
type Service struct {
	padACHBlocks bool
	now          func() time.Time
}

func NewService(padACHBlocks bool) *Service {
	return &Service{padACHBlocks: padACHBlocks, now: time.Now}
}

// Generate encodes payments for the requested rail and wraps the body with
// filename and audit totals. The input slice is never mutated. Fails with
// UnsupportedFormatError for an unknown format and EncodingError when a
// payment lacks a field the rail requires. Account numbers are never logged.
func (s *Service) Generate(format Format, payments []Payment, metadata Metadata) (Result, error) {
	now := s.now()

	var content string
	var err error
	switch format {
	case FormatACH:
		content, err = encodeACH(payments, metadata, now, s.padACHBlocks)
	case FormatSEPA:
		content, err = encodeSEPA(payments, metadata, now)
	case FormatWire:
		content, err = encodeWire(payments, metadata, now)
	case FormatCSV:
		content, err = encodeCSV(payments, metadata)
	default:
		err = &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		slog.Error("bank file generation failed",
			"format", format, "records", len(payments), "err", err)
		return Result{}, err
	}

	result := Result{
		Content:     content,
		Filename:    fmt.Sprintf("%s_%s.%s", format, now.Format("2006-01-02"), format.Extension()),
		Format:      format,
		RecordCount: len(payments),
		TotalAmount: batchTotal(payments),
	}

	slog.Info("bank file generated",
		"format", format,
		"records", result.RecordCount,
		"total", result.TotalAmount.StringFixed(2),
		"filename", result.Filename)
	return result, nil
}
