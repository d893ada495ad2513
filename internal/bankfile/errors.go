package bankfile

import "fmt"

// UnsupportedFormatError reports a format value no encoder handles. This is
// a caller bug, never retryable.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported bank file format %q", e.Format)
}

// EncodingError reports a payment record that is missing or malformed for
// the chosen rail. Index is the record's position in the batch.
type EncodingError struct {
	Index int
	Field string
	Cause string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("payment %d: %s %s", e.Index, e.Field, e.Cause)
}

func encodingErr(index int, field, cause string) *EncodingError {
	return &EncodingError{Index: index, Field: field, Cause: cause}
}
