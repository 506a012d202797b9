package measure

import (
	"errors"
	"fmt"
)

var (
	ErrIO              = errors.New("io error")
	ErrEncoding        = errors.New("invalid utf-8")
	ErrFormat          = errors.New("invalid number")
	ErrMalformedRecord = errors.New("separator not found")
)

// maxRaw limits how much of an offending record is kept in a RecordError.
const maxRaw = 64

// RecordError reports a record that could not be parsed. Raw is a private
// copy, so the error stays valid after the file view is closed.
type RecordError struct {
	Offset int64
	Raw    []byte
	Err    error
}

// NewRecordError copies at most 64 bytes of raw.
func NewRecordError(offset int64, raw []byte, err error) *RecordError {
	if len(raw) > maxRaw {
		raw = raw[:maxRaw]
	}
	return &RecordError{
		Offset: offset,
		Raw:    append([]byte(nil), raw...),
		Err:    err,
	}
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record at offset %d %q: %v", e.Offset, e.Raw, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
