package measure

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

const (
	// Sep separates station name and value.
	Sep = ';'
	// EOL terminates a record.
	EOL = '\n'
)

// ParseRecord splits a single record, without its line terminator, at the
// first separator and parses the value. The returned key aliases rec.
func ParseRecord(rec []byte) (key []byte, value float64, err error) {
	i := bytes.IndexByte(rec, Sep)
	if i == -1 {
		return nil, 0, ErrMalformedRecord
	}
	key = rec[:i]
	value, err = ParseFields(key, rec[i+1:])
	if err != nil {
		return nil, 0, err
	}
	return key, value, nil
}

// ParseFields validates an already split record. Callers that track the
// separator position while scanning use this to avoid splitting twice.
func ParseFields(key, value []byte) (float64, error) {
	if !utf8.Valid(key) {
		return 0, fmt.Errorf("%w: key", ErrEncoding)
	}
	if !utf8.Valid(value) {
		return 0, fmt.Errorf("%w: value", ErrEncoding)
	}
	// strconv copies the input into any error it returns, so the unsafe
	// string never escapes.
	v, err := strconv.ParseFloat(bytesToString(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrFormat, value)
	}
	return v, nil
}

// bytesToString returns a string sharing memory with b. The result must not
// outlive b or be retained.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
