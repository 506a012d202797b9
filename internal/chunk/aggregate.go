package chunk

import (
	"github.com/miku/1brcmmap/internal/measure"
)

// Chunk is the data of a span together with its offset in the file. When
// Data comes from a zero-copy view it is only valid while the view is open.
type Chunk struct {
	Offset int64
	Data   []byte
}

// Aggregate returns a new table holding every record of c.
func Aggregate(c Chunk) (*measure.Table, error) {
	t := measure.NewTable(0)
	if err := AggregateInto(t, c); err != nil {
		return nil, err
	}
	return t, nil
}

// AggregateInto folds every record of c into t, in a single pass over the
// data. The first record that fails to parse aborts the scan with a
// *measure.RecordError; t then holds the records before it.
func AggregateInto(t *measure.Table, c Chunk) error {
	var (
		data  = c.Data
		start = 0  // record start
		sep   = -1 // separator position, -1 until seen
	)
	for i, b := range data {
		switch b {
		case measure.Sep:
			if sep == -1 {
				sep = i
			}
		case measure.EOL:
			if err := fold(t, c, start, sep, i); err != nil {
				return err
			}
			start, sep = i+1, -1
		}
	}
	// trailing record without a terminator
	if start < len(data) {
		return fold(t, c, start, sep, len(data))
	}
	return nil
}

// fold parses the record data[start:end] with its separator at sep (value
// starts at sep+1) and adds it to t.
func fold(t *measure.Table, c Chunk, start, sep, end int) error {
	rec := c.Data[start:end]
	if sep == -1 {
		return measure.NewRecordError(c.Offset+int64(start), rec, measure.ErrMalformedRecord)
	}
	key := c.Data[start:sep]
	v, err := measure.ParseFields(key, c.Data[sep+1:end])
	if err != nil {
		return measure.NewRecordError(c.Offset+int64(start), rec, err)
	}
	t.Add(key, v)
	return nil
}
