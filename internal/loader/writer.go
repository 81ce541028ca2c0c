package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/natefinch/atomic"

	"github.com/rugi/jeplens/internal/jep"
)

// Marshal serializes records to UTF-8 CSV bytes: header row first, then one
// row per record in the source column order, comma-delimited. An empty
// subset yields a header-only document rather than an error, so an export
// that matches nothing still degrades gracefully.
//
// Re-reading the output with Read and a comma separator yields records equal
// field-for-field to the input.
func Marshal(cols []string, records []jep.Record) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write(cols); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		row := records[i].Raw
		if len(row) != len(cols) {
			// Synthesized records carry no raw row; pad from the header.
			padded := make([]string, len(cols))
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return b.Bytes(), nil
}

// Export marshals the records and writes them to path atomically, so a
// failed write never leaves a truncated export behind.
func Export(path string, cols []string, records []jep.Record) error {
	data, err := Marshal(cols, records)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportFilename suggests a timestamped name for a filtered export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("jeps_filtered_%s.csv", now.Format("20060102_150405"))
}
