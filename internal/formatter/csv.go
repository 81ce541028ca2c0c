package formatter

import (
	"github.com/rugi/jeplens/internal/loader"
)

// csvFormatter serializes the filtered records themselves, in the source
// column order, so the output round-trips through the loader. This is the
// formatter behind `jeplens export` and the `-o csv` flag.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	return loader.Marshal(report.Columns, report.Records)
}
