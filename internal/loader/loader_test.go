package loader

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/rugi/jeplens/internal/jep"
)

const sampleDump = `JEP;Title;Status;Release;Owner;Created;Updated
401;Value Classes;Draft;TBD;Dan Smith;2021/03/10 09:00;2021/03/20 09:00
395;Records;Final;16;Gavin Bierman, Brian Goetz;2019/11/01 08:30;2021/03/16 12:00
411;Deprecate the Security Manager;REVISAR;REVISAR;REVISAR;2021/04/01 00:00;not-a-date
`

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), DefaultOptions())
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Read() error = %v, want ErrEmptyInput", err)
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no id column", "Title;Status;Owner"},
		{"no title column", "JEP;Status;Owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.header+"\n"), DefaultOptions())
			if !errors.Is(err, ErrMissingColumn) {
				t.Errorf("Read() error = %v, want ErrMissingColumn", err)
			}
		})
	}
}

func TestReadRecords(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleDump), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(ds.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(ds.Records))
	}

	wantColumns := []string{"JEP", "Title", "Status", "Release", "Owner", "Created", "Updated"}
	if diff := cmp.Diff(wantColumns, ds.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}

	first := ds.Records[0]
	if first.Number != "401" || first.Title != "Value Classes" || first.Status != "Draft" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Year != 2021 {
		t.Errorf("Year = %d, want 2021 derived from Created", first.Year)
	}
	if first.DurationDays != 10 {
		t.Errorf("DurationDays = %d, want 10", first.DurationDays)
	}

	second := ds.Records[1]
	wantOwners := []string{"Gavin Bierman", "Brian Goetz"}
	if diff := cmp.Diff(wantOwners, second.Owners); diff != "" {
		t.Errorf("Owners mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNormalizesPlaceholders(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleDump), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	r := ds.Records[2]
	if r.Status != jep.Unknown {
		t.Errorf("Status = %q, want %q", r.Status, jep.Unknown)
	}
	if r.Owner != jep.Unknown {
		t.Errorf("Owner = %q, want %q", r.Owner, jep.Unknown)
	}
	if r.Release != jep.ReleaseTBD {
		t.Errorf("Release = %q, want %q", r.Release, jep.ReleaseTBD)
	}

	// The raw row keeps the placeholder untouched for round-trip export.
	if r.Raw[2] != "REVISAR" {
		t.Errorf("Raw status = %q, want the source placeholder", r.Raw[2])
	}

	// An unparseable date leaves the duration unknown rather than failing.
	if r.HasDuration() {
		t.Errorf("DurationDays = %d, want unknown", r.DurationDays)
	}
	if r.Year != 2021 {
		t.Errorf("Year = %d, want 2021", r.Year)
	}
}

func TestReadColumnOrderIndependence(t *testing.T) {
	reordered := "Owner;Status;Title;JEP\nAlice;Final;Sealed Classes;409\n"

	ds, err := Read(strings.NewReader(reordered), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	r := ds.Records[0]
	if r.Number != "409" || r.Title != "Sealed Classes" || r.Status != "Final" || r.Owner != "Alice" {
		t.Errorf("column mapping followed position instead of name: %+v", r)
	}
}

func TestReadColumnAliases(t *testing.T) {
	input := "id;name;author;fix_release;Created Date\n100;Some JEP;Bob;21;2022/01/15\n"

	ds, err := Read(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	r := ds.Records[0]
	if r.Number != "100" || r.Title != "Some JEP" || r.Owner != "Bob" || r.Release != "21" {
		t.Errorf("alias resolution failed: %+v", r)
	}
	if r.Year != 2022 {
		t.Errorf("Year = %d, want 2022", r.Year)
	}
}

func TestReadYearColumnWins(t *testing.T) {
	input := "JEP;Title;Year;Created\n1;Some JEP;2019;2021/06/01\n"

	ds, err := Read(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := ds.Records[0].Year; got != 2019 {
		t.Errorf("Year = %d, want explicit column value 2019", got)
	}
}

func TestReadRaggedRows(t *testing.T) {
	input := "JEP;Title;Status;Owner\n1;Short Row\n"

	ds, err := Read(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	r := ds.Records[0]
	if len(r.Raw) != 4 {
		t.Fatalf("Raw has %d fields, want padded to 4", len(r.Raw))
	}
	if r.Status != jep.Unknown || r.Owner != jep.Unknown {
		t.Errorf("missing fields not defaulted: status=%q owner=%q", r.Status, r.Owner)
	}
}

func TestReadCustomSeparator(t *testing.T) {
	input := "JEP,Title,Status\n1,Comma Separated,Final\n"

	ds, err := Read(strings.NewReader(input), Options{Separator: ','})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ds.Records[0].Status != "Final" {
		t.Errorf("Status = %q, want Final", ds.Records[0].Status)
	}
}

func TestReadCustomDateFormat(t *testing.T) {
	input := "JEP;Title;Created\n1;Custom Dates;15.01.2022\n"

	opts := Options{DateFormats: []string{"02.01.2006"}}
	ds, err := Read(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC)
	if !ds.Records[0].Created.Equal(want) {
		t.Errorf("Created = %v, want %v", ds.Records[0].Created, want)
	}
}

func TestDatasetStatuses(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleDump), DefaultOptions())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	statuses := ds.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3", len(statuses))
	}
	for _, count := range statuses {
		if count.Count != 1 {
			t.Errorf("status %q count = %d, want 1", count.Key, count.Count)
		}
	}
}
