package jep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		{Number: "1", Title: "Sealed Classes", Status: "Final", Release: "17", Owner: "Alice", Owners: []string{"Alice"}, Year: 2020},
		{Number: "2", Title: "Pattern Matching", Status: "Draft", Release: "TBD", Owner: "Bob, Carol", Owners: []string{"Bob", "Carol"}, Year: 2021},
		{Number: "3", Title: "Virtual Threads", Status: "Final", Release: "21", Owner: "Alice", Owners: []string{"Alice"}, Year: 2021},
		{Number: "4", Title: "Value Objects", Status: "Withdrawn", Release: "TBD", Owner: "Dave", Owners: []string{"Dave"}},
	}
}

func recordNumbers(records []Record) []string {
	numbers := make([]string, 0, len(records))
	for i := range records {
		numbers = append(numbers, records[i].Number)
	}
	return numbers
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "zero criteria is identity",
			criteria: Criteria{},
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "single status",
			criteria: Criteria{Statuses: []string{"Final"}},
			want:     []string{"1", "3"},
		},
		{
			name:     "multiple statuses combine with OR",
			criteria: Criteria{Statuses: []string{"Draft", "Withdrawn"}},
			want:     []string{"2", "4"},
		},
		{
			name:     "status and year combine with AND",
			criteria: Criteria{Statuses: []string{"Final"}, YearMin: 2021},
			want:     []string{"3"},
		},
		{
			name:     "author matches first owner",
			criteria: Criteria{Authors: []string{"Bob"}},
			want:     []string{"2"},
		},
		{
			name:     "author matches any co-owner",
			criteria: Criteria{Authors: []string{"Carol"}},
			want:     []string{"2"},
		},
		{
			name:     "release",
			criteria: Criteria{Releases: []string{"17"}},
			want:     []string{"1"},
		},
		{
			name:     "year range",
			criteria: Criteria{YearMin: 2020, YearMax: 2020},
			want:     []string{"1"},
		},
		{
			name:     "bounded year filter excludes unknown year",
			criteria: Criteria{YearMax: 2025},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "inverted year range matches nothing",
			criteria: Criteria{YearMin: 2022, YearMax: 2020},
			want:     []string{},
		},
		{
			name:     "unmatched status matches nothing",
			criteria: Criteria{Statuses: []string{"Rejected"}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recordNumbers(Apply(sampleRecords(), tt.criteria))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := Criteria{Statuses: []string{"Final"}, YearMin: 2020}

	once := Apply(sampleRecords(), criteria)
	twice := Apply(once, criteria)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Apply() changed the result (-once +twice):\n%s", diff)
	}
}

func TestApplyNarrowingNeverGrowsResult(t *testing.T) {
	records := sampleRecords()

	broad := Apply(records, Criteria{Statuses: []string{"Final"}})
	narrow := Apply(records, Criteria{Statuses: []string{"Final"}, YearMin: 2021})
	narrower := Apply(records, Criteria{Statuses: []string{"Final"}, YearMin: 2021, Authors: []string{"Alice"}})

	if len(narrow) > len(broad) || len(narrower) > len(narrow) {
		t.Errorf("adding constraints grew the result: %d -> %d -> %d",
			len(broad), len(narrow), len(narrower))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()

	filtered := Apply(records, Criteria{Statuses: []string{"Final"}})
	if len(filtered) == 0 {
		t.Fatal("expected at least one match")
	}
	filtered[0].Title = "mutated"

	if diff := cmp.Diff(sampleRecords(), records); diff != "" {
		t.Errorf("input records changed (-want +got):\n%s", diff)
	}
}

func TestMatchesAuthorFallsBackToRawOwner(t *testing.T) {
	// A record whose owner column was never split still matches by its
	// raw owner field.
	r := Record{Number: "5", Status: "Draft", Owner: "Erin"}
	c := Criteria{Authors: []string{"Erin"}}

	if !c.Matches(&r) {
		t.Error("expected raw owner fallback to match")
	}
}

func TestCriteriaIsZero(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty", Criteria{}, true},
		{"status set", Criteria{Statuses: []string{"Final"}}, false},
		{"author set", Criteria{Authors: []string{"Alice"}}, false},
		{"release set", Criteria{Releases: []string{"17"}}, false},
		{"year min set", Criteria{YearMin: 2020}, false},
		{"year max set", Criteria{YearMax: 2021}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitOwners(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  []string
	}{
		{"single", "Alice", []string{"Alice"}},
		{"comma", "Alice, Bob", []string{"Alice", "Bob"}},
		{"semicolon", "Alice; Bob", []string{"Alice", "Bob"}},
		{"ampersand", "Alice & Bob", []string{"Alice", "Bob"}},
		{"mixed delimiters", "Alice, Bob & Carol", []string{"Alice", "Bob", "Carol"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"trailing delimiter", "Alice,", []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitOwners(tt.owner)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitOwners(%q) mismatch (-want +got):\n%s", tt.owner, diff)
			}
		})
	}
}
