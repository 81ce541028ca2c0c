package jep

import (
	"strings"
	"time"
)

// Unknown is the normalized value for missing or placeholder status and
// owner fields. ReleaseTBD is the equivalent for the release column.
const (
	Unknown    = "Unknown"
	ReleaseTBD = "TBD"
)

// Record is one row of a JEP dataset. Typed fields are derived at load time;
// Raw keeps the source row verbatim, in source column order, so that a
// filtered subset can be exported byte-identical to its origin.
type Record struct {
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Release      string    `json:"release"`
	Owner        string    `json:"owner"`
	Owners       []string  `json:"owners,omitempty"`
	Created      time.Time `json:"created,omitzero"`
	Updated      time.Time `json:"updated,omitzero"`
	Year         int       `json:"year,omitempty"`
	DurationDays int       `json:"duration_days"`

	Raw []string `json:"-"`
}

// HasYear reports whether the record carries a usable creation year.
// Records without one are excluded by any bounded year filter.
func (r *Record) HasYear() bool {
	return r.Year != 0
}

// HasDuration reports whether both Created and Updated parsed, giving a
// meaningful development duration.
func (r *Record) HasDuration() bool {
	return r.DurationDays >= 0
}

// SplitOwners parses the delimited author field into individual names.
// The upstream dump separates co-authors with commas, occasionally with
// semicolons or ampersands; the exact delimiter is data-dependent, so all
// three are accepted.
func SplitOwners(owner string) []string {
	if strings.TrimSpace(owner) == "" {
		return nil
	}

	fields := strings.FieldsFunc(owner, func(r rune) bool {
		return r == ',' || r == ';' || r == '&'
	})

	owners := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			owners = append(owners, name)
		}
	}
	return owners
}
