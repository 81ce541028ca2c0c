package jep

// Criteria holds the active filter selection. Empty slices and zero bounds
// mean "no constraint" for their category; a zero Criteria is the identity
// filter. Criteria values are transient, rebuilt on every interaction.
type Criteria struct {
	Statuses []string `json:"statuses,omitempty"`
	Authors  []string `json:"authors,omitempty"`
	Releases []string `json:"releases,omitempty"`
	YearMin  int      `json:"year_min,omitempty"`
	YearMax  int      `json:"year_max,omitempty"`
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool {
	return len(c.Statuses) == 0 &&
		len(c.Authors) == 0 &&
		len(c.Releases) == 0 &&
		c.YearMin == 0 &&
		c.YearMax == 0
}

// Matches reports whether a record satisfies every active constraint.
// Categories combine with AND; within a category membership is an OR.
func (c Criteria) Matches(r *Record) bool {
	return c.matchesStatus(r) &&
		c.matchesAuthor(r) &&
		c.matchesRelease(r) &&
		c.matchesYear(r)
}

func (c Criteria) matchesStatus(r *Record) bool {
	if len(c.Statuses) == 0 {
		return true
	}
	return contains(c.Statuses, r.Status)
}

func (c Criteria) matchesAuthor(r *Record) bool {
	if len(c.Authors) == 0 {
		return true
	}
	for _, owner := range r.Owners {
		if contains(c.Authors, owner) {
			return true
		}
	}
	// Fall back to the raw field for datasets where the owner column was
	// never split (single-author rows with no delimiter).
	return len(r.Owners) == 0 && contains(c.Authors, r.Owner)
}

func (c Criteria) matchesRelease(r *Record) bool {
	if len(c.Releases) == 0 {
		return true
	}
	return contains(c.Releases, r.Release)
}

func (c Criteria) matchesYear(r *Record) bool {
	if c.YearMin == 0 && c.YearMax == 0 {
		return true
	}
	// A record with no usable year cannot satisfy a bounded year filter.
	if !r.HasYear() {
		return false
	}
	if c.YearMin != 0 && r.Year < c.YearMin {
		return false
	}
	if c.YearMax != 0 && r.Year > c.YearMax {
		return false
	}
	return true
}

// Apply returns the ordered subset of records matching the criteria,
// preserving original relative order. It is a pure function: a zero
// Criteria returns a copy containing all records, and applying the same
// criteria twice yields the same result.
func Apply(records []Record, c Criteria) []Record {
	filtered := make([]Record, 0, len(records))
	for i := range records {
		if c.Matches(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
