package jep

import (
	"regexp"
	"sort"
)

// numericRelease matches release values that name an actual Java release.
// Placeholder values like "TBD" never count toward release aggregates.
var numericRelease = regexp.MustCompile(`^\d+$`)

// Count pairs a grouping key with the number of records in the group.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summary holds the aggregates derived from a record subset. All counts are
// exact and computed in a single pass; Total always equals the length of the
// summarized subset and the per-status counts sum to Total.
type Summary struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	ByYear          map[int]int    `json:"by_year"`
	ByRelease       map[string]int `json:"by_release"`
	UniqueAuthors   int            `json:"unique_authors"`
	UniqueReleases  int            `json:"unique_releases"`
	TopStatuses     []Count        `json:"top_statuses"`
	TopAuthors      []Count        `json:"top_authors"`
	AvgDurationDays float64        `json:"avg_duration_days"`
	YearMin         int            `json:"year_min,omitempty"`
	YearMax         int            `json:"year_max,omitempty"`
}

// Summarize computes aggregates for a record subset. It is a pure function
// of its input and never fails; an empty subset produces a zero summary with
// initialized maps.
func Summarize(records []Record) *Summary {
	s := &Summary{
		Total:           len(records),
		ByStatus:        make(map[string]int),
		ByYear:          make(map[int]int),
		ByRelease:       make(map[string]int),
		AvgDurationDays: -1,
	}

	byAuthor := make(map[string]int)
	durationSum := 0
	durationCount := 0

	for i := range records {
		r := &records[i]

		s.ByStatus[r.Status]++

		if r.HasYear() {
			s.ByYear[r.Year]++
			if s.YearMin == 0 || r.Year < s.YearMin {
				s.YearMin = r.Year
			}
			if r.Year > s.YearMax {
				s.YearMax = r.Year
			}
		}

		if numericRelease.MatchString(r.Release) {
			s.ByRelease[r.Release]++
		}

		for _, owner := range r.Owners {
			byAuthor[owner]++
		}

		if r.HasDuration() {
			durationSum += r.DurationDays
			durationCount++
		}
	}

	s.UniqueAuthors = len(byAuthor)
	s.UniqueReleases = len(s.ByRelease)
	s.TopStatuses = rankCounts(s.ByStatus)
	s.TopAuthors = rankCounts(byAuthor)

	if durationCount > 0 {
		s.AvgDurationDays = float64(durationSum) / float64(durationCount)
	}

	return s
}

// TopN returns the first n entries of a ranked count list.
func TopN(counts []Count, n int) []Count {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// rankCounts flattens a count map into a list sorted by descending count,
// ties broken by key for deterministic output.
func rankCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for key, n := range m {
		counts = append(counts, Count{Key: key, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}
