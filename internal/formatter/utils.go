package formatter

import (
	"fmt"
	"sort"
	"strconv"
)

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// formatDuration renders an average duration in days, N/A when no record in
// the subset carried a usable duration.
func formatDuration(days float64) string {
	if days < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f days", days)
}

// formatYearRange renders an inclusive year range with open bounds.
func formatYearRange(yearMin, yearMax int) string {
	switch {
	case yearMin != 0 && yearMax != 0:
		return fmt.Sprintf("%d-%d", yearMin, yearMax)
	case yearMin != 0:
		return fmt.Sprintf("from %d", yearMin)
	default:
		return fmt.Sprintf("until %d", yearMax)
	}
}

// sortedReleases returns release keys in numeric order. Keys are validated
// numeric before they reach a release aggregate.
func sortedReleases(byRelease map[string]int) []string {
	releases := make([]string, 0, len(byRelease))
	for release := range byRelease {
		releases = append(releases, release)
	}
	sort.Slice(releases, func(i, j int) bool {
		a, _ := strconv.Atoi(releases[i])
		b, _ := strconv.Atoi(releases[j])
		return a < b
	})
	return releases
}
