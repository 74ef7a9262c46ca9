package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt parses an integer cell. Spreadsheets often store integers as
// floats ("12.0") and group thousands with spaces; both are accepted.
func ParseInt(s string) (int64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "").Replace(strings.TrimSpace(s))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int64(f), nil
}

// ParseID parses a positive identifier.
func ParseID(s string) (int64, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", strings.TrimSpace(s))
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", strings.TrimSpace(s))
	}
	return n, nil
}

// ParseIDList parses a comma-separated list of ids. Empty items are ignored
// and duplicates are dropped; order is preserved.
func ParseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	seen := make(map[int64]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := ParseID(p)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
