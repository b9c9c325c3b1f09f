// Package sheet converts exported spreadsheet text into participant
// records and fetches published CSV feeds.
package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/section308/heartboard/pkg/types"
)

// DefaultLabel annotates imported rows that carry no label of their own.
const DefaultLabel = "Guest Participant"

// timestampLayouts are tried in order when parsing a timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// ParseRoster converts raw CSV text into a list of lit, imported
// participant records. The first row is the header; the name column is
// located by trying "name" exactly, then a header containing
// "studentname", then one containing "claimedby". Returns
// types.ErrNoNameColumn when no header qualifies and types.ErrNoRows
// when there is no data under the header. Pure function: now supplies
// the fallback timestamp.
func ParseRoster(text string, now time.Time) ([]types.Participant, error) {
	rows := splitRows(text)
	if len(rows) < 2 {
		return nil, types.ErrNoRows
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = normalizeHeader(h)
	}

	nameIdx := findHeader(headers, func(h string) bool { return h == "name" })
	if nameIdx < 0 {
		nameIdx = findHeader(headers, func(h string) bool { return strings.Contains(h, "studentname") })
	}
	if nameIdx < 0 {
		nameIdx = findHeader(headers, func(h string) bool { return strings.Contains(h, "claimedby") })
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("headers %v: %w", headers, types.ErrNoNameColumn)
	}

	idIdx := findHeader(headers, func(h string) bool { return h == "id" || h == "userid" })
	labelIdx := findHeader(headers, func(h string) bool {
		return strings.Contains(h, "label") || strings.Contains(h, "week")
	})
	tsIdx := findHeader(headers, func(h string) bool {
		return strings.Contains(h, "time") || strings.Contains(h, "date")
	})

	var out []types.Participant
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= nameIdx {
			continue
		}
		name := row[nameIdx]
		if utf8.RuneCountInString(name) <= 1 {
			// Single characters are junk cells, not names.
			continue
		}

		id := fmt.Sprintf("import-%d", i)
		if idIdx >= 0 && idIdx < len(row) && row[idIdx] != "" {
			id = row[idIdx]
		}

		label := DefaultLabel
		if labelIdx >= 0 && labelIdx < len(row) && row[labelIdx] != "" {
			label = row[labelIdx]
			if _, err := strconv.ParseFloat(label, 64); err == nil {
				label = "Week " + label
			}
		}

		ts := now.UnixMilli()
		if tsIdx >= 0 && tsIdx < len(row) && row[tsIdx] != "" {
			if parsed, ok := parseTimestamp(row[tsIdx]); ok {
				ts = parsed
			}
		}

		out = append(out, types.Participant{
			ID:        id,
			Name:      name,
			Origin:    types.OriginImported,
			Timestamp: ts,
			Label:     label,
			Lit:       true, // imported rows always represent claimed slots
		})
	}
	return out, nil
}

// normalizeHeader lowers a header and strips everything outside a-z.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(h) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// findHeader returns the index of the first header satisfying match,
// or -1.
func findHeader(headers []string, match func(string) bool) int {
	for i, h := range headers {
		if match(h) {
			return i
		}
	}
	return -1
}

// parseTimestamp attempts the known sheet date layouts and returns the
// value as a millisecond epoch.
func parseTimestamp(s string) (int64, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
