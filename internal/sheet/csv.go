package sheet

import "strings"

// splitRows tokenizes raw delimited text into rows of trimmed fields.
//
// Double-quote enclosed fields may contain commas and line breaks;
// an embedded quote is escaped by doubling. Any of \n, \r, \r\n ends a
// row. Rows whose fields are all empty are dropped.
//
// The standard encoding/csv reader is not used here: exported sheet
// text arrives with bare-\r terminators and padded cells, and the
// importer contract requires per-field trimming and tolerance for
// quotes opening mid-field.
func splitRows(text string) [][]string {
	var rows [][]string
	var row []string
	var val strings.Builder
	inQuotes := false

	pushField := func() {
		row = append(row, strings.TrimSpace(val.String()))
		val.Reset()
	}
	pushRow := func() {
		pushField()
		for _, f := range row {
			if f != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(runes) && runes[i+1] == '"':
				val.WriteRune('"')
				i++
			case c == '"':
				inQuotes = false
			default:
				val.WriteRune(c)
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			pushField()
		case '\n', '\r':
			pushRow()
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		default:
			val.WriteRune(c)
		}
	}
	if val.Len() > 0 || len(row) > 0 {
		pushRow()
	}
	return rows
}
