package importer

import "strings"

// ParseCSV tokenizes raw delimited text into rows of trimmed cells.
//
// Single-pass scan with one quoting flag: a doubled quote inside a quoted
// cell emits one literal quote, a bare quote toggles the flag and is never
// emitted, comma and newline delimit only outside quotes, carriage returns
// are skipped so both line-ending conventions work, and newlines inside
// quotes land in the cell body. Rows whose cells are all empty are dropped.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false

	flushCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	flushRow := func() {
		flushCell()
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inQuotes {
			if ch == '"' && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
				continue
			}
			if ch == '"' {
				inQuotes = false
				continue
			}
			cell.WriteRune(ch)
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			flushCell()
		case '\n':
			flushRow()
		case '\r':
			// ignored
		default:
			cell.WriteRune(ch)
		}
	}
	if cell.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	// blank-line tolerance
	out := rows[:0]
	for _, r := range rows {
		for _, c := range r {
			if c != "" {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
