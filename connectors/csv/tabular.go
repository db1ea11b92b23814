package csv

import "strings"

// Parse splits delimited survey text into rows of fields.
//
// Fields are comma separated and may be double-quoted; inside quotes commas and
// line breaks are literal and "" is an escaped quote. \n, \r and \r\n all end a
// row. A row consisting of a single blank field is dropped so trailing newlines
// do not produce empty rows. Any input is accepted: an unterminated quote
// consumes the rest of the text into one field.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			row = append(row, field.String())
			field.Reset()
			if len(row) > 1 || strings.TrimSpace(row[0]) != "" {
				rows = append(rows, row)
			}
			row = nil
		default:
			field.WriteByte(ch)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}
