package sheets

import "strings"

// ParseRows splits CSV text into rows of fields. The first row is the header.
//
// Each physical line is one row: a quoted field cannot span lines. Quotes
// toggle a quoted section in which commas are literal. Fields are trimmed,
// lose one surrounding pair of quotes and have doubled quotes collapsed.
// Blank lines are skipped.
func ParseRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

func splitLine(line string) []string {
	var (
		fields []string
		buf    strings.Builder
		quoted bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			buf.WriteRune(r)
		case r == ',' && !quoted:
			fields = append(fields, cleanField(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	return append(fields, cleanField(buf.String()))
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}
