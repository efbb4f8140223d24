package table

import "strings"

// BreakToken is the in-cell marker for a soft line break. Table cells occupy
// a single document line, so typed line breaks are stored as this token and
// restored when the cell is shown in an editor widget.
const BreakToken = "<br>"

// EncodeCellText converts display text to its stored single-line form.
// Backslashes and literal occurrences of the break token are escaped first,
// so user content can never collide with the token and always round-trips.
func EncodeCellText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, BreakToken, `\`+BreakToken)
	s = strings.ReplaceAll(s, "\n", BreakToken)
	return s
}

// DecodeCellText reverses EncodeCellText, restoring line breaks and escaped
// literals.
func DecodeCellText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && strings.HasPrefix(s[i+1:], `\`):
			b.WriteByte('\\')
			i += 2
		case s[i] == '\\' && strings.HasPrefix(s[i+1:], BreakToken):
			b.WriteString(BreakToken)
			i += 1 + len(BreakToken)
		case strings.HasPrefix(s[i:], BreakToken):
			b.WriteByte('\n')
			i += len(BreakToken)
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
