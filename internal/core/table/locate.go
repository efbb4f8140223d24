package table

import "strings"

// Span is a snapshot of a table's extent inside a specific version of a
// document: inclusive line indices plus the raw text of those lines joined
// by newline. A span is invalidated by any document change and must be
// re-derived before being trusted again.
type Span struct {
	StartLine int
	EndLine   int
	Text      string
}

// FindTableAt locates the contiguous table around lineIndex in docText.
// The boundary test is pipe presence per line, not column-count matching, so
// a row that is temporarily malformed mid-edit does not lose the span.
// Returns false when the anchor line contains no pipe; that is a normal
// negative result, not an error.
func FindTableAt(docText string, lineIndex int) (Span, bool) {
	lines := splitLines(docText)
	if lineIndex < 0 || lineIndex >= len(lines) {
		return Span{}, false
	}
	if !hasPipe(lines[lineIndex]) {
		return Span{}, false
	}

	start := lineIndex
	for start > 0 && hasPipe(lines[start-1]) {
		start--
	}
	end := lineIndex
	for end < len(lines)-1 && hasPipe(lines[end+1]) {
		end++
	}

	return Span{
		StartLine: start,
		EndLine:   end,
		Text:      strings.Join(lines[start:end+1], "\n"),
	}, true
}

// FindAll enumerates every table span in the document, top to bottom.
// A span counts as a table only if it decodes to a non-empty grid.
func FindAll(docText string) []Span {
	lines := splitLines(docText)
	var spans []Span
	for i := 0; i < len(lines); {
		span, ok := FindTableAt(docText, i)
		if !ok {
			i++
			continue
		}
		if !Decode(span.Text).IsEmpty() {
			spans = append(spans, span)
		}
		i = span.EndLine + 1
	}
	return spans
}

func hasPipe(line string) bool {
	return strings.Contains(strings.TrimSpace(line), "|")
}
