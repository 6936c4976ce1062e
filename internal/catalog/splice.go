package catalog

import "strings"

// Splice replaces the span between the start heading and the next
// structural heading of a destination document with content, leaving
// everything outside the span untouched. The content is expected to begin
// with the start heading itself (Render output does). When either marker
// is missing the document is returned unchanged with found=false; the
// caller decides how to report that.
func Splice(doc, start, end, content string) (updated string, found bool) {
	i := strings.Index(doc, start)
	if i < 0 {
		return doc, false
	}
	j := strings.Index(doc[i:], "\n"+end)
	if j < 0 {
		return doc, false
	}
	return doc[:i] + strings.TrimSpace(content) + "\n" + doc[i+j:], true
}
