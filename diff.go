package ledger

import (
	"strings"

	diffpatch "github.com/sourcegraph/go-diff-patch"
)

// Diff returns a unified diff from the old content to the rows, labelled
// with path. It returns the empty string when they are equal.
func Diff(path, old string, rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	cur := b.String()
	if normalizeNewlines(old) == cur {
		return ""
	}
	return diffpatch.GeneratePatch(path, normalizeNewlines(old), cur)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
