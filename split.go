package ledger

import (
	"bufio"
	"bytes"
	"strings"
)

// splitFields splits a CSV line on commas. No quoting is recognised and
// trailing empty fields are dropped, so "a,b,," yields two fields.
func splitFields(s string) []string {
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Split(scanFields)
	var res []string
	for sc.Scan() {
		res = append(res, sc.Text())
	}
	for len(res) > 0 && res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	if len(res) == 0 {
		// An empty or all-separator line is a single empty field.
		return []string{""}
	}
	return res
}

func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}

	// If we're at EOF, we have a final, non-terminated field. Return it.
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
