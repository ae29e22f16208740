package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrUnknownEncoding = errors.New("unknown character encoding")

	ErrFieldCount = errors.New("expected 3 fields")
	ErrEmptyField = errors.New("empty field")
	ErrDateFormat = errors.New("date not in MM/DD/YYYY form")
	ErrAmount     = errors.New("amount is not an integer")
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// LineError describes an input line that was rejected.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type ParseOptions struct {
	// Encoding is the IANA name of the input character set. Empty means
	// UTF-8.
	Encoding string
	// Strict makes the first rejected line fail the parse.
	Strict bool
}

type ParseResult struct {
	Transactions []Transaction
	Rejected     []*LineError
}

// Credits returns the transactions with a non-negative amount, in input
// order.
func (r *ParseResult) Credits() []Transaction {
	var res []Transaction
	for _, tx := range r.Transactions {
		if tx.IsCredit() {
			res = append(res, tx)
		}
	}
	return res
}

// ReadFile parses the transactions in the named file.
func ReadFile(path string, opts ParseOptions) (*ParseResult, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Parse(fd, opts)
}

// Parse reads "customer,MM/DD/YYYY,amount" lines. Lines that do not have
// that shape are recorded in the result's Rejected list and skipped,
// unless opts.Strict is set.
func Parse(r io.Reader, opts ParseOptions) (*ParseResult, error) {
	r, err := decodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	var res ParseResult
	line := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		tx, err := parseLine(sc.Text())
		if err != nil {
			lerr := &LineError{Line: line, Text: sc.Text(), Err: err}
			if opts.Strict {
				return nil, lerr
			}
			res.Rejected = append(res.Rejected, lerr)
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}

	return &res, nil
}

func parseLine(text string) (Transaction, error) {
	words := splitFields(text)
	if len(words) != 3 {
		return Transaction{}, ErrFieldCount
	}
	if words[0] == "" || words[2] == "" {
		return Transaction{}, ErrEmptyField
	}
	if !datePattern.MatchString(words[1]) {
		return Transaction{}, ErrDateFormat
	}
	amount, err := strconv.ParseInt(words[2], 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %q", ErrAmount, words[2])
	}
	return Transaction{
		CustomerID: words[0],
		Date:       words[1],
		Amount:     amount,
	}, nil
}

func decodingReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}
