package ledger

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{
			"A1,01/15/2021,100",
			[]string{"A1", "01/15/2021", "100"},
		}, {
			"A1,,100",
			[]string{"A1", "", "100"},
		}, {
			",01/15/2021,100",
			[]string{"", "01/15/2021", "100"},
		}, {
			"A1,01/15/2021,100,",
			[]string{"A1", "01/15/2021", "100"},
		}, {
			"A1,01/15/2021,,,",
			[]string{"A1", "01/15/2021"},
		}, {
			`"A,1",01/15/2021,100`,
			[]string{`"A`, `1"`, "01/15/2021", "100"},
		}, {
			"",
			[]string{""},
		}, {
			"one",
			[]string{"one"},
		},
	}

	for _, tc := range cases {
		res := splitFields(tc.in)
		if !reflect.DeepEqual(res, tc.out) {
			t.Errorf("split(%q) -> %#v, expected %#v", tc.in, res, tc.out)
		}
	}
}
