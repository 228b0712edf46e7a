package util

import "testing"

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "plain", input: "101", want: 101, wantOK: true},
		{name: "leading space", input: "  42", want: 42, wantOK: true},
		{name: "trailing text", input: "12abc", want: 12, wantOK: true},
		{name: "negative", input: "-3", want: -3, wantOK: true},
		{name: "letters first", input: "abc", wantOK: false},
		{name: "ticket code", input: "T9", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "header", input: "Ticket #", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLeadingInt(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
