package pipeline

import "testing"

func TestRenderTicketRange(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "contiguous", ids: []string{"1001", "1002", "1003"}, want: "1001..03"},
		{name: "single", ids: []string{"5"}, want: "5"},
		{name: "unsorted single digits", ids: []string{"3", "1", "2"}, want: "1..3"},
		{name: "gap", ids: []string{"7", "9"}, want: "7,..."},
		{name: "non numeric", ids: []string{"A1", "A2"}, want: "A1,..."},
		{name: "numeric sort not lexical", ids: []string{"10", "9", "11"}, want: "9..11"},
		{name: "carry across digits", ids: []string{"99", "100"}, want: "99..100"},
		{name: "shared prefix", ids: []string{"1001", "1002", "1003", "1004", "1005", "1006", "1007"}, want: "1001..07"},
		{name: "duplicate ids", ids: []string{"5", "5"}, want: "5,..."},
		{name: "mixed keeps first raw id", ids: []string{"102", "101", "T9"}, want: "102,..."},
		{name: "single non numeric", ids: []string{"T9"}, want: "T9"},
		{name: "empty", ids: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderTicketRange(tc.ids); got != tc.want {
				t.Fatalf("RenderTicketRange(%q)=%q want %q", tc.ids, got, tc.want)
			}
		})
	}
}
