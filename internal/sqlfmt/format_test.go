package sqlfmt

import "testing"

func TestStatement_TrimsAndAddsSemicolon(t *testing.T) {
	cases := map[string]string{
		"  SELECT 1  ":  "SELECT 1;",
		"SELECT 1;":      "SELECT 1;",
		"SELECT 1;;;":    "SELECT 1;",
		"":                "",
		"   ":             "",
	}
	for in, want := range cases {
		if got := Statement(in); got != want {
			t.Errorf("Statement(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestQuoteIdentifier(t *testing.T) {
	cases := map[string]string{
		"id":       "id",
		"User":     `"User"`,
		"user":     `"user"`,
		"order":    `"order"`,
		"my_col":   "my_col",
		"1col":     `"1col"`,
	}
	for in, want := range cases {
		if got := QuoteIdentifier(in); got != want {
			t.Errorf("QuoteIdentifier(%q) = %q; want %q", in, got, want)
		}
	}
}
