package utils

import "testing"

func TestDetermineLocale(t *testing.T) {
	supported := []string{"en", "hi"}
	cases := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{"query wins", "hi", "en-US,en;q=0.9", "hi"},
		{"query region reduced", "hi-IN", "", "hi"},
		{"header base", "", "hi", "hi"},
		{"header region reduced", "", "hi-IN,en;q=0.8", "hi"},
		{"header q ordering", "", "en;q=0.7,hi;q=0.9", "hi"},
		{"zero q skipped", "", "hi;q=0,en;q=0.5", "en"},
		{"unsupported falls back", "fr", "de-DE", "en"},
		{"empty inputs", "", "", "en"},
		{"query case insensitive", "HI", "", "hi"},
	}
	for _, c := range cases {
		if got := DetermineLocale(c.query, c.accept, supported, "en"); got != c.want {
			t.Fatalf("%s: DetermineLocale(%q,%q)=%q, want %q", c.name, c.query, c.accept, got, c.want)
		}
	}
}

func TestDetermineLocaleDefaultOutsideSupported(t *testing.T) {
	if got := DetermineLocale("", "", []string{"en", "hi"}, "fr"); got != "en" {
		t.Fatalf("got %q, want first supported when default is unsupported", got)
	}
	if got := DetermineLocale("", "", nil, ""); got != "en" {
		t.Fatalf("got %q, want en with empty supported set", got)
	}
}
