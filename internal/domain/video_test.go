package domain

import "testing"

func TestParseDurationClass(t *testing.T) {
	cases := map[string]DurationClass{
		"short":  DurationShort,
		"Shorts": DurationShort,
		"LONG":   DurationLong,
		"":       DurationAny,
		"any":    DurationAny,
		"medium": DurationAny,
	}
	for in, want := range cases {
		if got := ParseDurationClass(in); got != want {
			t.Fatalf("ParseDurationClass(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestDurationClassMatches(t *testing.T) {
	if !DurationShort.Matches(60) {
		t.Fatalf("short should accept 60s")
	}
	if DurationShort.Matches(61) {
		t.Fatalf("short should reject 61s")
	}
	if DurationLong.Matches(599) {
		t.Fatalf("long should reject 599s")
	}
	if !DurationLong.Matches(600) {
		t.Fatalf("long should accept 600s")
	}
	if !DurationAny.Matches(0) || !DurationAny.Matches(10000) {
		t.Fatalf("any should accept everything")
	}
}

func TestSearchQueryKeyNormalization(t *testing.T) {
	a := SearchQuery{Topic: "  Café   Racer ", Duration: DurationShort, Channel: "Tech  Channel"}
	b := SearchQuery{Topic: "cafe racer", Duration: DurationShort, Channel: "tech channel"}
	if a.Key() != b.Key() {
		t.Fatalf("keys should match after normalization: %q vs %q", a.Key(), b.Key())
	}

	// Le variety modifier ne change pas la clé.
	c := a
	c.Variety = "latest"
	if c.Key() != a.Key() {
		t.Fatalf("variety must not affect the key: %q vs %q", c.Key(), a.Key())
	}

	// Classe de durée différente => clé différente.
	d := a
	d.Duration = DurationLong
	if d.Key() == a.Key() {
		t.Fatalf("duration class should be part of the key")
	}
}

func TestSearchQueryTermsOrder(t *testing.T) {
	q := SearchQuery{Topic: "lofi beats", Duration: DurationLong, Channel: "ChilledCow", Variety: "latest"}
	want := `lofi beats full video "ChilledCow" channel latest`
	if got := q.Terms(); got != want {
		t.Fatalf("Terms: want %q, got %q", want, got)
	}

	short := SearchQuery{Topic: "cat", Duration: DurationShort}
	if got := short.Terms(); got != "cat shorts" {
		t.Fatalf("Terms(short): want %q, got %q", "cat shorts", got)
	}

	bare := SearchQuery{Topic: "  spaced   out  "}
	if got := bare.Terms(); got != "spaced out" {
		t.Fatalf("Terms should collapse whitespace, got %q", got)
	}
}
