package youtube

import "testing"

func TestParseClockDuration(t *testing.T) {
	cases := map[string]int{
		"0:45":    45,
		"3:05":    185,
		"1:02:03": 3723,
		"10:00":   600,
	}
	for in, want := range cases {
		got, ok := parseClockDuration(in)
		if !ok || got != want {
			t.Fatalf("parseClockDuration(%q): want %d, got %d (ok=%v)", in, want, got, ok)
		}
	}

	for _, in := range []string{"", "45", "1:2:3:4", "a:bc", "-1:00"} {
		if _, ok := parseClockDuration(in); ok {
			t.Fatalf("parseClockDuration(%q) should fail", in)
		}
	}
}

func TestParseISODuration(t *testing.T) {
	cases := map[string]int{
		"PT45S":    45,
		"PT3M5S":   185,
		"PT1H2M3S": 3723,
		"PT10M":    600,
		"PT1H":     3600,
	}
	for in, want := range cases {
		got, ok := parseISODuration(in)
		if !ok || got != want {
			t.Fatalf("parseISODuration(%q): want %d, got %d (ok=%v)", in, want, got, ok)
		}
	}

	for _, in := range []string{"", "PT", "P1D", "PT5", "5M"} {
		if _, ok := parseISODuration(in); ok {
			t.Fatalf("parseISODuration(%q) should fail", in)
		}
	}
}
