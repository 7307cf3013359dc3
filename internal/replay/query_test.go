package replay

import (
	"errors"
	"testing"
	"time"
)

func TestParseQuery(t *testing.T) {
	now := time.Date(2026, time.October, 19, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected Options
	}{
		{"empty uses date seed", "", Options{Seed: 20261019}},
		{"explicit seed", "seed=7777", Options{Seed: 7777}},
		{"leading question mark", "?seed=12&autostart=1", Options{Seed: 12, Autostart: true}},
		{"scripted implies autostart", "seed=1&scripted_demo=1", Options{Seed: 1, Autostart: true, Scripted: true}},
		{"invalid seed falls back", "seed=abc", Options{Seed: DefaultSeed}},
		{"fractional seed truncates", "seed=42.9", Options{Seed: 42}},
		{"zero seed kept", "seed=0", Options{Seed: 0}},
		{"autostart needs 1", "seed=5&autostart=true", Options{Seed: 5}},
		{"ticks", "seed=5&ticks=600", Options{Seed: 5, Ticks: 600}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuery(tc.raw, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ParseQuery(%q) = %+v, expected %+v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestParseQueryRejectsBadTicks(t *testing.T) {
	for _, raw := range []string{"ticks=-1", "ticks=many", "seed=%zz"} {
		if _, err := ParseQuery(raw, time.Now()); err == nil {
			t.Errorf("ParseQuery(%q) should fail", raw)
		}
	}
}

func TestParseSeed(t *testing.T) {
	if _, err := ParseSeed("NaN"); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("NaN error = %v, expected ErrInvalidSeed", err)
	}
	if _, err := ParseSeed("Inf"); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("Inf error = %v, expected ErrInvalidSeed", err)
	}
	if got, err := ParseSeed(" -3 "); err != nil || got != -3 {
		t.Errorf("ParseSeed(-3) = %d, %v", got, err)
	}

	tests := []struct {
		raw  string
		want int64
	}{
		{"7777.9", 7777},
		{"1e19", 2313682944},
		{"-1e19", 1981284352},
		{"1e30", 0},
	}
	for _, tc := range tests {
		got, err := ParseSeed(tc.raw)
		if err != nil {
			t.Fatalf("ParseSeed(%s) error = %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("ParseSeed(%s) = %d, expected %d", tc.raw, got, tc.want)
		}
	}
}

func TestDateSeedUsesUTC(t *testing.T) {
	zone := time.FixedZone("east", 10*3600)
	local := time.Date(2026, time.January, 2, 5, 0, 0, 0, zone)
	if got := DateSeed(local); got != 20260101 {
		t.Errorf("DateSeed = %d, expected 20260101", got)
	}
}
