// Package replay drives the simulation headlessly for demo capture and
// determinism checks: URL-style launch options, fixed-step time advancing,
// YAML input scripts and a scripted auto-pilot.
package replay

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultSeed is used when a supplied seed cannot be parsed.
const DefaultSeed int64 = 20260223

var (
	// ErrInvalidSeed is returned by ParseSeed for non-numeric or non-finite input.
	ErrInvalidSeed = errors.New("replay: invalid seed")
	// ErrEmptyScript is returned when a script has no steps.
	ErrEmptyScript = errors.New("replay: script has no steps")
)

// Options are the launch parameters of a scripted or demo run.
type Options struct {
	Seed      int64
	Autostart bool
	Scripted  bool // implies Autostart; the caller drives time explicitly
	Ticks     int  // headless tick budget, 0 when not given
}

// ParseQuery reads "seed", "autostart", "scripted_demo" and "ticks" from a
// query string such as "seed=7777&autostart=1". A missing seed falls back to the
// UTC date of now as YYYYMMDD; an unparsable one falls back to DefaultSeed.
func ParseQuery(raw string, now time.Time) (Options, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Options{}, fmt.Errorf("replay: parse query: %w", err)
	}

	opts := Options{
		Scripted: values.Get("scripted_demo") == "1",
	}
	opts.Autostart = values.Get("autostart") == "1" || opts.Scripted

	if raw := values.Get("seed"); raw != "" {
		seed, err := ParseSeed(raw)
		if err != nil {
			seed = DefaultSeed
		}
		opts.Seed = seed
	} else {
		opts.Seed = DateSeed(now)
	}

	if raw := values.Get("ticks"); raw != "" {
		ticks, err := strconv.Atoi(raw)
		if err != nil || ticks < 0 {
			return Options{}, fmt.Errorf("replay: invalid ticks %q", raw)
		}
		opts.Ticks = ticks
	}

	return opts, nil
}

// seedModulus is the size of the RNG state space.
const seedModulus = 1 << 32

// ParseSeed accepts any finite number and truncates it toward zero. Values
// beyond the int64 range are reduced modulo 2^32, which keeps the RNG state
// they would have produced.
func ParseSeed(raw string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, raw)
	}
	f = math.Trunc(f)
	if f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), nil
	}
	m := math.Mod(f, seedModulus)
	if m < 0 {
		m += seedModulus
	}
	return int64(m), nil
}

// DateSeed is the UTC calendar date of t written as the number YYYYMMDD.
func DateSeed(t time.Time) int64 {
	t = t.UTC()
	return int64(t.Year()*10000 + int(t.Month())*100 + t.Day())
}
