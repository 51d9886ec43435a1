package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

func parseBoolFn() func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	}
}

func parseStringFn(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		if check != nil {
			if err := check(s); err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

// parseFloatFn accepts TOML floats and integers.
func parseFloatFn(check func(float64) error) func(any) (float64, error) {
	return func(v any) (float64, error) {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case int64:
			f = float64(n)
		default:
			return 0, fmt.Errorf("expected number, got %T", v)
		}

		if check != nil {
			if err := check(f); err != nil {
				return 0, err
			}
		}

		return f, nil
	}
}

func parseUint64Fn() func(any) (uint64, error) {
	return func(v any) (uint64, error) {
		n, ok := v.(int64)
		if !ok {
			return 0, fmt.Errorf("expected integer, got %T", v)
		}

		if n < 0 {
			return 0, fmt.Errorf("out of range[0-%d]", math.MaxInt64)
		}

		return uint64(n), nil
	}
}

// parseCountFn accepts either an integer or a count string such as "10k".
func parseCountFn() func(any) (int, error) {
	return func(v any) (int, error) {
		switch n := v.(type) {
		case int64:
			if err := checkCount(n); err != nil {
				return 0, err
			}
			return int(n), nil
		case string:
			return ParseCount(n)
		default:
			return 0, fmt.Errorf("expected integer or string, got %T", v)
		}
	}
}

// ParseCount parses a positive element count. A "k" or "M" suffix
// multiplies by a thousand or a million, so "1k" is 1000 and "2.5k" is 2500.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"):
		mult = 1_000_000
		s = s[:len(s)-1]
	}

	if mult == 1 {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid count %q", s)
		}
		if err := checkCount(n); err != nil {
			return 0, err
		}
		return int(n), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}

	v := f * mult
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("count %q is not a whole number", s)
	}

	n := int64(v)
	if err := checkCount(n); err != nil {
		return 0, err
	}

	return int(n), nil
}

func ParseCounts(ss []string) ([]int, error) {
	counts := make([]int, 0, len(ss))
	for _, s := range ss {
		n, err := ParseCount(s)
		if err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}

	return counts, nil
}

func MustParseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		panic(err)
	}

	return level
}
