package config

import (
	"fmt"
	"math"
	"slices"
)

// maxCount keeps a degenerate tree's insertion cost bounded.
const maxCount = 100_000_000

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, v) {
		return fmt.Errorf("invalid log level %q, expected one of %v", v, availableLogLevels)
	}

	return nil
}

func checkCount(n int64) error {
	if n <= 0 || n > maxCount {
		return fmt.Errorf("out of range[1-%d]", maxCount)
	}

	return nil
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("must be a finite number")
	}

	return nil
}

func checkNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}

	return nil
}

func checkSizes(ss []string) error {
	_, err := ParseCounts(ss)
	return err
}

func checkRange(min, max float64) error {
	if min >= max {
		return fmt.Errorf("min(%g) must be less than max(%g)", min, max)
	}

	return nil
}
