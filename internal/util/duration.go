package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses a user supplied duration. Bare integers are
// treated as seconds, anything else goes through time.ParseDuration.
func ParseDuration(input string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(input); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", input)
	}
	return duration, nil
}
