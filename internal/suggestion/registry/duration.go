package registry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration converts a duration label such as "30 MIN" or "1.5 HR".
func ParseDuration(label string) (time.Duration, error) {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(label)))
	if len(fields) != 2 {
		return 0, fmt.Errorf("registry: invalid duration %q", label)
	}

	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("registry: invalid duration %q", label)
	}

	var unit time.Duration
	switch fields[1] {
	case "MIN", "MINS", "MINUTE", "MINUTES":
		unit = time.Minute
	case "HR", "HRS", "HOUR", "HOURS":
		unit = time.Hour
	default:
		return 0, fmt.Errorf("registry: invalid duration unit in %q", label)
	}

	return time.Duration(n * float64(unit)), nil
}
