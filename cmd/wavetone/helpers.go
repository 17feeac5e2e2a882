package main

import (
	"fmt"
	"strconv"
)

// parseFrequency extracts the target frequency from the positional
// arguments. A missing or non-numeric argument is a usage error.
func parseFrequency(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("frequency argument required")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected arguments after frequency: %v", args[1:])
	}

	frequency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q", args[0])
	}
	return frequency, nil
}
