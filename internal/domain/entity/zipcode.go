package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ZipcodeMin is the exclusive lower bound of a valid zipcode.
	ZipcodeMin = 1_000_000
	// ZipcodeMax is the exclusive upper bound of a valid zipcode.
	ZipcodeMax = 99_999_999
)

// Zipcode is a Brazilian postal code (CEP) stored as an 8-digit bounded integer.
type Zipcode int

// ParseZipcode accepts "01001000", "01001-000" or "1001000" and validates the range.
func ParseZipcode(raw string) (Zipcode, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if digits == "" {
		return 0, fmt.Errorf("zipcode is empty")
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("zipcode %q is not numeric", raw)
	}

	zipcode := Zipcode(n)
	if !zipcode.IsValid() {
		return 0, fmt.Errorf("zipcode %q is out of range", raw)
	}

	return zipcode, nil
}

// IsValid reports whether z lies strictly between ZipcodeMin and ZipcodeMax.
func (z Zipcode) IsValid() bool {
	return z > ZipcodeMin && z < ZipcodeMax
}

// String returns the zipcode zero-padded to 8 digits, the form providers expect.
func (z Zipcode) String() string {
	return fmt.Sprintf("%08d", int(z))
}
