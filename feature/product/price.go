package product

import "strconv"

// priceValue parses the form price, tolerating an absent or malformed value.
// The price is descriptive metadata here; the upload does not depend on it.
func priceValue(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
