package utils

import (
	"strconv"
	"strings"
)

// FormatTemperature renders a reading for reports, e.g. 8.5 -> "8.5 °C",
// -18 -> "-18 °C". At most one decimal is kept.
func FormatTemperature(value float64, unit string) string {
	if unit == "" {
		unit = "°C"
	}
	s := strconv.FormatFloat(value, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		s = "0"
	}
	return s + " " + unit
}

// FormatLimit renders an optional CCP limit, "–" when unset.
func FormatLimit(limit *float64, unit string) string {
	if limit == nil {
		return "–"
	}
	return FormatTemperature(*limit, unit)
}
