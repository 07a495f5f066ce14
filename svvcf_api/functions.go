package svvcf_api

import (
	"strconv"
	"strings"
)

func floatToString(input float64) string {
	return strconv.FormatFloat(input, 'f', -1, 64)
}

// Join integer values with commas, as used by multi-value INFO and FORMAT fields
func joinInts(values ...int) string {
	converted := make([]string, len(values))
	for i, value := range values {
		converted[i] = strconv.Itoa(value)
	}
	return strings.Join(converted, ",")
}

func absInt64(input int64) int64 {
	if input < 0 {
		return -input
	}
	return input
}
