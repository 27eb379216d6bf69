// Package strutil provides small string conversion helpers for handler code.
package strutil

import "strconv"

// ConvertToInt parses s as a base-10 integer. Unparsable input converts to 0,
// leaving range checks to query validation.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToBool parses s as a boolean, accepting the forms of strconv.ParseBool.
// Unparsable input converts to false.
func ConvertToBool(s string) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return value
}
