// Post-processing transforms for command sensor output. Each named tag
// maps to a pure string-to-string function; a parse failure means the
// sensor produces no value for the cycle.
package config

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// PostProcess names the transform applied to a command sensor's trimmed
// output. The empty value is a passthrough.
type PostProcess string

const (
	PostTrimWhitespace PostProcess = "trim_whitespace"
	PostParseFloat     PostProcess = "parse_float"
	PostParseInt       PostProcess = "parse_int"
	PostExtractNumber  PostProcess = "extract_number"
	PostToUpperCase    PostProcess = "to_upper_case"
	PostToLowerCase    PostProcess = "to_lower_case"
)

// Valid reports whether the tag names a known transform or is unset.
func (p PostProcess) Valid() bool {
	switch p {
	case "", PostTrimWhitespace, PostParseFloat, PostParseInt,
		PostExtractNumber, PostToUpperCase, PostToLowerCase:
		return true
	}
	return false
}

// Transform returns the function for the tag. Unknown tags fall back to
// passthrough; they are rejected at load time.
func (p PostProcess) Transform() sensor.Transform {
	switch p {
	case PostTrimWhitespace:
		return func(s string) (string, bool) {
			return strings.TrimSpace(s), true
		}
	case PostParseFloat:
		return func(s string) (string, bool) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return "", false
			}
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	case PostParseInt:
		return func(s string) (string, bool) {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return "", false
			}
			return strconv.FormatInt(v, 10), true
		}
	case PostExtractNumber:
		// Keeps digits only ("." is dropped too), then parses as float.
		return func(s string) (string, bool) {
			var digits strings.Builder
			for _, r := range s {
				if unicode.IsDigit(r) {
					digits.WriteRune(r)
				}
			}
			v, err := strconv.ParseFloat(digits.String(), 64)
			if err != nil {
				return "", false
			}
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	case PostToUpperCase:
		return func(s string) (string, bool) {
			return strings.ToUpper(s), true
		}
	case PostToLowerCase:
		return func(s string) (string, bool) {
			return strings.ToLower(s), true
		}
	}
	return func(s string) (string, bool) {
		return s, true
	}
}
