package scene

import (
	"regexp"
	"strconv"
)

// physParamPattern matches "name : value // comment" lines in the
// [physical parameters] section. Values are unsigned decimals with an
// optional fractional part and exponent; the trailing comment is optional.
var physParamPattern = regexp.MustCompile(`^(\w+)\s*:\s*(\d+(?:\.\d*(?:[eE][+-]?\d+)?)?)\s*(?://.*)?$`)

// parsePhysParam parses a physical parameter line. It reports false for
// any line that does not match the grammar.
func parsePhysParam(line string) (string, float64, bool) {
	m := physParamPattern.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return "", 0, false
	}
	return m[1], value, true
}
