// Package debug provides env-gated tracing for the codec. The conversion
// and encoding paths log skipped values and classification decisions, and
// the parser logs errors as it raises them, when the corresponding
// TOMLREC_DEBUG_* variable is set.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Encode  bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("TOMLREC_DEBUG_CONVERT")
	d.Encode = boolEnv("TOMLREC_DEBUG_ENCODE")
	d.Parse = boolEnv("TOMLREC_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
