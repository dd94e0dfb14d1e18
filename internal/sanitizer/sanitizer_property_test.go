package sanitizer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any input string, the sanitized stem contains no path
// separator and sanitizing twice equals sanitizing once.

func TestSanitizePropertyNoSeparators(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("output never contains a path separator", prop.ForAll(
		func(s string) bool {
			out := Sanitize(s)
			return !strings.ContainsAny(out, `/\`)
		},
		gen.AnyString(),
	))

	properties.Property("sanitize is idempotent", prop.ForAll(
		func(s string) bool {
			once := Sanitize(s)
			return Sanitize(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output never ends in a dot or space", prop.ForAll(
		func(s string) bool {
			out := Sanitize(s)
			return out == "" || !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, " ")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
