package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Example ids double as CLI arguments and output subdirectory names, so the
// accepted shape is deliberately narrow: lowercase segments separated by
// single hyphens, no leading digit.
var exampleIDPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

func isExampleID(fl validator.FieldLevel) bool {
	return exampleIDPattern.MatchString(fl.Field().String())
}

// IsValidExampleID reports whether id is acceptable as an example identifier.
// Exposed for callers outside struct validation, such as manifest loading.
func IsValidExampleID(id string) error {
	if !exampleIDPattern.MatchString(id) {
		return fmt.Errorf("invalid example id %q: must be lowercase kebab-case", id)
	}
	return nil
}
