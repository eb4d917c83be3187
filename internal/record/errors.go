package record

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were blank at submit time.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// requireFields returns a ValidationError naming every blank entry, in the order given.
func requireFields(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
