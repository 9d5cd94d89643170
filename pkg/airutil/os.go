package airutil

import (
	"fmt"

	"github.com/drone/envsubst"
)

// ExpandEnv substitutes ${VAR} references in s using
// the current environment. Unset variables expand to an
// empty string. A bare $VAR is left as-is.
func ExpandEnv(s string) (string, error) {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", s, err)
	}
	return val, nil
}
