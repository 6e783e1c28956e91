package config

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned when no source supplies a required value.
type ConfigurationError struct {
	Key     string
	Checked []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Checked) == 0 {
		return fmt.Sprintf("missing %s: no configuration sources", e.Key)
	}
	return fmt.Sprintf("missing %s (checked %s)", e.Key, strings.Join(e.Checked, ", "))
}
