package config

import "fmt"

// ConfigError reports a bad or missing connection parameter. It is fatal at
// startup: the process exits before any network activity.
type ConfigError struct {
	Reason string
}

func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return e.Reason
}
