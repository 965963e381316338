package config

import "fmt"

// MissingKeyError reports a required configuration key that is absent
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config error: missing required key '%s'", e.Key)
}

// InvalidValueError reports a configuration value outside its allowed range
type InvalidValueError struct {
	Key     string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("config error: '%s' %s", e.Key, e.Message)
}
