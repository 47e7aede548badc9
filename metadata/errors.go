package metadata

import "errors"

// Component is the fixed label attached to configuration errors raised by
// this dispatcher.
const Component = "Common Webhook Dispatcher"

// ErrInvalidMetadataType reports a coercion type that is not a recognized
// kind. It marks a broken mapping definition rather than a malformed payload.
var ErrInvalidMetadataType = errors.New("invalid type in metadata")

// ConfigurationError is raised when a field descriptor carries configuration
// that cannot be evaluated. It is distinguishable from data-shape problems,
// which never raise: those degrade to coercion defaults.
type ConfigurationError struct {
	Component string
	Reason    error
}

func (e *ConfigurationError) Error() string {
	return e.Component + ": " + e.Reason.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}
