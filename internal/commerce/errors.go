package commerce

import "fmt"

// ErrorKind classifies why a backend call failed.
type ErrorKind int

const (
	ConfigError ErrorKind = iota
	TransportError
	BackendStatusError
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "config"
	case TransportError:
		return "transport"
	case BackendStatusError:
		return "backend_status"
	case ParseError:
		return "parse"
	default:
		return "unknown"
	}
}

// CallError is returned by every failed backend call.
// StatusCode is only set for BackendStatusError.
type CallError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("API call error: %v", e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func newCallError(kind ErrorKind, err error) *CallError {
	return &CallError{Kind: kind, Err: err}
}
