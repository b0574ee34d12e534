package analyzer

import "fmt"

// FailureKind classifies why a request to the analysis service failed.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureHTTP        FailureKind = "http"
	FailureUnreachable FailureKind = "unreachable"
)

// TransportError is the only error shape the gateway produces for a request
// that reached the network layer. The normalizer matches it structurally via
// TransportKind and StatusCode.
type TransportError struct {
	Kind   FailureKind
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case FailureTimeout:
		return "analysis request timed out"
	case FailureHTTP:
		return fmt.Sprintf("analysis service returned status %d", e.Status)
	default:
		return "analysis service is unreachable"
	}
}

// TransportKind returns the failure class as a string.
func (e *TransportError) TransportKind() string { return string(e.Kind) }

// StatusCode returns the HTTP status for FailureHTTP errors, 0 otherwise.
func (e *TransportError) StatusCode() int { return e.Status }
