// Package upstream tags failures of the completion service and of the model's
// output so the HTTP layer can map them to stable responses.
package upstream

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindAuth
	KindNotFound
	KindRateLimited
	KindConnectivity
	KindAPI
	KindContractViolation
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "AuthFailure"
	case KindNotFound:
		return "NotFound"
	case KindRateLimited:
		return "RateLimited"
	case KindConnectivity:
		return "ConnectivityFailure"
	case KindAPI:
		return "UpstreamAPIError"
	case KindContractViolation:
		return "ContractViolation"
	default:
		return "Unexpected"
	}
}

// Error is a classified upstream failure.
type Error struct {
	Kind Kind
	// StatusCode and RequestID are copied from the provider response when one exists.
	StatusCode int
	RequestID  string
	// Raw holds the model output verbatim for contract violations.
	Raw string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New tags err with kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// ContractViolation reports model output that failed parsing or validation.
func ContractViolation(raw string, err error) *Error {
	return &Error{Kind: KindContractViolation, Raw: raw, Err: err}
}

// From returns the *Error in err's chain, or wraps err as KindUnexpected.
func From(err error) *Error {
	var ue *Error
	if errors.As(err, &ue) {
		return ue
	}
	return New(KindUnexpected, err)
}
