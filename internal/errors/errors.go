// Package errors defines the domain error taxonomy shared by the payment
// orchestrators and the HTTP layer. Processor SDK errors are translated into
// these at the gateway boundary and never leak past it.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes understood by the HTTP layer.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateCard      = "DUPLICATE_CARD"
	CodeCardRejected       = "CARD_REJECTED"
	CodeGatewayUnreachable = "GATEWAY_UNREACHABLE"
	CodeGatewayError       = "GATEWAY_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func BadRequest(message string) *DomainError {
	return &DomainError{Code: CodeBadRequest, Message: message}
}

func NotFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func DuplicateCard(message string) *DomainError {
	return &DomainError{Code: CodeDuplicateCard, Message: message}
}

func CardRejected(message string) *DomainError {
	return &DomainError{Code: CodeCardRejected, Message: message}
}

func GatewayUnreachable(message string) *DomainError {
	return &DomainError{Code: CodeGatewayUnreachable, Message: message}
}

func GatewayError(message string) *DomainError {
	return &DomainError{Code: CodeGatewayError, Message: message}
}

// Wrap prefixes a domain error with the failed step ("error attaching card")
// while keeping its code, so the client sees both which step broke and how to
// react. Non-domain errors are wrapped the usual way.
func Wrap(err error, step string) error {
	var derr *DomainError
	if stderrors.As(err, &derr) {
		return &DomainError{Code: derr.Code, Message: step + ": " + derr.Message}
	}
	return fmt.Errorf("%s: %w", step, err)
}

// As extracts a DomainError from an error chain.
func As(err error) (*DomainError, bool) {
	var derr *DomainError
	if stderrors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}
