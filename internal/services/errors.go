package services

import "errors"

// Failure kinds surfaced to the HTTP layer. Wrap with fmt.Errorf("%w: ...")
// and classify with errors.Is.
var (
	// ErrInvalidInput: a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAssetUnavailable: the document or a page image could not be reached.
	ErrAssetUnavailable = errors.New("asset unavailable")
	// ErrModelInvocation: the generative model call itself failed.
	ErrModelInvocation = errors.New("model invocation failed")
)
