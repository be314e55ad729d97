package errors

import (
	"errors"
	"fmt"
)

// This package defines the sentinel errors shared by every layer of the client.
// Services return these (or wrap them) so the API layer can map them to HTTP
// status codes with `errors.Is()` without knowing where they came from.

var (
	// ErrNotFound signifies that a requested conversation, message or setting
	// could not be located. Mapped to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that user input was rejected before any state
	// was touched (empty message, unknown provider, missing API key). Mapped to 400.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that the action clashes with the current engine
	// state, e.g. a second send while a response is streaming. Mapped to 409.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the installation is not allowed to perform
	// the action. Mapped to 403.
	ErrPermission = errors.New("permission denied")

	// ErrInternal hides unexpected failures from the client. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)

var (
	// ErrBusy is returned when a send, regenerate or compare is attempted while
	// another generation is in flight.
	ErrBusy = fmt.Errorf("%w: a response is already in progress", ErrConflict)

	// ErrActivationRequired is returned when the trial has run out and the
	// license is not active.
	ErrActivationRequired = fmt.Errorf("%w: license activation required", ErrPermission)

	// ErrNothingToRegenerate is returned when the conversation has no assistant reply yet.
	ErrNothingToRegenerate = fmt.Errorf("%w: nothing to regenerate", ErrValidation)

	// ErrNothingToCompare is returned when the conversation has no user message yet.
	ErrNothingToCompare = fmt.Errorf("%w: nothing to compare", ErrValidation)
)
