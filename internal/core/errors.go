package core

import "errors"

// Sentinel errors returned by the services. Handlers translate these to HTTP
// status codes; anything else maps to a generic server failure.
var (
	// ErrInvalidPayload means the request body failed shape validation. It is
	// always raised before any database mutation is attempted.
	ErrInvalidPayload = errors.New("invalid request payload")
	// ErrForbidden means the caller tried to reach another owner's resource.
	ErrForbidden = errors.New("access to this resource is forbidden")
	// ErrNotFound means a direct-by-id lookup hit nothing. List and
	// single-document reads never return it; absence maps to empty/default.
	ErrNotFound = errors.New("resource not found")
)
