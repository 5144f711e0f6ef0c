package domain

import "errors"

// Sentinel errors for the gateway's fault taxonomy. Handlers translate
// these into HTTP statuses: which sentinel an error wraps decides whether
// the fault is caller-fixable (4xx), operator-fixable (500), or a
// transient upstream condition (502).
var (
	ErrBlockedPath      = errors.New("blocked path")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrEmptyBody        = errors.New("empty request body")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrMissingSecret    = errors.New("missing required secret")
	ErrUpstream         = errors.New("upstream request failed")
)
