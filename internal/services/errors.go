package services

import "errors"

// ErrNotConfigured signals that an external provider credential is absent.
// Callers map it to 503 so "not set up" stays distinguishable from "broken".
var ErrNotConfigured = errors.New("external service is not configured")

// ErrCompletionFailed is the single generic failure surfaced for any
// provider-side chat error; the original cause is only logged server-side.
var ErrCompletionFailed = errors.New("chat completion failed")

// ErrBadCapacity signals that the mandatory "Server capacity" override could
// not be interpreted as an integer. This is a user input error, not a server
// fault.
var ErrBadCapacity = errors.New("server capacity must be an integer")
