package session

import "errors"

// ErrNoSession signals an operation that requires an active session was called
// while logged out. Callers gate those operations behind authenticated views,
// so hitting this is a programming error, not a condition to recover from.
var ErrNoSession = errors.New("no active session")
