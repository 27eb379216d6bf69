package auth

import "errors"

// Sentinel errors for authentication. ErrInvalidCredentials deliberately
// covers both unknown usernames and wrong passwords so responses cannot be
// used to probe which accounts exist.
var (
	ErrInvalidCredentials = errors.New("bad username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
