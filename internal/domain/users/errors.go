package users

import "errors"

// Sentinel errors for user operations. Callers classify repository and
// service failures with errors.Is instead of matching message strings.
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)
