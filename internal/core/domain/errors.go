package domain

import (
	"errors"
	"fmt"
)

var ErrEmailTaken = errors.New("email is already taken")
var ErrUsernameTaken = errors.New("username is already taken")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// ConstraintViolation is returned by stores when a uniqueness constraint
// rejects a write. Field names the offending column ("email" or "username")
// so callers never have to inspect engine-specific error codes.
type ConstraintViolation struct {
	Field string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s is already taken", e.Field)
}
