package service

import "errors"

// ErrInvalidCredentials covers both unknown email and wrong password; the
// caller must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrValidation marks input problems detected past request binding,
// e.g. a reference id that is not a valid ObjectID.
var ErrValidation = errors.New("validation failed")
