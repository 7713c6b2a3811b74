package models

import "errors"

// ErrUnauthenticated indicates no caller identity was available for the operation.
var ErrUnauthenticated = errors.New("no authenticated identity")

// ErrForbidden indicates the caller's role does not allow the operation.
var ErrForbidden = errors.New("access denied")

// ErrInvalidInput indicates the request payload was malformed or incomplete.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound indicates the referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken indicates the requested email is already assigned to another user.
var ErrEmailTaken = errors.New("email already in use")
