package apperr

import "errors"

// Invalid is returned when input breaks a validation rule. The wrapped
// message names the rule.
var Invalid = errors.New("invalid input")

// NotFound indicates that the requested order or container does not exist.
var NotFound = errors.New("not found")

// Forbidden indicates that the actor is not allowed to perform the operation.
var Forbidden = errors.New("forbidden")

// Conflict indicates a uniqueness or state conflict in the store.
var Conflict = errors.New("conflict")
