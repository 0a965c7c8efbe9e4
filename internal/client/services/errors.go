package services

import "errors"

// Precondition failures checked before any network call. The messages are
// user-facing.
var (
	ErrFieldsRequired   = errors.New("please fill in all fields")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNotLoggedIn      = errors.New("please log in first")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrAlreadyUnlocked  = errors.New("entry is already unlocked")
)
