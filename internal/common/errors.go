package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// auth-specific errors
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorUsernameTaken      = errors.New("username already taken")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// entry-specific errors
	ErrorEmptyEntry    = errors.New("entry text is required")
	ErrorEntryNotOwned = errors.New("entry does not belong to user")
	ErrorPremiumLocked = errors.New("premium not unlocked for this entry")
)
