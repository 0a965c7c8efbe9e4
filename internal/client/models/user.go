package models

// User identifies the authenticated account. It exists only while a session
// is active; the controller clears it on logout or session expiry.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
