package services

import (
	"context"
	"errors"
	"fmt"

	"moodflow/internal/client/httpapi"
	"moodflow/internal/client/models"
	"moodflow/internal/common"
	"moodflow/internal/logging"
)

// minPasswordLen is enforced client-side before any network call.
const minPasswordLen = 6

// SessionController owns the Anonymous/Authenticated transition. Login,
// register and logout go through it, and every collaborator that observes an
// authorization failure mid-flight calls Expire to force the session back to
// anonymous.
type SessionController struct {
	api   httpapi.Client
	state *State
	store *EntryStore
	log   logging.Logger
}

func NewSessionController(api httpapi.Client, state *State, store *EntryStore, log logging.Logger) *SessionController {
	return &SessionController{api: api, state: state, store: store, log: log}
}

// Check probes the current-user endpoint once at startup. Any failure,
// transport included, degrades to the anonymous state; Check never returns
// an error.
func (c *SessionController) Check(ctx context.Context) bool {
	u, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.log.Debug(ctx, "session probe failed", "err", err)
		c.state.clearUser()
		return false
	}

	c.state.setUser(*u)
	if err := c.store.Load(ctx); err != nil {
		c.log.Warn(ctx, "initial entry load failed", "err", err)
	}
	return true
}

// Login authenticates and, on success, triggers a full entry reload so the
// first render after login shows server state. Failures leave the session
// anonymous and the entry cache untouched.
func (c *SessionController) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	u, err := c.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			// on the login endpoint a 401 means bad credentials,
			// not an expired session
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	c.state.setUser(*u)
	if err := c.store.Load(ctx); err != nil {
		c.log.Warn(ctx, "entry load after login failed", "err", err)
	}
	return u, nil
}

// Register creates an account. All precondition checks fail fast before any
// network call, and a successful registration never logs the user in.
func (c *SessionController) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return ErrFieldsRequired
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	if err := c.api.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout asks the server to terminate the session. On HTTP success both the
// user and the cached entry collection are dropped so no stale journal data
// survives the session.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.api.Logout(ctx); err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			// already expired server-side; converge locally
			c.Expire(ctx)
			return nil
		}
		return err
	}

	c.state.clearUser()
	c.store.Reset()
	return nil
}

// Expire implements the session-expiry contract: force the anonymous
// transition after an in-flight call observed a 401. The entry cache is left
// alone; the view blanks when it switches to the login surface.
func (c *SessionController) Expire(ctx context.Context) {
	if c.state.Authenticated() {
		c.log.Warn(ctx, "session expired")
	}
	c.state.clearUser()
}
