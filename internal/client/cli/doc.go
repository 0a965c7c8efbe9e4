// Package cli is the interactive surface of the MoodFlow client. It
// translates REPL commands into calls on the session, entry and premium
// controllers and renders read-only snapshots of their shared state. All
// user-facing messaging lives here; the controllers only return classified
// errors.
package cli
