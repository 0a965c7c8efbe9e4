package cli

import (
	"context"
	"fmt"

	"moodflow/internal/client/prefs"
)

// Theme shows the current theme, or persists a new one. The preference lives
// in the local store and survives restarts and logouts.
func (a *App) Theme(ctx context.Context, args []string) error {

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Theme: %s (use 'theme light' or 'theme dark' to change)\n", a.prefs.Theme(ctx))
		return nil
	}

	if err := a.prefs.SetTheme(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "Unknown theme %q — choose %s or %s\n", args[0], prefs.ThemeLight, prefs.ThemeDark)
		return err
	}

	fmt.Fprintf(a.out, "Theme set to %s\n", args[0])
	return nil
}
