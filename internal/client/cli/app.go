package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"moodflow/internal/client/config"
	"moodflow/internal/client/httpapi"
	"moodflow/internal/client/prefs"
	"moodflow/internal/client/services"
	"moodflow/internal/logging"
)

// App wires the controllers to the REPL. It owns no journal state itself;
// everything user-visible is read from the shared services.State.
type App struct {
	config     *config.Config
	state      *services.State
	controller *services.SessionController
	store      *services.EntryStore
	premium    *services.PremiumFlow
	prefs      *prefs.Store
	reader     *bufio.Reader
	out        *os.File
	log        logging.Logger
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	apiClient, err := httpapi.NewHTTPClient(c.ServerBaseURL)
	if err != nil {
		return nil, err
	}

	prefStore, err := prefs.Open(ctx, c.PrefsPath)
	if err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	state := services.NewState()
	store := services.NewEntryStore(apiClient, state, log)
	controller := services.NewSessionController(apiClient, state, store, log)
	premium := services.NewPremiumFlow(apiClient, state, store, log)

	return &App{
		config:     c,
		state:      state,
		controller: controller,
		store:      store,
		premium:    premium,
		prefs:      prefStore,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		log:        log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.state.Authenticated()
}

func (a *App) getStatus() string {
	if u := a.state.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return "(anonymous)"
}

// Run probes the session once, consumes a payment-return URL when one was
// passed on the command line, and drops into the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.prefs.Close()

	if a.controller.Check(ctx) {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.state.CurrentUser().Username)
		a.List(ctx, nil)
	} else {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register' to get started.")
	}

	if a.config.ReturnURL != "" {
		_ = a.Paid(ctx, []string{a.config.ReturnURL})
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
