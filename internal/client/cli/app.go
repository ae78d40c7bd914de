package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/neumodiag/internal/client/client"
	"github.com/dmitrijs2005/neumodiag/internal/client/config"
	"github.com/dmitrijs2005/neumodiag/internal/client/credstore"
	"github.com/dmitrijs2005/neumodiag/internal/client/services"
	"github.com/dmitrijs2005/neumodiag/internal/logging"
	"github.com/dmitrijs2005/neumodiag/internal/taskx"
)

// App is the interactive client.
type App struct {
	session *services.SessionService
	auth    services.AuthService
	prompt  Prompter
	picker  FilePicker
	pacer   taskx.Pacer
	logger  logging.Logger

	out    io.Writer // menus and results
	outTTY bool
	status io.Writer // spinner
	stTTY  bool
}

// NewApp builds an App that keeps its session files in home and talks to
// the service named in c. It reads from stdin and writes to stdout, with
// the spinner on stderr.
func NewApp(c *config.Config, home string, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, nil, logger)
	if err != nil {
		return nil, err
	}

	store := credstore.New(home)
	logger.Debug(context.Background(), "session files", "dir", store.Dir())

	return &App{
		session: services.NewSessionService(store, logger),
		auth:    services.NewAuthService(apiClient, logger),
		prompt:  newLinePrompter(os.Stdin, os.Stdout),
		picker:  newZenityPicker(),
		pacer:   taskx.Pacer{Interval: c.SpinnerInterval, MinVisible: c.MinSpinnerDuration},
		logger:  logger,
		out:     os.Stdout,
		outTTY:  isTerminal(os.Stdout.Fd()),
		status:  os.Stderr,
		stTTY:   isTerminal(os.Stderr.Fd()),
	}, nil
}

// Run restores the previous session if allowed and runs the menu until the
// user exits. A graceful exit is recorded so the next run may restore the
// session; an input error returns without recording it.
func (a *App) Run(ctx context.Context) error {
	res := a.session.Start(ctx)
	if res.Restored {
		fmt.Fprintln(a.out)
		printSeparator(a.out)
		if res.DisplayName != "" {
			printSection(a.out, "Bienvenido de vuelta: "+res.DisplayName)
		} else {
			printSection(a.out, "Sesión restaurada automáticamente desde la sesión guardada.")
		}
	}

	if err := runMenu(ctx, a, a.prompt, a.out); err != nil {
		return err
	}

	if err := a.session.Shutdown(ctx); err != nil {
		a.logger.Warn(ctx, "recording clean exit", "error", err)
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) indicator(msg string) taskx.Indicator {
	return newSpinner(a.status, a.stTTY, msg)
}

// Logout forgets the session, including the saved copy.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Sesión cerrada.")
	return nil
}
