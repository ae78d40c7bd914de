// Package services contains the application services used by the CLI: the
// session lifecycle controller and the authentication service.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/neumodiag/internal/client/auth"
	"github.com/dmitrijs2005/neumodiag/internal/client/credstore"
	"github.com/dmitrijs2005/neumodiag/internal/logging"
)

// State is the authentication state of the running session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CredentialStore is the on-disk session storage. *credstore.Store
// satisfies it.
type CredentialStore interface {
	Persist(token string, persist bool) error
	LoadToken() (string, bool, error)
	LoadMeta() (*credstore.Meta, error)
	MarkCleanExit(clean bool) error
	Clear()
}

// Restore describes what Start found on disk.
type Restore struct {
	Restored bool
	// DisplayName is taken from the restored token when it carries one.
	DisplayName string
}

// SessionService owns the in-memory token and decides when a saved one is
// trusted. It is used from a single goroutine.
type SessionService struct {
	store  CredentialStore
	logger logging.Logger
	token  string
}

func NewSessionService(store CredentialStore, logger logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SessionService{store: store, logger: logger}
}

// Start restores a saved token only if the previous run ended through
// Shutdown. Whatever it finds, it then marks the metadata as not cleanly
// exited, so a crash during this run disables the next restore.
func (s *SessionService) Start(ctx context.Context) Restore {
	var res Restore

	meta, err := s.store.LoadMeta()
	if err != nil {
		s.logger.Warn(ctx, "reading session metadata", "error", err)
		meta = nil
	}
	token, ok, err := s.store.LoadToken()
	if err != nil {
		s.logger.Warn(ctx, "reading session token", "error", err)
		ok = false
	}
	token = strings.TrimSpace(token)

	switch {
	case !ok || token == "":
		s.logger.Debug(ctx, "no saved session")
	case meta == nil || !meta.CleanExit:
		s.logger.Info(ctx, "saved session ignored: previous run did not exit cleanly")
	default:
		s.token = token
		res.Restored = true
		res.DisplayName, _ = auth.DisplayName(token)
		s.logger.Info(ctx, "session restored")
	}

	if err := s.store.MarkCleanExit(false); err != nil {
		s.logger.Warn(ctx, "marking session metadata", "error", err)
	}

	return res
}

func (s *SessionService) State() State {
	if s.token == "" {
		return Anonymous
	}
	return Authenticated
}

func (s *SessionService) IsAuthenticated() bool { return s.State() == Authenticated }

// Token returns the current token, or "" when anonymous.
func (s *SessionService) Token() string { return s.token }

// Login stores token in memory. With remember it is also saved to disk;
// without it any previously saved session is removed.
func (s *SessionService) Login(ctx context.Context, token string, remember bool) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("login: empty token")
	}
	s.token = token

	if !remember {
		s.store.Clear()
		s.logger.Debug(ctx, "session not remembered")
		return nil
	}

	if err := s.store.Persist(token, true); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.logger.Info(ctx, "session saved")
	return nil
}

// Logout forgets the token and removes the saved session files.
func (s *SessionService) Logout(ctx context.Context) {
	s.token = ""
	s.store.Clear()
	s.logger.Info(ctx, "logged out")
}

// Shutdown records a graceful exit so the next run may restore the session.
func (s *SessionService) Shutdown(ctx context.Context) error {
	if err := s.store.MarkCleanExit(true); err != nil {
		return fmt.Errorf("marking clean exit: %w", err)
	}
	s.logger.Debug(ctx, "clean exit recorded")
	return nil
}
