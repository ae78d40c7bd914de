package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/neumodiag/internal/client/client"
	"github.com/dmitrijs2005/neumodiag/internal/client/models"
	"github.com/dmitrijs2005/neumodiag/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// AuthService runs the remote account operations for the CLI flows.
//
// All methods block until the single network attempt finishes; callers run
// them through taskx so the terminal stays responsive.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	UploadPhoto(ctx context.Context, token, path string) error
}

type authService struct {
	client client.Client
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &authService{client: c, logger: logger}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.client.Register(ctx, req); err != nil {
		a.logger.Warn(ctx, "registration failed", "email", req.Email, "error", err)
		return err
	}
	a.logger.Info(ctx, "registration succeeded", "email", req.Email, "role", req.Role)
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := a.client.Login(ctx, models.AuthRequest{Email: email, Password: password})
	if err != nil {
		a.logger.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, err
	}
	a.logger.Info(ctx, "login succeeded", "email", email, "role", resp.Role)
	return resp, nil
}

func (a *authService) UploadPhoto(ctx context.Context, token, path string) error {
	if err := a.client.Upload(ctx, token, path); err != nil {
		a.logger.Warn(ctx, "upload failed", "path", path, "error", err)
		return err
	}
	a.logger.Info(ctx, "upload succeeded", "path", path)
	return nil
}

// invalidCredentialFragments are pieces of server error text that show up
// when the e-mail or password is wrong. Matching is on folded text.
var invalidCredentialFragments = []string{
	"bcrypt",
	"hashedpassword",
	"usuario no encontrado",
	"no rows",
	"invalid",
	"bad request",
}

// IsInvalidCredentials reports whether a login error looks like rejected
// credentials rather than an outage. Only answers from the service count;
// the match is best-effort on the status line and body text.
func IsInvalidCredentials(err error) bool {
	var re *client.RemoteError
	if !errors.As(err, &re) {
		return false
	}

	folded := foldText(re.Error())
	for _, frag := range invalidCredentialFragments {
		if strings.Contains(folded, frag) {
			return true
		}
	}
	return false
}

func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
