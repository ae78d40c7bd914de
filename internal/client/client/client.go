package client

import (
	"context"

	"github.com/dmitrijs2005/neumodiag/internal/client/models"
)

// Client is the remote session API used by the CLI.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error)
	// Upload sends the file at filePath as the profile picture. The bearer
	// header is set only when token is not empty.
	Upload(ctx context.Context, token string, filePath string) error
}
