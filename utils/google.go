package utils

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/api/idtoken"
)

// ErrGoogleNotConfigured signals the deployment has no Google client id set.
var ErrGoogleNotConfigured = errors.New("google sign-in not configured")

// GoogleProfile is the subset of ID-token claims we map to a local user.
type GoogleProfile struct {
	Sub     string
	Email   string
	Name    string
	Picture string
}

// VerifyGoogleIDToken validates the ID token against GOOGLE_CLIENT_ID and
// extracts the profile claims.
func VerifyGoogleIDToken(ctx context.Context, rawToken string) (*GoogleProfile, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := idtoken.Validate(ctx, rawToken, clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}

	p := &GoogleProfile{Sub: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		p.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		p.Picture = v
	}
	if p.Email == "" {
		return nil, errors.New("id token has no email claim")
	}
	return p, nil
}
