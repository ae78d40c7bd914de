// Package auth decodes the session token returned by the service for
// display purposes only. Nothing here verifies a signature; the server
// remains the only authority on whether a token is valid.
package auth

import (
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// DisplayNameClaim is the token claim holding the user's full name.
const DisplayNameClaim = "nombre_completo"

// DisplayName extracts the full name embedded in token. ok is false when
// the token is not a JWT or carries no non-empty name.
func DisplayName(token string) (name string, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	// Only the payload is read; the header may name any algorithm or none.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}
	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return "", false
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	name, _ = claims[DisplayNameClaim].(string)
	name = strings.TrimSpace(name)
	return name, name != ""
}
