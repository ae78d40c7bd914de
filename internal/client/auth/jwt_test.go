package auth

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return tok
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{
			name:   "name claim present",
			token:  signed(t, jwt.MapClaims{"nombre_completo": "Ana Pérez", "user_id": 7}),
			want:   "Ana Pérez",
			wantOK: true,
		},
		{
			name:   "surrounding whitespace in token",
			token:  "  " + signed(t, jwt.MapClaims{"nombre_completo": "Luis"}) + "\n",
			want:   "Luis",
			wantOK: true,
		},
		{
			name:  "claim missing",
			token: signed(t, jwt.MapClaims{"sub": "1"}),
		},
		{
			name:  "claim not a string",
			token: signed(t, jwt.MapClaims{"nombre_completo": 12}),
		},
		{
			name:  "blank claim",
			token: signed(t, jwt.MapClaims{"nombre_completo": "   "}),
		},
		{
			name:  "not a jwt",
			token: "opaque-token",
		},
		{
			name:  "empty",
			token: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DisplayName(tc.token)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDisplayName_IgnoresSignature(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"nombre_completo": "Eva"}).
		SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	got, ok := DisplayName(tok)
	require.True(t, ok)
	assert.Equal(t, "Eva", got)
}

func rawToken(header, payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString([]byte(payload)) + ".sig"
}

func TestDisplayName_AnyHeader(t *testing.T) {
	payload := `{"nombre_completo":"Ana"}`
	for _, header := range []string{`{"typ":"JWT"}`, `{"alg":"XS512"}`, `{"alg":"none"}`, `not json`} {
		t.Run(header, func(t *testing.T) {
			got, ok := DisplayName(rawToken(header, payload))
			require.True(t, ok)
			assert.Equal(t, "Ana", got)
		})
	}
}

func TestDisplayName_BadPayload(t *testing.T) {
	_, ok := DisplayName(rawToken(`{"alg":"HS256"}`, "not json"))
	assert.False(t, ok)

	_, ok = DisplayName("a.!!!.c")
	assert.False(t, ok)
}
