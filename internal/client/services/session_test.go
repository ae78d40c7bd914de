package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dmitrijs2005/neumodiag/internal/client/credstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

func TestSession_FirstRunIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())

	s := NewSessionService(store, nil)
	res := s.Start(ctx)

	assert.False(t, res.Restored)
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Token())

	meta, err := store.LoadMeta()
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.False(t, meta.CleanExit)
}

func TestSession_CrashDisablesRestore(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())

	run1 := NewSessionService(store, nil)
	run1.Start(ctx)
	require.NoError(t, run1.Login(ctx, "tok-crash", true))
	assert.True(t, run1.IsAuthenticated())
	// process dies here: no Shutdown

	run2 := NewSessionService(store, nil)
	res := run2.Start(ctx)

	assert.False(t, res.Restored)
	assert.Equal(t, Anonymous, run2.State())

	// the token stays on disk; it is just not trusted
	tok, ok, err := store.LoadToken()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-crash", tok)
}

func TestSession_GracefulExitRestores(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())

	run1 := NewSessionService(store, nil)
	run1.Start(ctx)
	require.NoError(t, run1.Login(ctx, "tok-ok", true))
	require.NoError(t, run1.Shutdown(ctx))

	run2 := NewSessionService(store, nil)
	res := run2.Start(ctx)

	assert.True(t, res.Restored)
	assert.Equal(t, Authenticated, run2.State())
	assert.Equal(t, "tok-ok", run2.Token())

	// restoring resets the flag, so a crash now disables the next restore
	meta, err := store.LoadMeta()
	require.NoError(t, err)
	assert.False(t, meta.CleanExit)
	assert.True(t, meta.Persist)

	run3 := NewSessionService(store, nil)
	assert.False(t, run3.Start(ctx).Restored)
}

func TestSession_RestoredTokenIsTrimmed(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())
	require.NoError(t, store.Persist("  abc.def.ghi \n", true))
	require.NoError(t, store.MarkCleanExit(true))

	s := NewSessionService(store, nil)
	res := s.Start(ctx)

	assert.True(t, res.Restored)
	assert.Equal(t, "abc.def.ghi", s.Token())
	assert.Empty(t, res.DisplayName)
}

func TestSession_RestoreCarriesDisplayName(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nombre_completo": "Ana Pérez",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	require.NoError(t, store.Persist(tok, true))
	require.NoError(t, store.MarkCleanExit(true))

	res := NewSessionService(store, nil).Start(ctx)
	assert.True(t, res.Restored)
	assert.Equal(t, "Ana Pérez", res.DisplayName)
}

func TestSession_CleanExitWithoutTokenIsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())
	require.NoError(t, store.MarkCleanExit(true))

	s := NewSessionService(store, nil)
	assert.False(t, s.Start(ctx).Restored)
	assert.Equal(t, Anonymous, s.State())
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())

	s := NewSessionService(store, nil)
	s.Start(ctx)
	require.NoError(t, s.Login(ctx, "tok", true))
	require.True(t, exists(t, store.TokenPath()))
	require.True(t, exists(t, store.MetaPath()))

	s.Logout(ctx)

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, exists(t, store.TokenPath()))
	assert.False(t, exists(t, store.MetaPath()))

	// logout with nothing on disk is fine
	s.Logout(ctx)
}

func TestSession_LoginWithoutRememberClearsStale(t *testing.T) {
	ctx := context.Background()
	store := credstore.New(t.TempDir())
	require.NoError(t, store.Persist("old", true))
	require.NoError(t, store.MarkCleanExit(true))

	s := NewSessionService(store, nil)
	require.True(t, s.Start(ctx).Restored)
	s.Logout(ctx)

	require.NoError(t, store.Persist("stale", true))
	require.NoError(t, s.Login(ctx, "fresh", false))

	assert.Equal(t, "fresh", s.Token())
	assert.False(t, exists(t, store.TokenPath()))

	require.NoError(t, s.Shutdown(ctx))
	next := NewSessionService(store, nil)
	assert.False(t, next.Start(ctx).Restored)
}

func TestSession_LoginRejectsEmptyToken(t *testing.T) {
	s := NewSessionService(credstore.New(t.TempDir()), nil)
	require.Error(t, s.Login(context.Background(), "  ", true))
	assert.Equal(t, Anonymous, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "State(9)", State(9).String())
}

// brokenStore fails every read and records the writes it sees.
type brokenStore struct {
	marks   []bool
	markErr error
	cleared int
}

func (b *brokenStore) Persist(string, bool) error { return errors.New("disk full") }
func (b *brokenStore) LoadToken() (string, bool, error) {
	return "", false, errors.New("permission denied")
}
func (b *brokenStore) LoadMeta() (*credstore.Meta, error) {
	return nil, errors.New("permission denied")
}
func (b *brokenStore) MarkCleanExit(clean bool) error {
	b.marks = append(b.marks, clean)
	return b.markErr
}
func (b *brokenStore) Clear() { b.cleared++ }

func TestSession_ReadErrorsTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	bs := &brokenStore{}

	s := NewSessionService(bs, nil)
	res := s.Start(ctx)

	assert.False(t, res.Restored)
	assert.Equal(t, Anonymous, s.State())
	assert.Equal(t, []bool{false}, bs.marks)
}

func TestSession_PersistFailureKeepsMemorySession(t *testing.T) {
	ctx := context.Background()
	s := NewSessionService(&brokenStore{}, nil)

	err := s.Login(ctx, "tok", true)
	require.Error(t, err)
	assert.Equal(t, "tok", s.Token())
}

func TestSession_ShutdownError(t *testing.T) {
	bs := &brokenStore{markErr: errors.New("read-only")}
	s := NewSessionService(bs, nil)

	err := s.Shutdown(context.Background())
	require.Error(t, err)
	assert.Equal(t, []bool{true}, bs.marks)
}
