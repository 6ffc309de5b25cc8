package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/pulseops/pulse/config"
	"github.com/pulseops/pulse/misc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth(t *testing.T) *Auth {
	t.Helper()

	cfg := &config.Config{
		DBPath:    t.TempDir() + string(filepath.Separator),
		DBName:    "auth-test",
		Sandbox:   true,
		JWTSecret: "test-signing-key",
	}
	cfg.Bucket.User = "user"
	cfg.Bucket.Login = "login"
	cfg.Bucket.Campaign = "campaign"
	cfg.Bucket.CampaignName = "campaignName"

	db, err := misc.OpenDB(cfg.DBPath, cfg.DBName)
	require.NoError(t, err)
	require.NoError(t, misc.CreateBuckets(db, cfg.AllBuckets()))
	t.Cleanup(func() { db.Close(); os.RemoveAll(cfg.DBPath) })

	return New(db, cfg)
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("hunter22hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22hunter22", h)
	assert.True(t, strings.HasPrefix(h, "$2a$"))
	assert.True(t, CheckPassword(h, "hunter22hunter22"))
	assert.False(t, CheckPassword(h, "hunter23hunter23"))

	_, err = HashPassword("")
	assert.Equal(t, ErrInvalidPass, err)
}

func TestCreateUser(t *testing.T) {
	a := testAuth(t)

	u := &User{Name: "Alice", Email: "Alice@Example.com", Type: InfluencerScope}
	err := a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, u, "password123")
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	// stored hash, never the plaintext; login keyed by lowercased email
	a.db.View(func(tx *bolt.Tx) error {
		l := a.GetLoginTx(tx, "alice@example.com")
		require.NotNil(t, l)
		assert.Equal(t, u.ID, l.UserID)
		assert.NotEqual(t, "password123", l.Password)

		got := a.GetUserByEmailTx(tx, "ALICE@example.com")
		require.NotNil(t, got)
		assert.Equal(t, "Alice", got.Name)
		return nil
	})

	// duplicate email always fails, whatever the casing
	dup := &User{Name: "Alice Again", Email: "ALICE@EXAMPLE.COM", Type: InfluencerScope}
	err = a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, dup, "password123")
	})
	assert.Equal(t, ErrUserExists, err)
}

func TestCreateUserValidation(t *testing.T) {
	a := testAuth(t)

	tests := []struct {
		name string
		u    User
		ex   error
	}{
		{"no name", User{Email: "a@b.co", Type: InfluencerScope}, ErrInvalidName},
		{"bad email", User{Name: "Bob", Email: "nope", Type: InfluencerScope}, ErrInvalidEmail},
		{"bad role", User{Name: "Bob", Email: "bob@b.com", Type: Scope("admin")}, ErrInvalidUserType},
		{"preset id", User{ID: "7", Name: "Bob", Email: "bob@b.com", Type: ManagerScope}, ErrInvalidUserID},
	}
	for _, ts := range tests {
		err := a.db.Update(func(tx *bolt.Tx) error {
			u := ts.u
			return a.CreateUserTx(tx, &u, "password123")
		})
		assert.Equal(t, ts.ex, err, ts.name)
	}
}

func TestSignIn(t *testing.T) {
	a := testAuth(t)

	u := &User{Name: "Acme", Email: "acme@brand.com", Type: ManagerScope}
	require.NoError(t, a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, u, "password123")
	}))

	got, tok, err := a.SignIn("acme@brand.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, u.ID, got.ID)

	claims, err := a.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.ID)
	assert.Equal(t, "Acme", claims.Name)
	assert.Equal(t, ManagerScope, claims.Role)
	assert.Equal(t, "acme@brand.com", claims.Email)

	// unknown email and wrong password are indistinguishable
	_, _, err = a.SignIn("acme@brand.com", "wrong-password")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, _, err = a.SignIn("nobody@brand.com", "password123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestParseTokenRejectsForged(t *testing.T) {
	a := testAuth(t)
	b := testAuth(t)
	b.cfg.JWTSecret = "a-different-key"

	u := &User{Name: "Acme", Email: "acme@brand.com", Type: ManagerScope}
	require.NoError(t, a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, u, "password123")
	}))

	tok, err := b.SignToken(u)
	require.NoError(t, err)

	_, err = a.ParseToken(tok)
	assert.Error(t, err)

	_, err = a.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tests := []struct{ in, ex string }{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"abc.def.ghi", "abc.def.ghi"},
		{"Bearer ", ""},
	}
	for _, ts := range tests {
		if v := BearerToken(ts.in); v != ts.ex {
			t.Errorf("wanted %q, got %q", ts.ex, v)
		}
	}
}
