package auth

import (
	"github.com/boltdb/bolt"
	"github.com/pulseops/pulse/config"
)

type Auth struct {
	db  *bolt.DB
	cfg *config.Config
}

func New(db *bolt.DB, cfg *config.Config) *Auth {
	return &Auth{
		db:  db,
		cfg: cfg,
	}
}

// SignInTx validates credentials and issues a signed token. Unknown email
// and wrong password return the same error on purpose so callers can't
// enumerate accounts.
func (a *Auth) SignInTx(tx *bolt.Tx, email, pass string) (u *User, stok string, err error) {
	l := a.GetLoginTx(tx, email)
	if l == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !CheckPassword(l.Password, pass) {
		return nil, "", ErrInvalidCredentials
	}
	if u = a.GetUserTx(tx, l.UserID); u == nil {
		// login without a user record should never ever happen
		return nil, "", ErrInvalidCredentials
	}
	stok, err = a.SignToken(u)
	return
}

func (a *Auth) SignIn(email, pass string) (u *User, stok string, err error) {
	// tokens are stateless, signing in is a pure read
	a.db.View(func(tx *bolt.Tx) error {
		u, stok, err = a.SignInTx(tx, email, pass)
		return nil
	})
	return
}
