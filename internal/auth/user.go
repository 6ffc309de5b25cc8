package auth

import (
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pulseops/pulse/misc"
)

// Login maps a lowercased email to the account that owns it, the bucket key
// doubles as the uniqueness constraint on emails.
type Login struct {
	UserID   string `json:"userId"`
	Password string `json:"password"` // bcrypt hash, never the plaintext
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Type      Scope  `json:"role,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

type SignupUser struct {
	User
	Password string `json:"password"`
}

func (u *User) Check(newUser bool) error {
	if newUser && len(u.ID) != 0 {
		return ErrInvalidUserID
	}
	if len(u.Name) == 0 {
		return ErrInvalidName
	}
	if len(u.Email) < 6 /* a@a.ab */ || strings.Index(u.Email, "@") == -1 {
		return ErrInvalidEmail
	}
	if !u.Type.Valid() {
		return ErrInvalidUserType
	}
	return nil
}

func (a *Auth) CreateUserTx(tx *bolt.Tx, u *User, password string) (err error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if err = u.Check(true); err != nil {
		return
	}

	email := misc.TrimEmail(u.Email)
	if v := misc.GetBucket(tx, a.cfg.Bucket.Login).Get([]byte(email)); v != nil {
		return ErrUserExists
	}

	u.CreatedAt = time.Now().UnixNano()

	if password, err = HashPassword(password); err != nil {
		return
	}

	if u.ID, err = misc.GetNextIndex(tx, a.cfg.Bucket.User); err != nil {
		return
	}

	if err = misc.PutTxJson(tx, a.cfg.Bucket.User, u.ID, u); err != nil {
		return
	}

	// logins are always in lowercase
	login := &Login{
		UserID:   u.ID,
		Password: password,
	}

	return misc.PutTxJson(tx, a.cfg.Bucket.Login, email, login)
}

func (a *Auth) GetUserTx(tx *bolt.Tx, userID string) *User {
	var u User
	if misc.GetTxJson(tx, a.cfg.Bucket.User, userID, &u) == nil && u.ID != "" {
		return &u
	}
	return nil
}

func (a *Auth) GetLoginTx(tx *bolt.Tx, email string) *Login {
	email = misc.TrimEmail(email)

	var l Login
	if misc.GetTxJson(tx, a.cfg.Bucket.Login, email, &l) == nil && l.UserID != "" {
		return &l
	}
	return nil
}

func (a *Auth) GetUserByEmailTx(tx *bolt.Tx, email string) *User {
	if l := a.GetLoginTx(tx, email); l != nil {
		return a.GetUserTx(tx, l.UserID)
	}
	return nil
}
