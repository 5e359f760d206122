package userservice

import (
	"database/sql"
	"time"

	"github.com/mirrelia/inkwell/internal/common"
)

const (
	// SessionTokenTime is how long a login session stays valid.
	SessionTokenTime time.Duration = 7 * 24 * time.Hour
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m *DBModel
	c *common.Cache
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID        int
	Name      string
	Email     string
	Password  Password
	CreatedAt time.Time
}

func (u *User) IsAnonymous() bool {
	return u.ID == 0
}

type Password struct {
	Plain string
	hash  []byte
}

// Session is a server-side login session. Only the SHA-256 hash of the
// token is stored; the plain token travels in the cookie.
type Session struct {
	Plain  string
	Hash   []byte
	UserID int
	Expiry time.Time
}
