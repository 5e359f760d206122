package userservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mirrelia/inkwell/internal/common"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

func NewUserService(db *sql.DB, c *common.Cache) *UserService {
	return &UserService{
		m: newUserModel(db),
		c: c,
	}
}

// RegisterUser creates a new user account and immediately establishes a
// login session for it. A registration that races another one on the same
// email loses at the unique constraint and surfaces ErrDuplicateEmail.
func (s *UserService) RegisterUser(ctx context.Context, name, email, password string) (*User, *Session, error) {
	v := common.NewValidator()
	validateName(v, name)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, nil, v.ValidationError()
	}

	u := User{
		Name:     name,
		Email:    email,
		Password: Password{Plain: password},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.m.createSession(ctx, u.ID, SessionTokenTime)
	if err != nil {
		return nil, nil, err
	}

	return &u, session, nil
}

// LoginUser verifies the credentials and creates a fresh session. ErrNotFound
// means no account with that email exists; ErrInvalidCredentials means the
// password did not match.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*User, *Session, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.m.createSession(ctx, user.ID, SessionTokenTime)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// GetUserBySessionToken resolves a cookie token to the full user record. The
// lookup is cached until logout or entry expiry.
func (s *UserService) GetUserBySessionToken(ctx context.Context, token string) (*User, error) {
	v := common.NewValidator()
	validateSessionToken(v, token)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	hash := hashToken(token)

	if cached, ok := s.c.Get(common.CacheKeyUserBySessionToken(hash)); ok {
		user := cached.(User)
		return &user, nil
	}

	user, err := s.m.getUserBySessionHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyUserBySessionToken(hash), *user)

	return user, nil
}

// LogoutUser deletes every session belonging to the user and flushes the
// session cache so stale cookies stop resolving immediately.
func (s *UserService) LogoutUser(ctx context.Context, userID int) error {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	err := s.m.deleteSessionsForUser(ctx, userID)
	if err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry. Called once at
// startup.
func (s *UserService) DeleteExpiredSessions(ctx context.Context) error {
	return s.m.deleteExpiredSessions(ctx)
}

// GetUserByID loads a user record by its identifier.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getUserByID(ctx, id)
}
