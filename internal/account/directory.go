package account

import (
	"errors"
	"strings"
	"sync"
)

const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrMissingField       = errors.New("name, email and password are required")
)

// User is a signed-in user. It never carries the password.
type User struct {
	ID    int
	Name  string
	Email string
}

type record struct {
	User
	password string
}

// SignupRequest holds the sign-up form fields.
type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks the request without consulting the directory.
func (r SignupRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ErrMissingField
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Directory is an in-memory list of demo users. Passwords are compared in
// plain text; it is not an authentication system.
type Directory struct {
	mu    sync.RWMutex
	users []record
}

// NewDirectory returns an empty directory, or one seeded with the demo users.
func NewDirectory(seedDemoUsers bool) *Directory {
	d := &Directory{}
	if seedDemoUsers {
		d.users = []record{
			{User: User{ID: 1, Name: "Demo User", Email: "demo@example.com"}, password: "demo123"},
			{User: User{ID: 2, Name: "Test User", Email: "test@example.com"}, password: "test123"},
		}
	}
	return d
}

func (d *Directory) Login(email, password string) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.Email == email && u.password == password {
			return u.User, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Signup validates req, registers a new user and returns it.
func (d *Directory) Signup(req SignupRequest) (User, error) {
	if err := req.Validate(); err != nil {
		return User{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == req.Email {
			return User{}, ErrEmailTaken
		}
	}
	u := record{
		User:     User{ID: len(d.users) + 1, Name: req.Name, Email: req.Email},
		password: req.Password,
	}
	d.users = append(d.users, u)
	return u.User, nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
