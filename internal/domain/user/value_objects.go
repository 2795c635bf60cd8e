package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidFullName = errors.New("full name is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordMissing = errors.New("password is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

// NewSubmittedPassword accepts an existing account's password as typed. Strength is the backend's call.
func NewSubmittedPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrPasswordMissing
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FullName struct {
	value string
}

func NewFullName(s string) (FullName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FullName{}, ErrInvalidFullName
	}
	return FullName{value: s}, nil
}

func (n FullName) Value() string {
	return n.value
}
