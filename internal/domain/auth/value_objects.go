package auth

import (
	"fitbook-storefront/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

// NewLoginCredentials only checks that something was typed. The backend decides whether it matches.
func NewLoginCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewSubmittedPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

type Registration struct {
	fullName    user.FullName
	credentials Credentials
}

func NewRegistration(fullNameStr, emailStr, passwordStr string) (Registration, error) {
	fullName, err := user.NewFullName(fullNameStr)
	if err != nil {
		return Registration{}, err
	}

	credentials, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		fullName:    fullName,
		credentials: credentials,
	}, nil
}

func (r Registration) FullName() user.FullName {
	return r.fullName
}

func (r Registration) Credentials() Credentials {
	return r.credentials
}
