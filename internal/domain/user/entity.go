package user

import "time"

// User is owned by the booking backend; the storefront only holds what /auth/me returned.
type User struct {
	id        string
	fullName  string
	email     string
	role      Role
	createdAt *time.Time
}

func NewUser(id, fullName, email string, role Role, createdAt *time.Time) *User {
	return &User{
		id:        id,
		fullName:  fullName,
		email:     email,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) ID() string            { return u.id }
func (u *User) FullName() string      { return u.fullName }
func (u *User) Email() string         { return u.email }
func (u *User) Role() Role            { return u.role }
func (u *User) CreatedAt() *time.Time { return u.createdAt }
