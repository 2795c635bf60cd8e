package user

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleGymOwner   Role = "gym_owner"
	RoleInstructor Role = "instructor"
	RoleSubscriber Role = "subscriber"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleGymOwner, RoleInstructor, RoleSubscriber:
		return true
	default:
		return false
	}
}

func (r Role) IsStaff() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
