package response

import (
	"time"

	"fitbook-storefront/internal/domain/user"
	"fitbook-storefront/internal/usecase/merge"
	"fitbook-storefront/internal/usecase/storefront"
)

type UserResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type MergeResponse struct {
	State       string `json:"state"`
	Attempted   int    `json:"attempted"`
	Transferred int    `json:"transferred"`
	Dropped     int    `json:"dropped"`
}

// The access token itself is only ever sent as an httpOnly cookie.
type SessionResponse struct {
	User        UserResponse  `json:"user"`
	Merge       MergeResponse `json:"merge"`
	AddedCourse bool          `json:"added_course,omitempty"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		FullName:  u.FullName(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromMergeOutcome(o merge.Outcome) MergeResponse {
	return MergeResponse{
		State:       o.State.String(),
		Attempted:   o.Attempted,
		Transferred: o.Transferred,
		Dropped:     o.Dropped,
	}
}

func FromSessionResult(r *storefront.SessionResult) SessionResponse {
	return SessionResponse{
		User:        FromUser(r.User),
		Merge:       FromMergeOutcome(r.Merge),
		AddedCourse: r.AddedCourse,
	}
}
