package models

import "time"

const (
	RoleAdmin       = "admin"
	RoleOrganizer   = "organizer"
	RoleDelegate    = "delegate"
	RoleParticipant = "participant"
)

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasRole reports whether the user's role is one of the given ones.
func (u *User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// UserForm is the create/update payload. Password is only sent on create.
type UserForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Active    *bool  `json:"active,omitempty"`
}

// ChangePasswordForm is the PUT /users/{id}/password payload.
type ChangePasswordForm struct {
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
