package domain

import "time"

const (
	RoleRider  = "Rider"
	RoleDriver = "Driver"
	RoleAdmin  = "Admin"
)

// ValidRole reports whether role is one of the roles the platform knows about.
func ValidRole(role string) bool {
	return role == RoleRider || role == RoleDriver || role == RoleAdmin
}

// User models an account that can authenticate against the platform.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"fullName" bson:"full_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Roles        []string  `json:"roles" bson:"roles"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
