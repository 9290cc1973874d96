package domain

import "time"

// User represents a member of staff who can sign in.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Actor returns the identity used for authorization decisions.
func (u User) Actor() Actor {
	return Actor{UserID: u.UserID, Email: u.Email, Role: u.Role}
}
