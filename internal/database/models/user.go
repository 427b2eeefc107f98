package models

import "time"

// UserRole represents the role of a user within its organization
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// User represents a member of an organization. Archiving a user is a soft
// delete: the archive timestamp is set and email/password are nulled in the
// same write, the row itself stays.
type User struct {
	BaseModel
	Tenant
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        *string    `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	PasswordHash *string    `json:"-" gorm:"size:255"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsArchived reports whether the user has been archived.
func (u *User) IsArchived() bool {
	return u.ArchivedAt != nil
}
