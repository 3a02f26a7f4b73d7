package domain

import "time"

// Role is the closed set of privilege levels. The numeric codes are the
// values persisted in the users collection (1=guest, 2=detective, 3=boss).
type Role int

const (
	RoleGuest     Role = 1
	RoleDetective Role = 2
	RoleBoss      Role = 3
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleDetective || r == RoleBoss
}

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleDetective:
		return "detective"
	case RoleBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// User models an account in the system.
//
// Guests are created approved; detectives start unapproved and cannot
// authenticate until a boss flips Approved. Boss accounts have no
// registration path and are seeded directly in storage.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	DetectiveID  string    `json:"detective_id,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}
