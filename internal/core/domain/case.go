package domain

import "time"

// Case is a user-owned record of free-text investigative content.
// OwnerID is a plain foreign key; the owning user is resolved by a
// query-time join, never held as an object reference. Deleting a user
// does not cascade, so OwnerID may refer to a user that no longer exists.
type Case struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
