package user

import "time"

// User is the local record bound to an external identity. ID is the
// identity provider's subject id; email and full name are only stored when
// the provider shared them.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     *string   `db:"email" json:"email,omitempty"`
	FullName  *string   `db:"full_name" json:"full_name,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
