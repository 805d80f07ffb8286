// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a chat participant known to the bot.
type User struct {
	ID          int64     // The chat platform's user id. Stable and unique.
	FirstName   string    // Display name captured when the user was first seen.
	IsSuperuser bool      // Set by password checks; false until a check succeeds.
	CreatedAt   time.Time // Timestamp of when the user was first seen.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}

// ExternalUser is the caller-supplied descriptor of a chat participant.
type ExternalUser struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"firstName"`
}

// NewUser builds the default-valued user for a participant seen for the first time.
func NewUser(ext ExternalUser) *User {
	return &User{
		ID:        ext.ID,
		FirstName: ext.FirstName,
	}
}
