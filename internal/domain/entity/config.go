package entity

import "time"

// Config holds the current superuser credential.
// Only one row is authoritative; see ConfigRepository.Current.
type Config struct {
	ID                uint
	SuperuserPassword string // bcrypt hash, never plaintext
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
