package domain

import "time"

// Identity is a registered login. Its ID is the uid of the owning Profile.
type Identity struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// IdentityCreated is emitted once a new identity has been stored.
type IdentityCreated struct {
	UID         string
	Email       string
	DisplayName string
}
