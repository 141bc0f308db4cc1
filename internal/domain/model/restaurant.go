package model

import "time"

// Restaurant represents a restaurant owned by a single owner account.
type Restaurant struct {
	ID        int64
	OwnerID   int64
	Name      string
	Address   string
	CreatedAt time.Time
}
