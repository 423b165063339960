package domain

import "time"

// Customer represents a salon client, matched by email
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
