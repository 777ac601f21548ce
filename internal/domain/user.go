package domain

import "time"

// User owns bookings; created lazily when a wizard completes
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
