package domain

import "time"

// Session is one persisted login: the server-side half of the token
// handed out at login time. It is cleared on logout and ignored once
// Expiry has passed.
type Session struct {
	ID        string // uuid
	UserID    int64
	Role      string
	Email     string
	Name      string
	LoginTime time.Time
	Expiry    time.Time
}
