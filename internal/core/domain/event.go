package domain

import "time"

const (
	EventSignup      = "signup"
	EventLogin       = "login"
	EventLoginFailed = "login_failed"
	EventRefresh     = "refresh"
	EventLogout      = "logout"
)

// AuthEvent is an audit record of one authentication attempt. UserID is empty
// when the attempt never resolved to an account (unknown email).
type AuthEvent struct {
	ID        string
	UserID    string
	Email     string
	Type      string
	CreatedAt time.Time
}

// ShardKey identifies the stream this event belongs to. Events sharing a key
// must be persisted in arrival order.
func (e AuthEvent) ShardKey() string {
	if e.UserID != "" {
		return e.UserID
	}
	return e.Email
}
