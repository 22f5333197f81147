package session

import (
	"errors"
	"fmt"
	"time"

	"resortfront/internal/upstream"
)

// Role is the closed variant set the portal understands. The server may
// only hand out these two; anything else fails login locally.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

// Identity is the authenticated user, held server-side for the lifetime
// of the session and destroyed on logout.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session binds an identity, its server-supplied navigation menu and the
// upstream bearer token. The token never leaves the server; browsers get
// a signed cookie referencing the session id.
type Session struct {
	ID        string
	Identity  Identity
	Menus     []upstream.MenuEntry
	Token     string
	CreatedAt time.Time
}

// ErrNoSession is returned when the id does not resolve to a live
// session (expired, logged out, or never existed).
var ErrNoSession = errors.New("no active session")
