package models

type Role string

const (
	RoleGuest  Role = "Guest"
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

// Session holds the two independent role flags. IsAdmin may be set while
// LoggedIn is false; such a session still counts as a guest.
type Session struct {
	UserID   string `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	LoggedIn bool   `json:"loggedIn"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (s Session) Role() Role {
	switch {
	case !s.LoggedIn:
		return RoleGuest
	case s.IsAdmin:
		return RoleAdmin
	default:
		return RoleMember
	}
}

// AtLeast reports whether the session's role grants what r grants.
func (s Session) AtLeast(r Role) bool {
	return rank(s.Role()) >= rank(r)
}

func rank(r Role) int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}
