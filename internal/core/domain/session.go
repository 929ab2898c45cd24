package domain

// Session is the caller identity resolved for a single request.
type Session struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// CanActOn reports whether the caller may modify a record owned by ownerID.
func (s Session) CanActOn(ownerID string) bool {
	return s.IsAdmin() || s.UserID == ownerID
}
