package auth

import "blog-backend/internal/models"

// Identity is the authenticated caller, as recovered from the bearer token.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanModify is the single ownership rule for mutating owned resources:
// the caller must be the stored owner or hold the admin role. ownerID is
// always the owner recorded in the database, never client-supplied data.
func (i Identity) CanModify(ownerID string) bool {
	return i.IsAdmin() || i.UserID == ownerID
}
