package domain

const (
	RoleOwner  = "owner"
	RoleClient = "client"
)

// User is the identity-provider view of the current actor. ClientID is nil
// for owners.
type User struct {
	ID       string
	Role     string
	ClientID *int
}

func (u User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanAccessClient reports whether the user may act on the given client's
// data. Owners may act on any client; client users only on their own.
func (u User) CanAccessClient(clientID int) bool {
	if u.IsOwner() {
		return true
	}
	return u.ClientID != nil && *u.ClientID == clientID
}
