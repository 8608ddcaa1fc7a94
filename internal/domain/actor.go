package domain

// Role represents the kind of authenticated actor.
type Role string

// List of actor roles
const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
)

// Valid checks if the Role is known.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleVendor
}

// Actor is the identity supplied by the authentication collaborator.
// Vendor is empty for admin actors.
type Actor struct {
	Role   Role
	Vendor string
}

// IsAdmin reports whether the actor is the dispatcher.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// ActsFor reports whether the actor is the vendor owning the given name.
func (a Actor) ActsFor(vendor string) bool {
	return a.Role == RoleVendor && a.Vendor == vendor
}
