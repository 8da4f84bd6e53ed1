package entity

// Role represents an account's authorization level.
type Role string

const (
	// RoleReseller is the default role for purchasing accounts.
	RoleReseller Role = "reseller"

	// RoleAdmin may manage stock, credits and snapshots.
	RoleAdmin Role = "admin"
)

// String returns the role as a plain string for token claims.
func (r Role) String() string {
	return string(r)
}
