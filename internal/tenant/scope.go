package tenant

// Scope is the capability that unlocks tenant-scoped storage. It is minted
// only by the auth middleware from a verified active-gym claim, and every
// repository method that touches gym-owned rows requires one. Code without a
// Scope cannot express an unscoped tenant query.
type Scope struct {
	gymID int
}

func NewScope(gymID int) Scope {
	return Scope{gymID: gymID}
}

// GymID is the value bound into WHERE clauses and new rows.
func (s Scope) GymID() int {
	return s.gymID
}
