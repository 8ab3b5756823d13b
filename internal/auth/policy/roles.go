package policy

import "strings"

// Role is the ordered moderation hierarchy: USER < OPERATOR < ADMIN.
type Role string

const (
	RoleUser     Role = "USER"
	RoleOperator Role = "OPERATOR"
	RoleAdmin    Role = "ADMIN"
)

// roleRank drives the hierarchy. Any permission granted at a lower rank is
// granted at every higher rank.
var roleRank = map[Role]int{
	RoleUser:     1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// ParseRole normalizes a raw claim value. Unknown or empty input yields
// ("", false) so callers stay fail-closed.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return "", false
	}
	return r, true
}

func (r Role) Known() bool {
	_, ok := roleRank[r]
	return ok
}

// HasRole reports whether the actor's hierarchy position covers required.
// Unknown actor or required role returns false, never an error.
func HasRole(actor, required Role) bool {
	ar, ok := roleRank[actor]
	if !ok {
		return false
	}
	rr, ok := roleRank[required]
	if !ok {
		return false
	}
	return ar >= rr
}

// HasAnyRole reports whether the actor covers at least one of the required
// roles. Empty required list returns false.
func HasAnyRole(actor Role, required ...Role) bool {
	for _, r := range required {
		if HasRole(actor, r) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the actor covers every required role. Empty
// required list returns false.
func HasAllRoles(actor Role, required ...Role) bool {
	if len(required) == 0 {
		return false
	}
	for _, r := range required {
		if !HasRole(actor, r) {
			return false
		}
	}
	return true
}

// CanModerate reports moderation eligibility: OPERATOR and ADMIN only.
func CanModerate(r Role) bool {
	return r == RoleOperator || r == RoleAdmin
}
