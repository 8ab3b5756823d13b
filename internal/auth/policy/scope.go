package policy

// Scope restricts a moderator to a geographic subset of data. All three sets
// are optional; membership in any one of them admits a resource.
type Scope struct {
	Settlements    []string `json:"settlements,omitempty" bson:"settlements,omitempty"`
	Municipalities []string `json:"municipalities,omitempty" bson:"municipalities,omitempty"`
	Provinces      []string `json:"provinces,omitempty" bson:"provinces,omitempty"`
}

// ResourceTags are the geographic tags carried by a resource under
// moderation.
type ResourceTags struct {
	SettlementID string
	Municipality string
	Province     string
}

// InScope reports whether the resource falls inside the scope. A nil scope
// admits nothing. The tiers are checked settlement first as the most
// specific, though any single match suffices.
func InScope(res ResourceTags, scope *Scope) bool {
	if scope == nil {
		return false
	}
	if res.SettlementID != "" && contains(scope.Settlements, res.SettlementID) {
		return true
	}
	if res.Municipality != "" && contains(scope.Municipalities, res.Municipality) {
		return true
	}
	if res.Province != "" && contains(scope.Provinces, res.Province) {
		return true
	}
	return false
}

// Authorize is the combined role+scope moderation decision for a resource.
// An ADMIN with no scope assigned is unrestricted; an OPERATOR with no scope
// has no implicit access.
func Authorize(role Role, scope *Scope, res ResourceTags) bool {
	if !CanModerate(role) {
		return false
	}
	if scope == nil {
		return role == RoleAdmin
	}
	return InScope(res, scope)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
