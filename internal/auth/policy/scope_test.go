package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInScope_NilScope(t *testing.T) {
	res := ResourceTags{SettlementID: "S1", Municipality: "M1", Province: "P1"}
	assert.False(t, InScope(res, nil))
	assert.False(t, InScope(ResourceTags{}, nil))
}

func TestInScope_Tiers(t *testing.T) {
	t.Run("settlement match", func(t *testing.T) {
		scope := &Scope{Settlements: []string{"S1", "S2"}}
		assert.True(t, InScope(ResourceTags{SettlementID: "S1"}, scope))
		assert.False(t, InScope(ResourceTags{SettlementID: "S3"}, scope))
	})

	t.Run("municipality match without settlement match", func(t *testing.T) {
		scope := &Scope{Municipalities: []string{"M1"}}
		res := ResourceTags{SettlementID: "S2", Municipality: "M1"}
		assert.True(t, InScope(res, scope))
	})

	t.Run("settlement miss and no municipalities in scope", func(t *testing.T) {
		scope := &Scope{Settlements: []string{"S1"}}
		res := ResourceTags{SettlementID: "S2", Municipality: "M1"}
		assert.False(t, InScope(res, scope))
	})

	t.Run("province match alone suffices", func(t *testing.T) {
		scope := &Scope{Provinces: []string{"P1"}}
		res := ResourceTags{SettlementID: "S9", Municipality: "M9", Province: "P1"}
		assert.True(t, InScope(res, scope))
	})

	t.Run("multiple tiers matching is fine", func(t *testing.T) {
		scope := &Scope{Settlements: []string{"S1"}, Provinces: []string{"P1"}}
		res := ResourceTags{SettlementID: "S1", Province: "P1"}
		assert.True(t, InScope(res, scope))
	})

	t.Run("no match when fields present but different", func(t *testing.T) {
		scope := &Scope{
			Settlements:    []string{"S1"},
			Municipalities: []string{"M1"},
			Provinces:      []string{"P1"},
		}
		res := ResourceTags{SettlementID: "S2", Municipality: "M2", Province: "P2"}
		assert.False(t, InScope(res, scope))
	})

	t.Run("empty scope sets admit nothing", func(t *testing.T) {
		assert.False(t, InScope(ResourceTags{SettlementID: "S1"}, &Scope{}))
	})
}

func TestAuthorize(t *testing.T) {
	res := ResourceTags{SettlementID: "S1"}
	scoped := &Scope{Settlements: []string{"S1"}}
	otherScope := &Scope{Settlements: []string{"S9"}}

	t.Run("admin without scope is unrestricted", func(t *testing.T) {
		assert.True(t, Authorize(RoleAdmin, nil, res))
	})

	t.Run("admin with scope is restricted to it", func(t *testing.T) {
		assert.True(t, Authorize(RoleAdmin, scoped, res))
		assert.False(t, Authorize(RoleAdmin, otherScope, res))
	})

	t.Run("operator without scope has no implicit access", func(t *testing.T) {
		assert.False(t, Authorize(RoleOperator, nil, res))
	})

	t.Run("operator inside scope allowed", func(t *testing.T) {
		assert.True(t, Authorize(RoleOperator, scoped, res))
		assert.False(t, Authorize(RoleOperator, otherScope, res))
	})

	t.Run("user never moderates", func(t *testing.T) {
		assert.False(t, Authorize(RoleUser, scoped, res))
		assert.False(t, Authorize(RoleUser, nil, res))
	})

	t.Run("unknown role denied", func(t *testing.T) {
		assert.False(t, Authorize("", scoped, res))
	})
}
