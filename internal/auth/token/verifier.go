package token

import (
	"errors"
	"strings"
	"time"

	"selnet/internal/auth/policy"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken indicates the credential is absent, malformed, expired or
// failed signature validation. Callers must treat it as unauthenticated.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified attributes carried by an identity token. The single
// `role` claim is canonical; `roles` is legacy migration input and only its
// first element is considered when `role` is empty.
type Claims struct {
	Email         string        `json:"email,omitempty"`
	EmailVerified bool          `json:"email_verified,omitempty"`
	Role          string        `json:"role,omitempty"`
	Roles         []string      `json:"roles,omitempty"`
	Scope         *policy.Scope `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// EffectiveRole resolves the role claim precedence. Absent or unknown role
// claims resolve to USER.
func (c *Claims) EffectiveRole() policy.Role {
	if c == nil {
		return ""
	}
	if r, ok := policy.ParseRole(c.Role); ok {
		return r
	}
	if len(c.Roles) > 0 {
		if r, ok := policy.ParseRole(c.Roles[0]); ok {
			return r
		}
	}
	return policy.RoleUser
}

// Verifier validates identity tokens with a shared HS256 secret. It is the
// single trust boundary: no handler reads role or scope from anywhere else.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the raw token. It never logs the token value.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Issue signs a token for the given claims. Used by provisioning tooling and
// tests; the production identity provider mints its own tokens with the same
// secret.
func (v *Verifier) Issue(claims *Claims, ttl time.Duration) (string, error) {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("subject is required")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be greater than zero")
	}

	now := time.Now().UTC()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(v.secret)
}
