package domain

import (
	"golang.org/x/crypto/bcrypt"

	pkgerrors "openfairdb/pkg/errors"
)

// Role is the authorization level of a user.
//
// Usage: construct via ParseRole at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleScout Role = "scout"
	RoleAdmin Role = "admin"
)

var roleOrder = map[Role]int{
	RoleGuest: 0,
	RoleUser:  1,
	RoleScout: 2,
	RoleAdmin: 3,
}

// ParseRole constructs a Role from external input.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleOrder[r]; !ok {
		return "", pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid user role %q", s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

// IsAtLeast reports whether this role grants at least the privileges of
// other.
func (r Role) IsAtLeast(other Role) bool {
	return roleOrder[r] >= roleOrder[other]
}

// Password is a bcrypt hash. The plaintext never leaves NewPassword/Verify.
type Password string

// NewPassword hashes a plaintext password.
func NewPassword(plain string) (Password, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "hashing password")
	}
	return Password(hash), nil
}

// Verify checks a plaintext candidate against the hash.
func (p Password) Verify(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p), []byte(plain)) == nil
}

// User is a registered account. The password hash stays server-side; the
// wire representation must never carry it.
type User struct {
	Email          Email
	EmailConfirmed bool
	Password       Password
	Role           Role
}
