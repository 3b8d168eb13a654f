package boundary

import (
	"encoding/json"
	"fmt"

	"openfairdb/internal/domain"
)

// UserRole with its fixed lowercase wire spellings.
type UserRole string

const (
	UserRoleGuest UserRole = "guest"
	UserRoleUser  UserRole = "user"
	UserRoleScout UserRole = "scout"
	UserRoleAdmin UserRole = "admin"
)

// UnmarshalJSON rejects tokens outside the enumerated set.
func (r *UserRole) UnmarshalJSON(b []byte) error {
	var tok string
	if err := json.Unmarshal(b, &tok); err != nil {
		return err
	}
	switch UserRole(tok) {
	case UserRoleGuest, UserRoleUser, UserRoleScout, UserRoleAdmin:
		*r = UserRole(tok)
		return nil
	}
	return fmt.Errorf("unknown user role %q", tok)
}

// UserRoleFromDomain converts a role for output.
func UserRoleFromDomain(r domain.Role) UserRole {
	return UserRole(r.String())
}

// ToDomain converts back; total for the enumerated set.
func (r UserRole) ToDomain() domain.Role {
	return domain.Role(r)
}

// User is the public view of an account. The password hash has no wire
// counterpart and is dropped on conversion.
type User struct {
	Email          string   `json:"email"`
	EmailConfirmed bool     `json:"email_confirmed"`
	Role           UserRole `json:"role"`
}

// UserFromDomain converts a user for output, discarding the password.
func UserFromDomain(u domain.User) User {
	return User{
		Email:          u.Email.String(),
		EmailConfirmed: u.EmailConfirmed,
		Role:           UserRoleFromDomain(u.Role),
	}
}

// ToDomain converts back; the password of the result is empty.
func (u User) ToDomain() domain.User {
	return domain.User{
		Email:          domain.Email(u.Email),
		EmailConfirmed: u.EmailConfirmed,
		Role:           u.Role.ToDomain(),
	}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestPasswordReset asks for a reset token to be mailed out.
type RequestPasswordReset struct {
	Email string `json:"email"`
}

// ResetPassword redeems a reset token.
type ResetPassword struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
