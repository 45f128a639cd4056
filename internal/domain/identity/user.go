package identity

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// UserRole represents the capability level of a user
type UserRole string

const (
	RoleClient UserRole = "client" // End user booking seats
	RoleAgent  UserRole = "agent"  // Back-office agent with administrative access
)

// IsValid checks if the role is a valid UserRole
func (r UserRole) IsValid() bool {
	return r == RoleClient || r == RoleAgent
}

// String returns the string representation of UserRole
func (r UserRole) String() string {
	return string(r)
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// IsValid checks if the status is a valid UserStatus
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusDisabled
}

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a user aggregate root
type User struct {
	shared.BaseAggregateRoot
	FullName     string
	Email        string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
}

// NewUser creates a new active user with a hashed password
func NewUser(fullName, email, password string, role UserRole) (*User, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Full name cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown user role")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          strings.TrimSpace(fullName),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      hash,
		Role:              role,
		Status:            UserStatusActive,
	}, nil
}

// SetFullName updates the user's display name
func (u *User) SetFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Full name cannot be empty")
	}
	u.FullName = strings.TrimSpace(fullName)
	u.UpdatedAt = time.Now()
	return nil
}

// SetEmail updates the user's email
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.UpdatedAt = time.Now()
	return nil
}

// SetRole updates the user's role
func (u *User) SetRole(role UserRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown user role")
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// SetStatus updates the account status
func (u *User) SetStatus(status UserStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown user status")
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	return nil
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAgent returns true if the user holds the agent capability
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}

// IsActive returns true if the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Initials returns the upper-cased first letters of the user's names,
// used by the recent-reservations feed
func (u *User) Initials() string {
	parts := strings.Fields(u.FullName)
	var b strings.Builder
	for i, p := range parts {
		if i >= 2 {
			break
		}
		runes := []rune(p)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
