package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/edulane/edulane/internal/domain/user/valueobjects"
)

// User is the user aggregate root. Reward points form a monotonically
// increasing ledger; the engine only ever increments them, and only through
// Repository.IncrementRewardPoints so the update is atomic in the store.
type User struct {
	id           uint
	email        string
	name         string
	role         vo.Role
	passwordHash string
	rewardPoints int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with a pre-hashed password.
func NewUser(email, name string, role vo.Role, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !vo.ValidRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(id uint, email, name string, role vo.Role, passwordHash string, rewardPoints int64, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !vo.ValidRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		rewardPoints: rewardPoints,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() vo.Role        { return u.role }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) RewardPoints() int64  { return u.rewardPoints }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
