package user

import "context"

// Repository persists users and carries the reward ledger capability.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// IncrementRewardPoints adds points to the user's ledger as a single
	// atomic store-side increment. Joins an ambient transaction when the
	// context carries one.
	IncrementRewardPoints(ctx context.Context, userID uint, points int64) error
}
