package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/user"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Same error for unknown email and wrong password.
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Issue(u.ID(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &LoginResult{User: u, Token: token}, nil
}
