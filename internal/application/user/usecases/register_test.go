package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulane/edulane/internal/domain/user"
	vo "github.com/edulane/edulane/internal/domain/user/valueobjects"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

// fakeUserRepo keys users by lowercased email the way the unique index does.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email()]; exists {
		return errors.New("UNIQUE constraint failed: users.email")
	}
	if u.ID() == 0 {
		if err := u.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.byEmail[u.Email()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[strings.ToLower(email)], nil
}

func (r *fakeUserRepo) IncrementRewardPoints(ctx context.Context, userID uint, points int64) error {
	return nil
}

// plainHasher marks hashes with a prefix so tests can tell them from raw input.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(userID uint, role string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func TestRegister_CreatesStudentByDefault(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUseCase(repo, plainHasher{}, testLogger())

	u, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "Ada@Example.com",
		Name:     "Ada",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.RoleStudent, u.Role())
	assert.Equal(t, "ada@example.com", u.Email())
	assert.Equal(t, "hashed:correct horse", u.PasswordHash())
	assert.NotZero(t, u.ID())
}

func TestRegister_ShortPassword(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUserRepo(), plainHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "short",
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRegister_AdminSelfRegistrationForbidden(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUserRepo(), plainHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "root@example.com",
		Name:     "Root",
		Password: "longenough",
		Role:     "admin",
	})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUseCase(repo, plainHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "longenough",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterCommand{
		Email:    "ADA@example.com",
		Name:     "Ada Again",
		Password: "longenough",
	})
	assert.True(t, apperrors.IsConflictError(err))
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	registerUC := NewRegisterUseCase(repo, plainHasher{}, testLogger())
	loginUC := NewLoginUseCase(repo, plainHasher{}, staticTokenIssuer{}, testLogger())

	registered, err := registerUC.Execute(context.Background(), RegisterCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "longenough",
		Role:     "teacher",
	})
	require.NoError(t, err)

	result, err := loginUC.Execute(context.Background(), LoginCommand{
		Email:    "ada@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.ID(), result.User.ID())
	assert.Equal(t, fmt.Sprintf("token-%d-teacher", registered.ID()), result.Token)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	registerUC := NewRegisterUseCase(repo, plainHasher{}, testLogger())
	loginUC := NewLoginUseCase(repo, plainHasher{}, staticTokenIssuer{}, testLogger())

	_, err := registerUC.Execute(context.Background(), RegisterCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "longenough",
	})
	require.NoError(t, err)

	_, unknownErr := loginUC.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "longenough",
	})
	_, wrongErr := loginUC.Execute(context.Background(), LoginCommand{
		Email:    "ada@example.com",
		Password: "wrongpassword",
	})

	assert.True(t, apperrors.IsUnauthorizedError(unknownErr))
	assert.True(t, apperrors.IsUnauthorizedError(wrongErr))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
