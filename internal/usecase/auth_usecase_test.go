package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/pkg/errors"
)

func newAuthFixture(ttl time.Duration) (*AuthUseCase, *fakeUserRepo, *fakeSessionRepo) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	return NewAuthUseCase(userRepo, sessionRepo, ttl), userRepo, sessionRepo
}

func TestRegisterCreatesBuyerWithSession(t *testing.T) {
	uc, _, _ := newAuthFixture(time.Hour)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "karma@example.com",
		Password: "secret-password",
		Name:     "Karma",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, entity.RoleBuyer, result.User.Role)
	assert.NotEqual(t, "secret-password", result.User.PasswordHash)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	uc, _, _ := newAuthFixture(time.Hour)
	ctx := context.Background()

	input := RegisterInput{Email: "karma@example.com", Password: "secret-password", Name: "Karma"}
	_, err := uc.Register(ctx, input)
	assert.NoError(t, err)

	_, err = uc.Register(ctx, input)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture(time.Hour)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "karma@example.com", Password: "secret-password", Name: "Karma"})
	assert.NoError(t, err)

	_, err = uc.Login(ctx, "karma@example.com", "wrong-password")
	assert.EqualError(t, err, "UNAUTHORIZED: Invalid email or password")

	_, err = uc.Login(ctx, "nobody@example.com", "secret-password")
	assert.EqualError(t, err, "UNAUTHORIZED: Invalid email or password")
}

func TestResolveReturnsNormalizedPrincipal(t *testing.T) {
	uc, userRepo, _ := newAuthFixture(time.Hour)
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Email: "karma@example.com", Password: "secret-password", Name: "Karma"})
	assert.NoError(t, err)

	// Role casing in the store should not leak through to the principal.
	userRepo.users[result.User.ID].Role = "buyer"

	principal, err := uc.Resolve(ctx, result.Token)
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, principal.Role)
	assert.Equal(t, result.User.ID, principal.ID)
}

func TestResolveExpiredSessionFails(t *testing.T) {
	uc, _, sessionRepo := newAuthFixture(-time.Minute)
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Email: "karma@example.com", Password: "secret-password", Name: "Karma"})
	assert.NoError(t, err)

	_, err = uc.Resolve(ctx, result.Token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	// Expired session is removed so the token cannot be replayed.
	_, ok := sessionRepo.sessions[result.Token]
	assert.False(t, ok)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	uc, _, _ := newAuthFixture(time.Hour)
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Email: "karma@example.com", Password: "secret-password", Name: "Karma"})
	assert.NoError(t, err)

	assert.NoError(t, uc.Logout(ctx, result.Token))

	_, err = uc.Resolve(ctx, result.Token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
