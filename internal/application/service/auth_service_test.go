package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/utils"
	"gorm.io/gorm"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return db
}

func newAuthService(db *gorm.DB) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(infra.NewUserRepository(db), jwtManager)
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := svc.Register(ctx, &RegisterInput{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "attendant", second.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "Outra", Email: "ana@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLoginAndRefresh(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "ana@example.com", out.User.Email)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, out.User.ID, refreshed.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	db := newAuthTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrong",
		NewPassword: "newpass456",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "secret123",
		NewPassword: "newpass456",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "ana@example.com", Password: "newpass456"})
	assert.NoError(t, err)
}
