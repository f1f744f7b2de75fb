package account

import (
	"context"
	"testing"
	"time"

	"bet_wallet/internal/db"
	"bet_wallet/internal/domain"
	"bet_wallet/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const secret = "test-secret"

func setupService(t *testing.T) (*gorm.DB, *Service) {
	t.Helper()
	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb, NewService(gdb, secret, time.Hour).WithHashCost(bcrypt.MinCost)
}

func TestRegister_CreatesFundedWallet(t *testing.T) {
	gdb, svc := setupService(t)

	user, token, err := svc.Register(context.Background(), " Player@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NotEmpty(t, token)

	var wallet domain.Wallet
	require.NoError(t, gdb.Where("user_id = ?", user.ID).First(&wallet).Error)
	assert.Equal(t, domain.StartingBalance, wallet.Balance)

	var txCount int64
	require.NoError(t, gdb.Model(&domain.Transaction{}).Count(&txCount).Error)
	assert.Zero(t, txCount)

	claims, err := utils.ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	gdb, svc := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "player@example.com", "hunter22")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "PLAYER@example.com", "other")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	var users, wallets int64
	require.NoError(t, gdb.Model(&domain.User{}).Count(&users).Error)
	require.NoError(t, gdb.Model(&domain.Wallet{}).Count(&wallets).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), wallets)
}

func TestRegister_RejectsBadInput(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	tests := map[string][2]string{
		"empty email":    {"", "hunter22"},
		"not an email":   {"player", "hunter22"},
		"empty password": {"player@example.com", ""},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, in[0], in[1])
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()
	user, _, err := svc.Register(ctx, "player@example.com", "hunter22")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "PLAYER@example.com", "hunter22")
	require.NoError(t, err)
	id, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, err = svc.Login(ctx, "player@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_Rejects(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	foreign, err := utils.GenerateJWT(1, "another-secret", time.Hour)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, foreign)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired, err := utils.GenerateJWT(1, secret, -time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Well-formed token for a user that does not exist.
	ghost, err := utils.GenerateJWT(99, secret, time.Hour)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
